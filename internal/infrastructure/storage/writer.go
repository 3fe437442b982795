package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `GWRP` // 4 байта
	Version1    uint32 = 1

	maxPayloadLen = 65535
)

var (
	ErrInvalidMagic       = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrPayloadTooLong     = errors.New("payload too long")
)

// ReplayFileHeader - заголовок файла в памяти.
// Только числа и массивы, поэтому binary.Write пишет его целиком.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	Width       int32
	Height      int32
	Mines       int32
	Fissures    int32
	ActionCount int32
}

// ActionHeader - заголовок каждой записи действия.
type ActionHeader struct {
	Turn       int32  // 4
	ActionType uint8  // 1
	PayloadLen uint16 // 2
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("replay dir: %w", err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save пишет запись партии в SaveDir и возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%dx%d_%d.gwrp", session.Seed, session.Width, session.Height, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeBinary(bw, session); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay_storage",
		"path":      path,
		"seed":      session.Seed,
		"actions":   len(session.Actions),
	}).Info("Replay saved.")
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	// 1. Заголовок файла
	header := ReplayFileHeader{
		Version:     Version1,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		Width:       int32(s.Width),
		Height:      int32(s.Height),
		Mines:       int32(s.Mines),
		Fissures:    int32(s.Fissures),
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Действия
	for i, act := range s.Actions {
		payloadLen := len(act.Payload)
		if payloadLen > maxPayloadLen {
			return fmt.Errorf("action %d: %w: %d", i, ErrPayloadTooLong, payloadLen)
		}

		actHeader := ActionHeader{
			Turn:       int32(act.Turn),
			ActionType: uint8(act.Action),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
