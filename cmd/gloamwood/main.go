package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/daimeng/gloamwood/internal/engine"
	"github.com/daimeng/gloamwood/internal/infrastructure/storage"
	"github.com/daimeng/gloamwood/internal/version"
	"github.com/daimeng/gloamwood/pkg/dungeon"
	"github.com/daimeng/gloamwood/pkg/logger"
)

const defaultLogFile = "gloamwood.log"

func init() {
	// Экран занимает stdout, поэтому по умолчанию логи уходят в файл.
	if os.Getenv("GLOAMWOOD_LOG_FILE") == "" {
		os.Setenv("GLOAMWOOD_LOG_FILE", defaultLogFile)
	}
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		seed          int64
		width, height int
		mines         int
		mute          bool
		showVersion   bool
		recordDir     string
		replayPath    string
	)
	// По умолчанию 0 (значит взять GLOAMWOOD_SEED или сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.IntVar(&width, "width", dungeon.MapWidth, "Board width in tiles")
	flag.IntVar(&height, "height", dungeon.MapHeight, "Board height in tiles")
	flag.IntVar(&mines, "mines", dungeon.MapMines, "Number of monsters")
	flag.BoolVar(&mute, "mute", false, "Disable sound")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.StringVar(&recordDir, "record", "", "Directory to save the game replay on exit")
	flag.StringVar(&replayPath, "replay", "", "Replay file to restore and continue")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	logger.Log.Info("Starting Gloamwood...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	cfg.Width, cfg.Height, cfg.Mines = width, height, mines
	if seed == 0 {
		seed = seedFromEnv()
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using random seed: %d", cfg.Seed)
	}

	// 2. Партия
	session, err := openSession(cfg, replayPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	// 3. Экран и звук
	ui, err := NewUI(session, NewSound(!mute))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	ui.run()
	ui.cleanup()

	if recordDir != "" {
		saveReplay(session, recordDir)
	}
	logger.Log.Info("Done.")
}

// openSession начинает новую партию или восстанавливает сохранённую.
func openSession(cfg engine.Config, replayPath string) (*engine.Session, error) {
	if replayPath == "" {
		return engine.NewSession(cfg)
	}
	rec, err := storage.LoadFile(replayPath)
	if err != nil {
		return nil, fmt.Errorf("load replay: %w", err)
	}
	logger.Log.Infof("Restoring replay %s (seed %d)", replayPath, rec.Seed)
	return engine.NewSessionFromReplay(rec)
}

func saveReplay(session *engine.Session, dir string) {
	svc, err := storage.NewReplayService(dir)
	if err != nil {
		logger.Log.WithError(err).Error("Cannot prepare replay directory.")
		return
	}
	path, err := svc.Save(session.Replay())
	if err != nil {
		logger.Log.WithError(err).Error("Cannot save replay.")
		return
	}
	fmt.Printf("Replay saved to %s\n", path)
}

// seedFromEnv читает GLOAMWOOD_SEED. Некорректное значение игнорируется.
func seedFromEnv() int64 {
	raw := os.Getenv("GLOAMWOOD_SEED")
	if raw == "" {
		return 0
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Log.WithError(err).Warn("Ignoring malformed GLOAMWOOD_SEED.")
		return 0
	}
	return seed
}
