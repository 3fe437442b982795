package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/internal/engine"
	"github.com/daimeng/gloamwood/internal/infrastructure/storage"
	"github.com/daimeng/gloamwood/pkg/logger"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	logger.Init()
	logger.Redirect(io.Discard)

	rec, err := storage.LoadFile(os.Args[2])
	if err != nil {
		fmt.Printf("Cannot read replay: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "info":
		printInfo(rec)
	case "actions":
		for i, act := range rec.Actions {
			fmt.Printf("%4d  turn %-4d %-10s %s\n", i, act.Turn, act.Action, act.Payload)
		}
	case "verify":
		s, err := engine.NewSessionFromReplay(rec)
		if err != nil {
			fmt.Printf("Replay does not reproduce: %v\n", err)
			os.Exit(1)
		}
		view := s.View()
		fmt.Printf("OK: turn %d, status %s, hero HP %d/%d, evil left %d\n",
			view.Turn, view.Status, view.Hero.HP, view.Hero.MaxHP, view.EvilCount)
	default:
		printHelp()
	}
}

func printInfo(rec *domain.ReplaySession) {
	fmt.Printf("Seed:      %d\n", rec.Seed)
	fmt.Printf("Recorded:  %s\n", time.Unix(rec.Timestamp, 0).Format(time.RFC3339))
	fmt.Printf("Board:     %dx%d, %d mines, %d fissures\n", rec.Width, rec.Height, rec.Mines, rec.Fissures)
	fmt.Printf("Actions:   %d\n", len(rec.Actions))
	if n := len(rec.Actions); n > 0 {
		fmt.Printf("Last turn: %d\n", rec.Actions[n-1].Turn)
	}
}

func printHelp() {
	fmt.Println(`Replay Utility - просмотр записей партий Gloamwood
Commands:
  info <file>     - параметры партии из заголовка
  actions <file>  - список записанных команд
  verify <file>   - прогнать запись и показать итог`)
}
