package main

import (
	"fmt"
	"strconv"

	"github.com/daimeng/gloamwood/internal/engine"
	"github.com/daimeng/gloamwood/pkg/api"
	"github.com/daimeng/gloamwood/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

const (
	cellWidth   = 2 // клетка занимает две колонки терминала: аура бывает двузначной
	hudLogLines = 6
)

var terrainColors = map[string]tcell.Color{
	"deep":       tcell.ColorNavy,
	"shallow":    tcell.ColorTeal,
	"swamp":      tcell.ColorDarkOliveGreen,
	"plain":      tcell.ColorOlive,
	"forest":     tcell.ColorForestGreen,
	"darkforest": tcell.ColorDarkGreen,
	"hill":       tcell.ColorSienna,
	"mountain":   tcell.ColorSlateGray,
	"clouds":     tcell.ColorSilver,
	"peak":       tcell.ColorWhite,
	"lava":       tcell.ColorOrangeRed,
}

// UI - терминальный клиент: рисует снимок партии и превращает клавиши в команды.
type UI struct {
	screen  tcell.Screen
	session *engine.Session
	sound   *Sound

	cursorX, cursorY int

	view   *api.WorldView
	logs   []api.LogEntry
	lastHP int
	evil   int
}

func NewUI(session *engine.Session, sound *Sound) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	u := &UI{
		screen:  screen,
		session: session,
		sound:   sound,
	}
	u.refresh()
	u.cursorX = u.view.Grid.Width / 2
	u.cursorY = u.view.Grid.Height / 2
	return u, nil
}

func (u *UI) run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- u.screen.PollEvent()
		}
	}()

	u.draw()
	for ev := range eventChan {
		if !u.handleInput(ev) {
			return
		}
		u.draw()
	}
}

func (u *UI) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.apply(keyIntent(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

// apply выполняет намерение. false - выход из игры.
func (u *UI) apply(in intent) bool {
	pos := api.PositionPayload{X: u.cursorX, Y: u.cursorY}

	switch in.kind {
	case intentQuit:
		return false
	case intentMove:
		u.cursorX = clamp(u.cursorX+in.dx, 0, u.view.Grid.Width-1)
		u.cursorY = clamp(u.cursorY+in.dy, 0, u.view.Grid.Height-1)
	case intentOpen:
		u.dispatch("OPEN", pos)
	case intentCycleFlag:
		u.dispatch("CYCLE_FLAG", pos)
	case intentFlag:
		u.dispatch("FLAG", api.FlagPayload{X: pos.X, Y: pos.Y, Value: in.value})
	case intentChord:
		u.dispatch("CHORD", pos)
	case intentWait:
		u.dispatch("WAIT", nil)
	case intentRestart:
		if err := u.session.Restart(); err != nil {
			logger.Log.WithError(err).Error("Restart failed.")
		}
		u.logs = nil
		u.lastHP = 0
		u.refresh()
	}
	return true
}

func (u *UI) dispatch(action string, payload any) {
	cmd, err := api.NewCommand(action, payload)
	if err != nil {
		logger.Log.WithError(err).Error("Cannot build command.")
		return
	}
	if _, err := u.session.Dispatch(cmd); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "ui",
			"action":    action,
		}).WithError(err).Warn("Command failed.")
	}
	u.refresh()
}

// refresh забирает свежий снимок и новые записи лога, звучит на события.
func (u *UI) refresh() {
	wasOver := u.view != nil && u.view.IsOver()
	u.view = u.session.View()

	u.logs = append(u.logs, u.session.DrainLogs()...)
	if len(u.logs) > hudLogLines {
		u.logs = u.logs[len(u.logs)-hudLogLines:]
	}

	if u.lastHP > 0 && u.view.Hero.HP < u.lastHP {
		u.sound.Hit()
	} else if u.evil > 0 && u.view.EvilCount < u.evil {
		u.sound.Kill()
	}
	if !wasOver && u.view.IsOver() {
		u.sound.GameOver(u.view.Status == "WON")
	}
	u.lastHP = u.view.Hero.HP
	u.evil = u.view.EvilCount
}

func (u *UI) draw() {
	u.screen.Clear()
	v := u.view

	// 1. Поле
	for i := range v.Tiles {
		t := &v.Tiles[i]
		text, style := tileCell(t)
		if t.X == u.cursorX && t.Y == u.cursorY {
			style = style.Reverse(true)
		}
		u.drawText(t.X*cellWidth, t.Y, style, text)
	}

	// 2. HUD
	row := v.Grid.Height + 1
	hud := fmt.Sprintf("HP %d/%d  Ход %d  Врагов %d  %s  seed %d",
		v.Hero.HP, v.Hero.MaxHP, v.Turn, v.EvilCount, statusText(v.Status), v.Seed)
	u.drawText(0, row, tcell.StyleDefault.Bold(true), hud)
	row++

	col := 0
	for _, c := range v.Counts {
		s := fmt.Sprintf("%s%d:%d ", c.Glyph, c.Level, c.Count)
		u.drawText(col, row, tcell.StyleDefault.Foreground(tcell.ColorRed), s)
		col += len([]rune(s))
	}
	row++

	for _, l := range u.logs {
		u.drawText(0, row, logStyle(l.Type), l.Text)
		row++
	}

	u.drawText(0, row+1, tcell.StyleDefault.Foreground(tcell.ColorGray),
		"стрелки/hjkl курсор  пробел открыть  f метка  0-9 значение  c аккорд  w ждать  r заново  q выход")
	u.screen.Show()
}

// tileCell - две колонки текста и стиль для клетки.
func tileCell(t *api.TileView) (string, tcell.Style) {
	base := tcell.StyleDefault
	if t.ShowHint {
		if c, ok := terrainColors[t.Terrain]; ok {
			base = base.Foreground(c)
		}
	}

	if !t.IsOpen {
		if t.Flag > 0 {
			return " " + strconv.Itoa(t.Flag), tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}
		return " ·", base.Dim(true)
	}

	if e := t.Entity; e != nil {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		if e.Breed == "hero" {
			style = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
			if e.HP < 1 {
				return " %", style
			}
		}
		return " " + e.Glyph, style
	}

	if t.Aura > 0 {
		return fmt.Sprintf("%2d", t.Aura), auraStyle(t.Aura)
	}
	return "  ", base
}

func auraStyle(aura int) tcell.Style {
	switch {
	case aura <= 3:
		return tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue)
	case aura <= 8:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
}

func logStyle(logType string) tcell.Style {
	switch logType {
	case "COMBAT":
		return tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	case "ERROR":
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorSilver)
}

func statusText(status string) string {
	switch status {
	case "WON":
		return "ПОБЕДА"
	case "LOST":
		return "ПОРАЖЕНИЕ"
	}
	return "в пути"
}

func (u *UI) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (u *UI) cleanup() {
	u.sound.Close()
	u.screen.Fini()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
