package main

import (
	"github.com/gdamore/tcell/v2"
)

// intentKind - что игрок хочет сделать нажатием.
type intentKind uint8

const (
	intentNone intentKind = iota
	intentQuit
	intentMove
	intentOpen
	intentCycleFlag
	intentFlag
	intentChord
	intentWait
	intentRestart
)

// intent - разобранное нажатие. dx/dy для курсора, value для метки.
type intent struct {
	kind   intentKind
	dx, dy int
	value  int
}

// keyIntent переводит клавишу в намерение игрока.
func keyIntent(key tcell.Key, r rune) intent {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return intent{kind: intentQuit}
	case tcell.KeyUp:
		return intent{kind: intentMove, dy: -1}
	case tcell.KeyDown:
		return intent{kind: intentMove, dy: 1}
	case tcell.KeyLeft:
		return intent{kind: intentMove, dx: -1}
	case tcell.KeyRight:
		return intent{kind: intentMove, dx: 1}
	case tcell.KeyEnter:
		return intent{kind: intentOpen}
	case tcell.KeyRune:
		return runeIntent(r)
	}
	return intent{}
}

func runeIntent(r rune) intent {
	if r >= '0' && r <= '9' {
		return intent{kind: intentFlag, value: int(r - '0')}
	}

	switch r {
	case 'q':
		return intent{kind: intentQuit}
	case 'k':
		return intent{kind: intentMove, dy: -1}
	case 'j':
		return intent{kind: intentMove, dy: 1}
	case 'h':
		return intent{kind: intentMove, dx: -1}
	case 'l':
		return intent{kind: intentMove, dx: 1}
	case ' ':
		return intent{kind: intentOpen}
	case 'f':
		return intent{kind: intentCycleFlag}
	case 'c':
		return intent{kind: intentChord}
	case 'w':
		return intent{kind: intentWait}
	case 'r':
		return intent{kind: intentRestart}
	}
	return intent{}
}
