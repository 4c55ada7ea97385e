package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/game"
	"github.com/lixenwraith/sunshot/render"
)

const aimStep = 0.1

// command is a non-gameplay action requested from the keyboard
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdToggleGuide
	cmdToggleMute
)

// inputState folds terminal events into the next frame's game.Input
// Edges are held until the frame consumes them
type inputState struct {
	pending    game.Input
	aim        float64
	buttonDown bool
}

// handle applies one event; phase decides whether the space bar starts or releases
func (s *inputState) handle(ev tcell.Event, ctx render.RenderContext, phase engine.Phase) command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return cmdQuit
		case tcell.KeyLeft:
			s.setAim(s.aim - aimStep)
		case tcell.KeyRight:
			s.setAim(s.aim + aimStep)
		case tcell.KeyEnter:
			s.toggle(phase)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return cmdQuit
			case ' ':
				s.toggle(phase)
			case 'g':
				return cmdToggleGuide
			case 'm':
				return cmdToggleMute
			}
		}

	case *tcell.EventMouse:
		x, _ := ev.Position()
		s.setAim(ctx.ScreenToAim(x))

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !s.buttonDown {
			s.pending.PressStart = true
		} else if !down && s.buttonDown {
			s.pending.PressEnd = true
		}
		s.buttonDown = down
	}
	return cmdNone
}

// toggle maps a key press to the edge the current phase listens for
// Terminals report no key release, so a second press ends a charge
func (s *inputState) toggle(phase engine.Phase) {
	if phase == engine.PhaseChargingLaunch {
		s.pending.PressEnd = true
		return
	}
	s.pending.PressStart = true
}

func (s *inputState) setAim(a float64) {
	if a < -1 {
		a = -1
	}
	if a > 1 {
		a = 1
	}
	s.aim = a
}

// take returns the frame input and clears the edges
func (s *inputState) take() game.Input {
	in := s.pending
	in.Aim = s.aim
	s.pending = game.Input{}
	return in
}
