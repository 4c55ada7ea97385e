package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/render"
)

func TestSpaceFollowsPhase(t *testing.T) {
	var s inputState
	ctx := render.NewRenderContext(100, 30)
	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)

	s.handle(space, ctx, engine.PhaseReadyToLaunch)
	in := s.take()
	if !in.PressStart || in.PressEnd {
		t.Errorf("ready: got %+v, want PressStart", in)
	}

	s.handle(space, ctx, engine.PhaseChargingLaunch)
	in = s.take()
	if in.PressStart || !in.PressEnd {
		t.Errorf("charging: got %+v, want PressEnd", in)
	}

	if in = s.take(); in.PressStart || in.PressEnd {
		t.Errorf("edges not cleared: %+v", in)
	}
}

func TestMouseEdgesAndAim(t *testing.T) {
	var s inputState
	ctx := render.NewRenderContext(100, 30)

	s.handle(tcell.NewEventMouse(75, 10, tcell.Button1, tcell.ModNone), ctx, engine.PhaseReadyToLaunch)
	in := s.take()
	if !in.PressStart {
		t.Error("button down should start")
	}
	if in.Aim != 0.5 {
		t.Errorf("aim = %f, want 0.5", in.Aim)
	}

	// Drag keeps the button held without new edges
	s.handle(tcell.NewEventMouse(25, 10, tcell.Button1, tcell.ModNone), ctx, engine.PhaseChargingLaunch)
	in = s.take()
	if in.PressStart || in.PressEnd {
		t.Errorf("drag produced edges: %+v", in)
	}
	if in.Aim != -0.5 {
		t.Errorf("aim = %f, want -0.5", in.Aim)
	}

	s.handle(tcell.NewEventMouse(25, 10, tcell.ButtonNone, tcell.ModNone), ctx, engine.PhaseChargingLaunch)
	if in = s.take(); !in.PressEnd {
		t.Error("button up should end")
	}
}

func TestKeyCommands(t *testing.T) {
	var s inputState
	ctx := render.NewRenderContext(100, 30)

	cases := []struct {
		ev   *tcell.EventKey
		want command
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), cmdQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), cmdQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), cmdToggleGuide},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), cmdToggleMute},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), cmdNone},
	}
	for _, c := range cases {
		if got := s.handle(c.ev, ctx, engine.PhaseMenu); got != c.want {
			t.Errorf("%s: got %d, want %d", c.ev.Name(), got, c.want)
		}
	}

	for i := 0; i < 20; i++ {
		s.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ctx, engine.PhaseMenu)
	}
	if in := s.take(); in.Aim != 1 {
		t.Errorf("aim = %f, want clamped 1", in.Aim)
	}
}
