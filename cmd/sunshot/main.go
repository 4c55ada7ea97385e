package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sunshot/audio"
	"github.com/lixenwraith/sunshot/config"
	"github.com/lixenwraith/sunshot/core"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/game"
	"github.com/lixenwraith/sunshot/parameter"
	"github.com/lixenwraith/sunshot/render"
	"github.com/lixenwraith/sunshot/status"
)

var (
	tuningFlag  = flag.String("tuning", "", "Path to a YAML tuning file (overrides -profile)")
	profileFlag = flag.String("profile", "", "Built-in tuning profile: classic, late")
	muteFlag    = flag.Bool("mute", false, "Start with audio disabled")
	debugFlag   = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	dumpFlag    = flag.Bool("dump-tuning", false, "Print the resolved tuning as YAML and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	tuning, err := config.Resolve(*tuningFlag, *profileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
		os.Exit(1)
	}

	if *dumpFlag {
		data, err := config.Marshal(tuning)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	reg := status.NewRegistry()
	g, err := game.New(tuning, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	// Audio failures are logged and the game continues muted
	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	audioEngine := audio.NewAudioEngine(audioCfg, nil)
	if err := audioEngine.Start(); err != nil {
		log.Printf("sunshot: %v (continuing without audio)", err)
	}
	defer audioEngine.Stop()
	g.Subscribe(audio.NewCuePlayer(audioEngine, reg))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.SetStyle(render.StyleBackground)
	screen.HideCursor()

	// Panics in any goroutine restore the terminal before the trace prints
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	orchestrator, guide := render.NewGameView(screen, g, audioEngine.IsEnabled)

	run(screen, g, orchestrator, guide, audioEngine)

	log.Printf("sunshot: exit level=%d score=%d shots=%d", g.Level(), g.Score(), g.Shots())
}

// run owns the game: input events and frame ticks are serialized on this goroutine
func run(screen tcell.Screen, g *game.Game, orchestrator *render.RenderOrchestrator, guide *render.GuideRenderer, ae *audio.AudioEngine) {
	eventChan := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	clock := engine.NewFrameClock(engine.NewTimeProvider(), parameter.MaxFrameDelta)
	var input inputState
	ctx := orchestrator.RenderFrame()
	screen.Show()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			switch input.handle(ev, ctx, g.Phase()) {
			case cmdQuit:
				return
			case cmdToggleGuide:
				guide.Toggle()
			case cmdToggleMute:
				enabled := ae.ToggleMute()
				log.Printf("sunshot: audio enabled=%v", enabled)
			}

		case <-frameTicker.C:
			g.Update(input.take(), clock.Tick())
			ctx = orchestrator.RenderFrame()
			screen.Show()
		}
	}
}
