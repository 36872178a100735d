package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/name-wheel/app"
	"github.com/lixenwraith/name-wheel/audio"
	"github.com/lixenwraith/name-wheel/config"
	"github.com/lixenwraith/name-wheel/core"
	"github.com/lixenwraith/name-wheel/metrics"
	"github.com/lixenwraith/name-wheel/spin"
	"github.com/lixenwraith/name-wheel/store"
)

var (
	configFlag = flag.String("config", "", "Config file path (default $XDG_CONFIG_HOME/name-wheel/config.yaml)")
	onceFlag   = flag.Bool("once", false, "Spin once without the UI, print and save the winner")
	svgFlag    = flag.String("svg", "", "Write the current wheel as SVG to this file (- for stdout) and exit")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/name-wheel.log")
)

func main() {
	flag.Parse()
	os.Exit(start())
}

// start wires the stores and runs the selected command, returning the exit code
// Deferred cleanup runs before main exits
func start() int {
	// Panic Recovery: Ensure terminal is reset even if the wheel crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	if logFile := setupLogging(*debugFlag || cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	backend, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		return 1
	}
	persister := store.NewPersister(backend, nil)
	defer persister.Close()

	recorder := metrics.NewRecorder()
	defer func() {
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Printf("WARN: %v", err)
		}
	}()

	return run(cfg, persister, recorder)
}

func run(cfg *config.Config, persister *store.Persister, recorder *metrics.Recorder) int {
	switch {
	case *svgFlag != "":
		if err := exportSVG(persister, *svgFlag, os.Stdout, cfg.Render.LabelRatio); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to export SVG: %v\n", err)
			return 1
		}
		return 0

	case *onceFlag:
		tty := term.IsTerminal(int(os.Stdout.Fd()))
		if _, err := runOnce(persister, cfg.SpinConfig(), spin.StdRNG{}, recorder, os.Stdout, tty); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "name-wheel needs an interactive terminal; use -once or -svg")
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup; crashes on any goroutine do the same first
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	// Non-fatal, the wheel can run without sound
	sounds := audio.NewSoundManager(cfg.AudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wheelApp := app.New(app.Options{
		Screen:        screen,
		Spin:          cfg.SpinConfig(),
		Store:         persister,
		Sounds:        sounds,
		Metrics:       recorder,
		FrameInterval: cfg.FrameInterval(),
		LabelRatio:    cfg.Render.LabelRatio,
	})
	if err := wheelApp.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("Run failed: %v", err)
		return 1
	}
	return 0
}
