package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/celebrate/audio"
	"github.com/lixenwraith/celebrate/config"
	"github.com/lixenwraith/celebrate/core"
	"github.com/lixenwraith/celebrate/engine"
	"github.com/lixenwraith/celebrate/parameter"
	"github.com/lixenwraith/celebrate/render"
)

func runCelebrate(parent context.Context, opts *rootOptions) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.LoadAuto(opts.configPath)
	if err != nil {
		return err
	}
	themes, err := cfg.ThemeSet()
	if err != nil {
		return err
	}

	log, closeLog, err := setupLogging(opts.debug, logDir)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.EnableFocus()

	rng := opts.rand()
	loop := engine.NewEventLoop(engine.DefaultQueueSize)
	defer loop.Close()

	stage := render.NewStage(screen, themes, rng, log.Named("stage"))
	defer stage.Close()

	// Audio is optional; without a device the celebration keeps its visuals
	audioCfg := cfg.AudioConfig()
	audioCfg.ApplyEnv()
	sound := audio.NewSoundManager(audioCfg, log.Named("audio"))
	deps := appDeps{
		sched:   loop,
		surface: stage,
		display: stage,
		bounds:  stage.Bounds,
		cfg:     cfg,
		rng:     rng,
		log:     log,
	}
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable", zap.Error(err))
	} else if sound.Ready() {
		defer sound.Cleanup()
		sound.SetMuted(opts.mute)
		deps.tones = sound
		deps.muter = sound
	}
	cfg.Audio.Tempo = audioCfg.Tempo

	a, err := newApp(deps)
	if err != nil {
		return err
	}
	stage.SetStrip(a.gallery)
	a.onResize = func(w, h int) { stage.Resize() }

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(core.Safe(func() error {
		return loop.Run(gctx)
	}))

	events := make(chan tcell.Event, 16)
	g.Go(core.Safe(func() error {
		screen.ChannelEvents(events, gctx.Done())
		return nil
	}))

	g.Go(core.Safe(func() error {
		for ev := range events {
			in := a.keys.Translate(ev)
			loop.Post(func() {
				if a.handle(in) {
					cancel()
				}
			})
		}
		return nil
	}))

	g.Go(core.Safe(func() error {
		ticker := time.NewTicker(parameter.FrameUpdateInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				loop.Post(func() { stage.Draw(loop.Now()) })
			}
		}
	}))

	loop.Post(a.startAmbient)

	log.Info("celebrate started", zap.Bool("audio", deps.tones != nil))
	err = g.Wait()
	log.Info("celebrate stopped", zap.Uint64("callbacks", loop.Executed()))

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
