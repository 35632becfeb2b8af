package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"playgroundgl/internal/config"
	"playgroundgl/internal/headless"
	"playgroundgl/internal/selection"

	"github.com/spf13/pflag"
)

func init() {
	runtime.LockOSThread()
}

type options struct {
	configPath string
	headless   bool
	frames     int
	logLevel   string
	clicks     []string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("playgroundgl", pflag.ContinueOnError)
	fs.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	fs.BoolVar(&o.headless, "headless", false, "run without a window using the software rasteriser")
	fs.IntVar(&o.frames, "frames", 1, "frames to simulate in headless mode")
	fs.StringVar(&o.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	fs.StringArrayVar(&o.clicks, "click", nil, "headless click at window x,y (repeatable, one per frame)")
	err := fs.Parse(args)
	return o, err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		slog.Error("playgroundgl failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if opts.headless {
		clicks := make([]selection.Click, 0, len(opts.clicks))
		for _, s := range opts.clicks {
			c, err := headless.ParseClick(s)
			if err != nil {
				return err
			}
			clicks = append(clicks, c)
		}
		_, err := headless.Run(cfg, headless.Options{Frames: opts.frames, Clicks: clicks})
		return err
	}
	return runWindowed(cfg)
}
