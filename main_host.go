//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"

	"orb/app"
	"orb/hal"
	"orb/internal/buildinfo"
	"orb/vecscale"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		cfg      hal.HeadlessConfig
		host     hal.HostConfig
		curves   string
		fracBits uint
		rounding string
		verbose  bool
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.Uint64Var(&cfg.CycleEvery, "cycle", 0, "Switch curve every N frames in headless mode (0 = never).")
	flag.IntVar(&host.Diameter, "diameter", vecscale.Diameter, "Panel diameter in pixels.")
	flag.IntVar(&host.Zoom, "zoom", 2, "Window pixels per panel pixel.")
	flag.StringVar(&curves, "curve", "", "Comma-separated curves to cycle through ("+strings.Join(vecscale.CurveNames(), ", ")+").")
	flag.UintVar(&fracBits, "frac-bits", vecscale.DefaultFracBits, "Fractional bits of the scale values.")
	flag.StringVar(&rounding, "rounding", "half-up", "half-up|half-even.")
	flag.BoolVar(&verbose, "v", false, "Debug logging.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rnd, err := vecscale.ParseRounding(rounding)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -rounding")
	}
	appCfg := app.Config{FracBits: fracBits, Rounding: rnd}
	if curves != "" {
		appCfg.Curves = strings.Split(curves, ",")
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewWithConfig(h, appCfg)
	}

	log.Info().Str("version", buildinfo.Short()).Int("diameter", host.Diameter).Bool("headless", cfg.Enabled).Msg("orb preview")

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, host, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			stop()
			log.Fatal().Err(err).Msg("headless run failed")
		}
		return
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		log.Fatal().Err(err).Msg("window run failed")
	}
}
