package main

import (
	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/game"
	"blackjack/internal/prompt"
	"blackjack/internal/rng"
	"blackjack/pkg/blackjack"
	"blackjack/pkg/deck"
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Version is the program version
var Version = "v0.0.0-dev"

var seed = flag.Int64("seed", 0, "deal from a seeded generator (0 uses the configured source)")

func main() {
	flag.Parse()
	setupLogger()
	setupDisplay()

	cfg := config.Instance()
	source, seedUsed := cfg.RNG.Source, cfg.RNG.Seed
	if *seed != 0 {
		source, seedUsed = "seeded", *seed
	}

	gen, err := rng.New(source, seedUsed)
	if err != nil {
		logrus.WithError(err).Fatal("could not create the card source")
	}

	opts := blackjack.DefaultOptions()
	opts.DealerStandThreshold = cfg.Dealer.StandThreshold

	logrus.WithFields(logrus.Fields{
		"version":        Version,
		"rng":            source,
		"standThreshold": opts.DealerStandThreshold,
	}).Debug("starting")

	g := game.New(
		prompt.New(os.Stdin, os.Stdout),
		console.New(os.Stdout),
		deck.NewRandomSource(gen),
		opts,
		logrus.StandardLogger(),
	)

	if err := g.Run(); err != nil {
		if errors.Is(err, io.EOF) {
			// input closed, nothing left to ask
			return
		}

		logrus.WithError(err).Fatal("could not read input")
	}
}

func setupLogger() {
	logrus.SetOutput(os.Stderr)
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func setupDisplay() {
	if !config.Instance().Display.Color || !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}
}
