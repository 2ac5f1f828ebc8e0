package main

import (
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/countywatch/sitegen/app/cfg"
)

func main() {
	var opts cfg.Opts

	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		conf := cfg.Init(&opts)
		setupLogger(conf.Debug)
		return command.Execute(args)
	}

	addCommands(parser)

	// Invoking without a command prints usage; go-flags already wrote
	// the error message, so only the exit status is ours.
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
