package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kotaroooo0/ristorante/config"
	"github.com/kotaroooo0/ristorante/logging"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, env *environment, args []string) error
}

var commands = []command{
	{name: "urls", usage: "collect restaurant page urls from listing pages", run: runURLs},
	{name: "fetch", usage: "download restaurant pages into the page store", run: runFetch},
	{name: "extract", usage: "extract documents from the page store", run: runExtract},
	{name: "build", usage: "build and persist the index snapshot", run: runBuild},
	{name: "search", usage: "query the persisted snapshot", run: runSearch},
	{name: "serve", usage: "serve the snapshot over HTTP", run: runServe},
}

// environment is shared by every subcommand.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-config path] <command> [options]\n\nCommands:\n", os.Args[0])
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.usage)
	}
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(ctx, &environment{cfg: cfg, logger: logger.Named(name)}, args)
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if err != nil {
			logger.Error("command failed", zap.String("command", name), zap.Error(err))
			stop()
			os.Exit(1)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
	usage()
	os.Exit(2)
}
