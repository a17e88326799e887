// cmd/jot/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // standard log for errors before the logger is ready
	"os"

	"github.com/bethropolis/jot/internal/app"
	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := config.NewFlags(config.AppName)
	rest, err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return 0
	}

	var filePath string
	if len(rest) > 0 {
		filePath = rest[0]
	}

	cfg, warnings, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Error loading configuration: %v", err)
		return 1
	}

	logCloser, err := logger.Init(cfg.Logger)
	if err != nil {
		stlog.Printf("Error initializing logger: %v", err)
		return 1
	}
	defer logCloser.Close()

	for _, w := range warnings {
		logger.Warnf("%s", w)
	}
	logger.Infof("Starting %s %s", config.AppName, version)
	if filePath != "" {
		logger.Debugf("Seeding note from: %s", filePath)
	}

	jotApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		stlog.Printf("Error initializing application: %v", err)
		return 1
	}

	if err := jotApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}
