package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/arkadym/careermate/internal/buildinfo"
	"github.com/arkadym/careermate/internal/client/cli"
	"github.com/arkadym/careermate/internal/client/config"
	"github.com/arkadym/careermate/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewDefault(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
