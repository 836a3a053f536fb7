package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/video_sorter/internal/app"
	"github.com/kurochkinivan/video_sorter/internal/config"
	"github.com/kurochkinivan/video_sorter/internal/status"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "video_sorter",
		Usage:   "Sort video files into category/winner folders from an Excel manifest",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:  "kill-process",
			Usage: "Terminate processes with this executable name (e.g. EXCEL.EXE) before each run",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("KILL_PROCESS"),
				yaml.YAML("app.kill_process", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.IntFlag{
			Name:      "runs-history",
			Usage:     "Set number of finished runs kept in memory",
			Value:     status.DefaultHistory,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.runs_history", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive,
		},
		&cli.StringFlag{
			Name:  "http-host",
			Usage: "Set HTTP server host",
			Value: "127.0.0.1",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("HTTP_HOST"),
				yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:  "http-port",
			Usage: "Set HTTP server port",
			Value: "8717",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("HTTP_PORT"),
				yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout, runs are answered only after the last file is copied",
			Value:   1 * time.Hour,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validatePositive(n int) error {
	if n <= 0 {
		return fmt.Errorf("must be positive, got %d", n)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
