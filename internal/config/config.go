package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	HTTP
}

type App struct {
	KillProcess string
	RunsHistory int
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			KillProcess: cmd.String("kill-process"),
			RunsHistory: cmd.Int("runs-history"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
