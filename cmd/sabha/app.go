package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/sabha/config"
	"github.com/sonnes/sabha/core"
	"github.com/sonnes/sabha/ingest"
	"github.com/sonnes/sabha/render"
	htmlrender "github.com/sonnes/sabha/render/html"
	jsonrender "github.com/sonnes/sabha/render/json"
	"github.com/sonnes/sabha/render/terminal"
	"github.com/sonnes/sabha/schedule"
)

// app holds the loaded config and the renderer registry used by CLI commands.
type app struct {
	cfg       *config.Config
	renderers map[string]func() render.Renderer
}

func newApp(cmd *cli.Command) (*app, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if dataset := cmd.String("dataset"); dataset != "" {
		cfg.Dataset = dataset
	}

	return &app{
		cfg: cfg,
		renderers: map[string]func() render.Renderer{
			"terminal": func() render.Renderer { return terminal.New() },
			"json":     func() render.Renderer { return jsonrender.New() },
			"html":     func() render.Renderer { return htmlrender.New() },
		},
	}, nil
}

func (a *app) renderer(name string) (render.Renderer, error) {
	if name == "" {
		name = a.cfg.Output
	}
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// loadSessions fetches and ingests the configured dataset.
func (a *app) loadSessions() ([]core.Session, error) {
	if a.cfg.Dataset == "" {
		return nil, fmt.Errorf("no dataset configured (set --dataset or the config file)")
	}
	l := &ingest.Loader{Source: a.cfg.Dataset}
	return l.Load()
}

// store opens the personal schedule/availability store.
func (a *app) store() (*schedule.Store, error) {
	return schedule.NewStore(a.cfg.DataDir)
}
