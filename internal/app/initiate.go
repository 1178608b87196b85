package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/logbench/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/logbench/internal/pkg/pkgerror"
	"github.com/shandysiswandi/logbench/internal/pkg/pkglog"
	"github.com/shandysiswandi/logbench/internal/pkg/pkguid"
)

func (a *App) initConfig(path string) error {
	if path == "" {
		a.config = pkgconfig.NewDefault()
		return nil
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		return pkgerror.NewInvalidArgument("config", fmt.Errorf("load %s: %w", path, err))
	}

	a.config = cfg
	return nil
}

func (a *App) initLogging(level string) {
	if level == "" {
		level = a.config.GetString(pkgconfig.KeyLogLevel)
	}

	slog.SetDefault(pkglog.NewLogger(a.stderr, pkglog.ParseLevel(level)))
}

func (a *App) initLibraries() error {
	a.runID = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake()
	if err != nil {
		return pkgerror.NewInternal(fmt.Errorf("init task id generator: %w", err))
	}
	a.taskID = sf

	return nil
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
