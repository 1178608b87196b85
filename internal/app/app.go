package app

import (
	"context"
	"io"

	"github.com/shandysiswandi/logbench/internal/logbench/usecase"
	"github.com/shandysiswandi/logbench/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/logbench/internal/pkg/pkguid"
)

// Options carries what the command line resolved before the App is built.
type Options struct {
	ConfigPath string
	LogLevel   string
	Stdout     io.Writer
	Stderr     io.Writer
}

type App struct {
	stdout io.Writer
	stderr io.Writer

	// configuration
	config pkgconfig.Config

	// libraries
	runID  pkguid.StringID
	taskID pkguid.NumberID

	// modules
	bench *usecase.Usecase

	//
	closerFn map[string]func(context.Context) error
}

func New(opts Options) (*App, error) {
	app := &App{
		stdout: opts.Stdout,
		stderr: opts.Stderr,
	}

	if err := app.initConfig(opts.ConfigPath); err != nil {
		return nil, err
	}
	app.initLogging(opts.LogLevel)
	if err := app.initLibraries(); err != nil {
		return nil, err
	}
	if err := app.initModules(); err != nil {
		return nil, err
	}
	app.initClosers()

	return app, nil
}
