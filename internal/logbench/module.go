package logbench

import (
	"github.com/shandysiswandi/logbench/internal/logbench/drain"
	"github.com/shandysiswandi/logbench/internal/logbench/runner"
	"github.com/shandysiswandi/logbench/internal/logbench/source"
	"github.com/shandysiswandi/logbench/internal/logbench/usecase"
	"github.com/shandysiswandi/logbench/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/logbench/internal/pkg/pkguid"
)

type Dependency struct {
	Config pkgconfig.Config
	TaskID pkguid.NumberID
}

func New(dep Dependency) (*usecase.Usecase, error) {
	glob, err := source.NewGlob(dep.Config.GetString(pkgconfig.KeyBenchPattern))
	if err != nil {
		return nil, err
	}

	r := runner.New(runner.Dependency{
		Source:  glob,
		Drainer: drain.New(int(dep.Config.GetInt(pkgconfig.KeyBenchBufferSize))),
		IDs:     dep.TaskID,
	})

	return usecase.New(usecase.Dependency{Runner: r}), nil
}
