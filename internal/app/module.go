package app

import (
	"github.com/shandysiswandi/logbench/internal/logbench"
)

func (a *App) initModules() error {
	bench, err := logbench.New(logbench.Dependency{
		Config: a.config,
		TaskID: a.taskID,
	})
	if err != nil {
		return err
	}

	a.bench = bench
	return nil
}
