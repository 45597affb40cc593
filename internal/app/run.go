package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/vk/tdbload/internal/config"
	"github.com/vk/tdbload/internal/ctxlog"
	"github.com/vk/tdbload/internal/fsutil"
	"github.com/vk/tdbload/internal/model"
	"github.com/vk/tdbload/internal/pipeline"
)

// Run loads settings, prepares the location and runs the selected phases.
// The returned error, if any, determines the exit code via model.ExitCode.
func (a *App) Run(ctx context.Context) error {
	start := a.now()
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "run_id", uuid.NewString())
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	settings, err := a.loadSettings(ctx)
	if err != nil {
		return err
	}

	run := settings.ApplyTo(a.config.Run)
	dataTool, indexTool := settings.ToolPaths(pipeline.DefaultDataTool, pipeline.DefaultIndexTool)
	tools := pipeline.Tools{Data: dataTool, Index: indexTool}
	logger.Debug("Phase tools resolved.", "data_tool", tools.Data, "index_tool", tools.Index)

	if err := fsutil.PrepareLocation(run.Location, run.Mode.IncludesData()); err != nil {
		return err
	}

	if _, err := pipeline.NewSequencer(a.executor, tools).StartedAt(start).Run(ctx, run); err != nil {
		return err
	}
	logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) loadSettings(ctx context.Context) (*config.Settings, error) {
	if len(a.config.SettingsPaths) == 0 {
		return &config.Settings{}, nil
	}
	settings, err := a.loader.Load(ctx, a.config.SettingsPaths...)
	if err != nil {
		return nil, &model.ConfigurationError{Message: "failed to load settings", Err: err}
	}
	return settings, nil
}
