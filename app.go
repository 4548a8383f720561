package main

import (
	"context"
	"log/slog"
)

// App struct
type App struct {
	ctx context.Context
	log *slog.Logger
}

func NewApp(log *slog.Logger) *App {
	return &App{log: log}
}

// startup is called when the app starts. The context is saved so we can
// call the runtime methods.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.log.Info("console started")
}
