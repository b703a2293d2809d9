package app

import (
	"context"

	"github.com/vk/explainmyconfig/internal/ctxlog"
	"github.com/vk/explainmyconfig/internal/parser"
	"github.com/vk/explainmyconfig/internal/render"
)

// Run executes the explanation pipeline: parse the configuration file into
// the flat ordered model, then render one explained block per entry.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	doc, err := parser.ParseFile(ctx, a.config.FilePath)
	if err != nil {
		return err
	}

	if err := render.Document(a.outW, doc); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.", "entries", len(doc.Entries))
	return nil
}
