package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/vkcapgen/internal/ctxlog"
	"github.com/specialistvlad/vkcapgen/internal/output"
	"github.com/specialistvlad/vkcapgen/internal/pipeline"
	"github.com/specialistvlad/vkcapgen/internal/sourceloader"
)

// Run loads the manifest and the registry, compiles them, and publishes both
// artifacts. Nothing is written unless every stage succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	a.logger.Debug("Manifest loaded and translated into unified model.",
		"api_versions", len(model.APIVersions), "extensions", len(model.Extensions))

	source, err := sourceloader.Open(ctx, a.config.RegistryLocations...)
	if err != nil {
		return fmt.Errorf("failed to open registry: %w", err)
	}

	p := pipeline.New(model, source, pipeline.Options{
		Prefix:        a.config.Prefix,
		CeilingPolicy: a.config.CeilingPolicy,
		HeaderName:    filepath.Base(a.config.OutDeclarations),
	})
	artifacts, err := p.Run(ctx)
	if err != nil {
		return err
	}

	err = output.Publish(ctx,
		output.Artifact{Path: a.config.OutDeclarations, Data: artifacts.Declarations},
		output.Artifact{Path: a.config.OutDefinitions, Data: artifacts.Definitions},
	)
	if err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	a.logger.Info("Capability tables generated.",
		"declarations", a.config.OutDeclarations,
		"definitions", a.config.OutDefinitions)
	a.logger.Debug("App.Run method finished.")
	return nil
}
