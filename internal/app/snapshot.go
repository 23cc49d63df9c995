package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/specialistvlad/vkcapgen/internal/ctxlog"
	"github.com/specialistvlad/vkcapgen/internal/output"
	"github.com/specialistvlad/vkcapgen/internal/registrysource/snapshot"
	"github.com/specialistvlad/vkcapgen/internal/sourceloader"
)

// Snapshot opens the configured registry locations and pins the merged
// result as a YAML snapshot at SnapshotPath.
func (a *App) Snapshot(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	source, err := sourceloader.Open(ctx, a.config.RegistryLocations...)
	if err != nil {
		return fmt.Errorf("failed to open registry: %w", err)
	}

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, source.Entries()); err != nil {
		return err
	}
	if err := output.Publish(ctx, output.Artifact{Path: a.config.SnapshotPath, Data: buf.Bytes()}); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	a.logger.Info("Registry snapshot written.", "path", a.config.SnapshotPath, "extensions", source.Len())
	return nil
}
