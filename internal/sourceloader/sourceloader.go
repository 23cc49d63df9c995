// Package sourceloader turns registry locations given on the command line
// into a single registrysource.Store.
package sourceloader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/vkcapgen/internal/config"
	"github.com/specialistvlad/vkcapgen/internal/ctxlog"
	"github.com/specialistvlad/vkcapgen/internal/fsutil"
	"github.com/specialistvlad/vkcapgen/internal/registrysource"
	"github.com/specialistvlad/vkcapgen/internal/registrysource/snapshot"
	"github.com/specialistvlad/vkcapgen/internal/registrysource/vkxml"
)

// Open expands every location (a path or a doublestar glob), parses each
// matching document according to its extension, and merges the results in
// argument order. The first definition of an extension name wins.
//
// A location that matches nothing is a MissingRequiredInput.
func Open(ctx context.Context, locations ...string) (*registrysource.Store, error) {
	logger := ctxlog.FromContext(ctx)

	if len(locations) == 0 {
		return nil, &config.MissingRequiredInput{Input: "registry source"}
	}

	store := registrysource.NewStore()
	for _, location := range locations {
		paths, err := fsutil.ExpandLocation(location)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, &config.MissingRequiredInput{Input: "registry source", Detail: fmt.Sprintf("%q matches no file", location)}
		}

		for _, path := range paths {
			entries, err := parse(ctx, path)
			if err != nil {
				return nil, err
			}
			shadowed := 0
			for _, e := range entries {
				if !store.Add(e) {
					shadowed++
				}
			}
			logger.Debug("Registry document merged.", "path", path, "extensions", len(entries), "shadowed", shadowed)
		}
	}

	logger.Info("Registry source opened.", "locations", len(locations), "extensions", store.Len())
	return store, nil
}

func parse(ctx context.Context, path string) ([]registrysource.CanonicalEntry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return vkxml.ParseFile(path)
	case ".yaml", ".yml":
		return snapshot.Load(ctx, path)
	default:
		return nil, fmt.Errorf("registry source %s: unsupported file type (want .xml, .yaml or .yml)", path)
	}
}
