// Package output publishes generated artifacts. Every artifact is first
// written to a temporary file next to its destination; destinations are only
// replaced once all temporary files are complete, so a failed run leaves the
// previous artifacts untouched.
package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specialistvlad/vkcapgen/internal/ctxlog"
)

const defaultPerm fs.FileMode = 0o644

// Artifact is one file to publish.
type Artifact struct {
	Path string
	Data []byte
	// Perm defaults to the mode of the existing destination, or 0644 for a
	// new file.
	Perm fs.FileMode
}

type staged struct {
	artifact Artifact
	tmp      string
}

// Publish stages every artifact and then renames them into place. Artifacts
// whose destination already holds identical bytes are left alone so that
// unchanged outputs keep their modification time.
func Publish(ctx context.Context, artifacts ...Artifact) error {
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]struct{}, len(artifacts))
	for _, a := range artifacts {
		if a.Path == "" {
			return errors.New("output path must not be empty")
		}
		abs, absErr := filepath.Abs(a.Path)
		if absErr != nil {
			return fmt.Errorf("resolving %s: %w", a.Path, absErr)
		}
		if _, dup := seen[abs]; dup {
			return fmt.Errorf("output %s is given more than once", a.Path)
		}
		seen[abs] = struct{}{}
	}

	var pending []staged
	defer func() {
		for _, s := range pending {
			if rmErr := os.Remove(s.tmp); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				logger.Warn("Failed to remove temporary file.", "path", s.tmp, "error", rmErr)
			}
		}
	}()

	for _, a := range artifacts {
		if unchanged(a) {
			logger.Debug("Artifact unchanged, skipping.", "path", a.Path)
			continue
		}
		tmp, stageErr := stage(a)
		if stageErr != nil {
			return stageErr
		}
		pending = append(pending, staged{artifact: a, tmp: tmp})
	}

	for len(pending) > 0 {
		s := pending[0]
		if renameErr := os.Rename(s.tmp, s.artifact.Path); renameErr != nil {
			return fmt.Errorf("publishing %s: %w", s.artifact.Path, renameErr)
		}
		pending = pending[1:]
		logger.Info("Artifact written.", "path", s.artifact.Path, "bytes", len(s.artifact.Data))
	}
	return nil
}

func unchanged(a Artifact) bool {
	existing, err := os.ReadFile(a.Path)
	if err != nil {
		return false
	}
	return bytes.Equal(existing, a.Data)
}

func stage(a Artifact) (string, error) {
	dir := filepath.Dir(a.Path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(a.Path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("staging %s: %w", a.Path, err)
	}
	tmp := f.Name()

	fail := func(err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("staging %s: %w", a.Path, err)
	}

	if _, err := f.Write(a.Data); err != nil {
		return fail(err)
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	if err := f.Chmod(permFor(a)); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("staging %s: %w", a.Path, err)
	}
	return tmp, nil
}

func permFor(a Artifact) fs.FileMode {
	if a.Perm != 0 {
		return a.Perm
	}
	if info, err := os.Stat(a.Path); err == nil {
		return info.Mode().Perm()
	}
	return defaultPerm
}
