package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/vkcapgen/internal/app"
	"github.com/specialistvlad/vkcapgen/internal/manifest"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir        string // temporary root every path below lives in
	LogOutput  string
	Err        error
	HeaderPath string
	SourcePath string
	Header     string // empty when the file was not written
	Source     string
}

// WriteFiles writes name → content pairs under dir, creating parents.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// RunGenerate writes the given files into a fresh temporary directory and
// runs the generate command with the manifest at manifest/ and the registry
// documents matched by registry/*. Outputs land in out/.
func RunGenerate(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunGenerateWithConfig(t, files, app.Config{})
}

// RunGenerateWithConfig is RunGenerate with caller-provided overrides.
// Empty path fields are filled with the harness defaults.
func RunGenerateWithConfig(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0o755))
	WriteFiles(t, dir, files)

	if cfg.ManifestPath == "" {
		cfg.ManifestPath = filepath.Join(dir, "manifest")
	}
	if len(cfg.RegistryLocations) == 0 {
		cfg.RegistryLocations = []string{filepath.Join(dir, "registry", "*")}
	}
	if cfg.OutDeclarations == "" {
		cfg.OutDeclarations = filepath.Join(dir, "out", "vk_extensions.h")
	}
	if cfg.OutDefinitions == "" {
		cfg.OutDefinitions = filepath.Join(dir, "out", "vk_extensions.c")
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	result := &HarnessResult{
		Dir:        dir,
		HeaderPath: cfg.OutDeclarations,
		SourcePath: cfg.OutDefinitions,
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		result.Err = err
		return result
	}

	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, validated, manifest.NewLoader())
	result.Err = testApp.Run(context.Background())
	result.LogOutput = logBuffer.String()

	if os.Getenv("VKCAPGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}

	result.Header = readOptional(t, result.HeaderPath)
	result.Source = readOptional(t, result.SourcePath)
	return result
}

func readOptional(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}
