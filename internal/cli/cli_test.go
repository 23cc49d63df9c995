package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/vkcapgen/internal/app"
	"github.com/specialistvlad/vkcapgen/internal/config"
	"github.com/specialistvlad/vkcapgen/internal/registrysource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		args            []string
		expectedCommand Command
		expectedCode    int
		expectedConfig  *app.Config
		checkOutput     func(t *testing.T, output string)
		checkErr        func(t *testing.T, err error)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"--manifest", "/src/lvp.hcl",
				"--xml", "/reg/vk.xml",
				"--registry=/reg/extra/*.yaml",
				"--xml", "/reg/vk_video.xml",
				"--out-h", "/out/lvp_extensions.h",
				"--out-c=/out/lvp_extensions.c",
				"--prefix", "lvp",
				"--ceiling-policy", "enabled_prefix",
				"--log-level=DEBUG",
				"--log-format=json",
			},
			expectedCommand: CommandGenerate,
			expectedConfig: &app.Config{
				ManifestPath:      "/src/lvp.hcl",
				RegistryLocations: []string{"/reg/vk.xml", "/reg/vk_video.xml", "/reg/extra/*.yaml"},
				OutDeclarations:   "/out/lvp_extensions.h",
				OutDefinitions:    "/out/lvp_extensions.c",
				Prefix:            "lvp",
				CeilingPolicy:     "enabled_prefix",
				LogLevel:          "debug",
				LogFormat:         "json",
			},
		},
		{
			name:            "Shorthand flag and defaults",
			args:            []string{"-m", "manifests", "--xml", "vk.xml", "--out-h", "a.h", "--out-c", "a.c"},
			expectedCommand: CommandGenerate,
			expectedConfig: &app.Config{
				ManifestPath:      "manifests",
				RegistryLocations: []string{"vk.xml"},
				OutDeclarations:   "a.h",
				OutDefinitions:    "a.c",
				LogLevel:          "info",
				LogFormat:         "text",
			},
		},
		{
			name:            "Snapshot subcommand",
			args:            []string{"snapshot", "--xml", "vk.xml", "-o", "vk.yaml", "--log-level", "warn"},
			expectedCommand: CommandSnapshot,
			expectedConfig: &app.Config{
				RegistryLocations: []string{"vk.xml"},
				SnapshotPath:      "vk.yaml",
				LogLevel:          "warn",
				LogFormat:         "text",
			},
		},
		{
			name:            "No arguments prints usage",
			args:            []string{},
			expectedCommand: CommandNone,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:            "Help flag triggers clean exit",
			args:            []string{"-h"},
			expectedCommand: CommandNone,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "--out-h")
				require.Contains(t, output, "snapshot")
			},
		},
		{
			name:         "Missing manifest",
			args:         []string{"--xml", "vk.xml", "--out-h", "a.h", "--out-c", "a.c"},
			expectedCode: ExitUsage,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "missing required input: manifest")
			},
		},
		{
			name:         "Missing registry",
			args:         []string{"-m", "lvp.hcl", "--out-h", "a.h", "--out-c", "a.c"},
			expectedCode: ExitUsage,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "registry source")
			},
		},
		{
			name:         "Missing output",
			args:         []string{"-m", "lvp.hcl", "--xml", "vk.xml", "--out-h", "a.h"},
			expectedCode: ExitUsage,
		},
		{
			name:         "Snapshot without output",
			args:         []string{"snapshot", "--xml", "vk.xml"},
			expectedCode: ExitUsage,
		},
		{
			name:         "Invalid log level",
			args:         []string{"-m", "lvp.hcl", "--xml", "vk.xml", "--out-h", "a.h", "--out-c", "a.c", "--log-level", "loud"},
			expectedCode: ExitUsage,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "invalid log-level")
			},
		},
		{
			name:         "Invalid log format",
			args:         []string{"-m", "lvp.hcl", "--xml", "vk.xml", "--out-h", "a.h", "--out-c", "a.c", "--log-format", "xml"},
			expectedCode: ExitUsage,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "invalid log-format")
			},
		},
		{
			name:         "Unknown flag",
			args:         []string{"--this-is-not-a-valid-flag"},
			expectedCode: ExitUsage,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "this-is-not-a-valid-flag")
			},
		},
		{
			name:         "Positional arguments are rejected",
			args:         []string{"lvp.hcl"},
			expectedCode: ExitUsage,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, command, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.expectedCode != 0 {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %T", err)
				assert.Equal(t, tc.expectedCode, exitErr.Code)
				assert.Nil(t, cfg)
				if tc.checkErr != nil {
					tc.checkErr(t, err)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedCommand, command)
			if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
				t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}

func TestAsExitError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "exit error passes through",
			err:  &ExitError{Code: 7, Message: "custom"},
			code: 7,
		},
		{
			name: "missing input is a usage error",
			err:  fmt.Errorf("failed to load manifest: %w", &config.MissingRequiredInput{Input: "manifest"}),
			code: ExitUsage,
		},
		{
			name: "compile failure",
			err:  &registrysource.UnknownExtension{Name: "VK_FOO_test"},
			code: ExitFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AsExitError(tc.err)
			assert.Equal(t, tc.code, got.Code)
			assert.Equal(t, tc.err.Error(), got.Message)
		})
	}
}
