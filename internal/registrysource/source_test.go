package registrysource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func surface() CanonicalEntry {
	return CanonicalEntry{Name: "VK_KHR_surface", Number: 1, Type: TypeInstance, Version: 25}
}

func TestStore_Lookup(t *testing.T) {
	s := NewStore(surface(), CanonicalEntry{Name: "VK_KHR_swapchain", Number: 2, Type: TypeDevice, Version: 70, Requires: []string{"VK_KHR_surface"}})

	testCases := []struct {
		name        string
		extension   string
		specVersion int
		sentinel    error
	}{
		{name: "exact revision", extension: "VK_KHR_surface", specVersion: 25},
		{name: "older revision", extension: "VK_KHR_swapchain", specVersion: 68},
		{name: "error - newer than published", extension: "VK_KHR_surface", specVersion: 26, sentinel: ErrUnknownVersion},
		{name: "error - zero revision", extension: "VK_KHR_surface", specVersion: 0, sentinel: ErrUnknownVersion},
		{name: "error - absent", extension: "VK_FOO_test", specVersion: 1, sentinel: ErrUnknownExtension},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := s.Lookup(tc.extension, tc.specVersion)
			if tc.sentinel != nil {
				require.ErrorIs(t, err, tc.sentinel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.extension, entry.Name)
		})
	}
}

func TestStore_UnknownExtensionDetails(t *testing.T) {
	_, err := NewStore().Lookup("VK_FOO_test", 1)
	var unknown *UnknownExtension
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "VK_FOO_test", unknown.Name)
	assert.Contains(t, err.Error(), "VK_FOO_test")
}

func TestStore_FirstDefinitionWins(t *testing.T) {
	s := NewStore(surface())
	replaced := surface()
	replaced.Version = 99
	assert.False(t, s.Add(replaced))

	entry, err := s.Lookup("VK_KHR_surface", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, entry.Version)
}

func TestStore_EntriesSorted(t *testing.T) {
	s := NewStore(
		CanonicalEntry{Name: "VK_KHR_b", Version: 1, Type: TypeDevice},
		CanonicalEntry{Name: "VK_EXT_a", Version: 1, Type: TypeDevice},
	)
	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "VK_EXT_a", entries[0].Name)
}

func TestStore_LookupReturnsCopy(t *testing.T) {
	s := NewStore(CanonicalEntry{Name: "VK_KHR_swapchain", Version: 70, Type: TypeDevice, Requires: []string{"VK_KHR_surface"}})
	entry, err := s.Lookup("VK_KHR_swapchain", 70)
	require.NoError(t, err)
	entry.Requires[0] = "mutated"

	again, err := s.Lookup("VK_KHR_swapchain", 70)
	require.NoError(t, err)
	assert.Equal(t, []string{"VK_KHR_surface"}, again.Requires)
}

func TestCountingSource(t *testing.T) {
	c := &CountingSource{Source: NewStore(surface())}
	_, _ = c.Lookup("VK_KHR_surface", 1)
	_, _ = c.Lookup("VK_FOO_test", 1)

	assert.Equal(t, 1, c.Calls("VK_KHR_surface"))
	assert.Equal(t, []string{"VK_KHR_surface", "VK_FOO_test"}, c.Order())
}

func TestCanonicalEntry_Validate(t *testing.T) {
	require.NoError(t, surface().Validate())
	require.Error(t, CanonicalEntry{Name: "VK_X", Version: 1, Type: "bogus"}.Validate())
	require.Error(t, CanonicalEntry{Name: "VK_X", Version: 0, Type: TypeDevice}.Validate())
	require.Error(t, CanonicalEntry{Version: 1, Type: TypeDevice}.Validate())
}
