package vkxml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/vkcapgen/internal/registrysource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryDoc = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
  <comment>trimmed for tests</comment>
  <extensions comment="Vulkan extension interface definitions">
    <extension name="VK_KHR_surface" number="1" type="instance" author="KHR" supported="vulkan,vulkansc">
      <require>
        <enum value="25" name="VK_KHR_SURFACE_SPEC_VERSION"/>
        <enum value="&quot;VK_KHR_surface&quot;" name="VK_KHR_SURFACE_EXTENSION_NAME"/>
      </require>
    </extension>
    <extension name="VK_KHR_swapchain" number="2" type="device" requires="VK_KHR_surface" author="KHR" supported="vulkan">
      <require>
        <enum value="70" name="VK_KHR_SWAPCHAIN_SPEC_VERSION"/>
      </require>
    </extension>
    <extension name="VK_KHR_xcb_surface" number="6" type="instance" depends="VK_KHR_surface+(VK_VERSION_1_1,VK_KHR_surface)" platform="xcb" author="KHR" supported="vulkan">
      <require>
        <enum value="6" name="VK_KHR_XCB_SURFACE_SPEC_VERSION"/>
      </require>
    </extension>
    <extension name="VK_KHR_maintenance1" number="70" type="device" promotedto="VK_VERSION_1_1" author="KHR" supported="vulkan">
      <require>
        <enum value="2" name="VK_KHR_MAINTENANCE_1_SPEC_VERSION"/>
      </require>
    </extension>
    <extension name="VK_NV_extension_1" number="99" author="NV" supported="disabled">
      <require>
        <enum value="0" name="VK_NV_EXTENSION_1_SPEC_VERSION"/>
      </require>
    </extension>
  </extensions>
</registry>
`

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(registryDoc))
	require.NoError(t, err)
	require.Len(t, entries, 4, "disabled extensions must be skipped")

	assert.Equal(t, registrysource.CanonicalEntry{
		Name: "VK_KHR_surface", Number: 1, Type: registrysource.TypeInstance, Version: 25, Author: "KHR",
	}, entries[0])

	assert.Equal(t, "VK_KHR_swapchain", entries[1].Name)
	assert.Equal(t, registrysource.TypeDevice, entries[1].Type)
	assert.Equal(t, []string{"VK_KHR_surface"}, entries[1].Requires)

	assert.Equal(t, []string{"VK_KHR_surface"}, entries[2].Requires, "core versions and repeats are dropped")
	assert.Equal(t, "xcb", entries[2].Platform)

	assert.Equal(t, "VK_VERSION_1_1", entries[3].PromotedTo)
	assert.Equal(t, 2, entries[3].Version)
}

func TestParse_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "missing spec version enum",
			doc:  `<registry><extensions><extension name="VK_X_a" number="1" type="device" supported="vulkan"><require/></extension></extensions></registry>`,
		},
		{
			name: "unknown type",
			doc:  `<registry><extensions><extension name="VK_X_a" number="1" type="queue" supported="vulkan"><require><enum value="1" name="VK_X_A_SPEC_VERSION"/></require></extension></extensions></registry>`,
		},
		{
			name: "non-numeric spec version",
			doc:  `<registry><extensions><extension name="VK_X_a" number="1" type="device" supported="vulkan"><require><enum value="one" name="VK_X_A_SPEC_VERSION"/></require></extension></extensions></registry>`,
		},
		{
			name: "not xml",
			doc:  `{"extensions": []}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.doc))
			require.Error(t, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vk.xml")
	require.NoError(t, os.WriteFile(path, []byte(registryDoc), 0o600))

	entries, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
}
