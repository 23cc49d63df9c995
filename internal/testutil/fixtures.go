package testutil

// RegistryXML is a trimmed vk.xml carrying the extensions the fixtures use.
const RegistryXML = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
  <extensions>
    <extension name="VK_KHR_surface" number="1" type="instance" author="KHR" supported="vulkan">
      <require>
        <enum value="25" name="VK_KHR_SURFACE_SPEC_VERSION"/>
      </require>
    </extension>
    <extension name="VK_KHR_swapchain" number="2" type="device" requires="VK_KHR_surface" author="KHR" supported="vulkan">
      <require>
        <enum value="70" name="VK_KHR_SWAPCHAIN_SPEC_VERSION"/>
      </require>
    </extension>
    <extension name="VK_KHR_xcb_surface" number="6" type="instance" requires="VK_KHR_surface" platform="xcb" author="KHR" supported="vulkan">
      <require>
        <enum value="6" name="VK_KHR_XCB_SURFACE_SPEC_VERSION"/>
      </require>
    </extension>
    <extension name="VK_KHR_maintenance1" number="70" type="device" promotedto="VK_VERSION_1_1" author="KHR" supported="vulkan">
      <require>
        <enum value="2" name="VK_KHR_MAINTENANCE_1_SPEC_VERSION"/>
      </require>
    </extension>
    <extension name="VK_KHR_16bit_storage" number="84" type="device" author="KHR" supported="vulkan">
      <require>
        <enum value="1" name="VK_KHR_16BIT_STORAGE_SPEC_VERSION"/>
      </require>
    </extension>
  </extensions>
</registry>
`

// Manifest mirrors a small software-rasterizer driver: one enabled core
// version, two disabled ones, and a mix of unconditional and guarded
// extensions.
const Manifest = `
prefix = "lvp"

api_version "1.0.68" {
  enable = true
}

api_version "1.1.107" {
  enable = false
}

api_version "1.2.131" {
  enable = false
}

extension "VK_KHR_16bit_storage" {
  spec_version = 1
  enable       = false
}

extension "VK_KHR_maintenance1" {
  spec_version = 1
  enable       = true
}

extension "VK_KHR_surface" {
  spec_version = 25
  enable       = LVP_HAS_SURFACE
}

extension "VK_KHR_swapchain" {
  spec_version = 68
  enable       = "LVP_HAS_SURFACE"
}

extension "VK_KHR_xcb_surface" {
  spec_version = 6
  enable       = VK_USE_PLATFORM_XCB_KHR
}
`

// Files returns the default file set for RunGenerate.
func Files() map[string]string {
	return map[string]string{
		"manifest/lvp.hcl": Manifest,
		"registry/vk.xml":  RegistryXML,
	}
}
