// Package manifest provides the HCL implementation of config.Loader. It
// parses capability manifests, keeps every block in source order, and
// translates them into the format-agnostic config.Model.
//
// A manifest looks like:
//
//	prefix         = "lvp"
//	ceiling_policy = "last_declared"
//
//	api_version "1.0.68" {
//	  enable = true
//	}
//
//	extension "VK_KHR_xcb_surface" {
//	  spec_version = 6
//	  enable       = VK_USE_PLATFORM_XCB_KHR
//	}
package manifest
