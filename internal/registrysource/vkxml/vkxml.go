// Package vkxml reads canonical extension metadata from documents in the
// Khronos vk.xml registry format.
package vkxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/vkcapgen/internal/registrysource"
)

type registryXML struct {
	Extensions []extensionXML `xml:"extensions>extension"`
}

type extensionXML struct {
	Name       string       `xml:"name,attr"`
	Number     string       `xml:"number,attr"`
	Type       string       `xml:"type,attr"`
	Supported  string       `xml:"supported,attr"`
	Requires   string       `xml:"requires,attr"`
	Depends    string       `xml:"depends,attr"`
	Platform   string       `xml:"platform,attr"`
	PromotedTo string       `xml:"promotedto,attr"`
	Author     string       `xml:"author,attr"`
	Require    []requireXML `xml:"require"`
}

type requireXML struct {
	Enums []enumXML `xml:"enum"`
}

type enumXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// extensionRef picks extension names out of a "depends" expression such as
// "(VK_KHR_get_physical_device_properties2,VK_VERSION_1_1)+VK_KHR_surface".
var extensionRef = regexp.MustCompile(`VK_[A-Za-z0-9]+_[A-Za-z0-9_]+`)

// Parse decodes a registry document and returns its extensions in document
// order. Extensions not supported for the "vulkan" API are skipped.
func Parse(r io.Reader) ([]registrysource.CanonicalEntry, error) {
	var doc registryXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding registry XML: %w", err)
	}

	entries := make([]registrysource.CanonicalEntry, 0, len(doc.Extensions))
	for _, ext := range doc.Extensions {
		if !supportsVulkan(ext.Supported) {
			continue
		}
		entry, err := translate(ext)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]registrysource.CanonicalEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening registry %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

func supportsVulkan(supported string) bool {
	// Older registries omit the attribute on some auxiliary documents.
	if supported == "" {
		return true
	}
	for _, api := range strings.Split(supported, ",") {
		if strings.TrimSpace(api) == "vulkan" {
			return true
		}
	}
	return false
}

func translate(ext extensionXML) (registrysource.CanonicalEntry, error) {
	if ext.Name == "" {
		return registrysource.CanonicalEntry{}, fmt.Errorf("extension element without a name")
	}

	typ, err := registrysource.ParseExtensionType(ext.Type)
	if err != nil {
		return registrysource.CanonicalEntry{}, fmt.Errorf("extension %s: %w", ext.Name, err)
	}

	number, err := strconv.Atoi(ext.Number)
	if err != nil {
		return registrysource.CanonicalEntry{}, fmt.Errorf("extension %s: invalid number %q", ext.Name, ext.Number)
	}

	version, err := specVersion(ext)
	if err != nil {
		return registrysource.CanonicalEntry{}, err
	}

	return registrysource.CanonicalEntry{
		Name:       ext.Name,
		Number:     number,
		Type:       typ,
		Version:    version,
		Requires:   dependencies(ext),
		Platform:   ext.Platform,
		PromotedTo: ext.PromotedTo,
		Author:     ext.Author,
	}, nil
}

func specVersion(ext extensionXML) (int, error) {
	for _, req := range ext.Require {
		for _, enum := range req.Enums {
			if !strings.HasSuffix(enum.Name, "_SPEC_VERSION") {
				continue
			}
			v, err := strconv.Atoi(strings.TrimSpace(enum.Value))
			if err != nil {
				return 0, fmt.Errorf("extension %s: invalid %s value %q", ext.Name, enum.Name, enum.Value)
			}
			return v, nil
		}
	}
	return 0, fmt.Errorf("extension %s: no *_SPEC_VERSION enum in require block", ext.Name)
}

// dependencies returns the extension names an extension depends on, in the
// order they first appear. Core version references are dropped.
func dependencies(ext extensionXML) []string {
	raw := ext.Requires
	if ext.Depends != "" {
		raw = ext.Depends
	}
	if raw == "" {
		return nil
	}

	var deps []string
	seen := make(map[string]struct{})
	for _, name := range extensionRef.FindAllString(raw, -1) {
		if strings.HasPrefix(name, "VK_VERSION_") {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		deps = append(deps, name)
	}
	return deps
}
