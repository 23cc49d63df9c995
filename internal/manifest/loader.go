package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/vkcapgen/internal/config"
	"github.com/specialistvlad/vkcapgen/internal/ctxlog"
	"github.com/specialistvlad/vkcapgen/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// rootSchema describes every top-level item a manifest file may contain.
// Anything else is rejected by the parser.
var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "prefix"},
		{Name: "ceiling_policy"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "api_version", LabelNames: []string{"version"}},
		{Type: "extension", LabelNames: []string{"name"}},
	},
}

// Load parses each path (a file, or a directory walked in lexical order) and
// merges the blocks into one model in the order they were read.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL manifest loader started.", "path_count", len(paths))

	if len(paths) == 0 {
		return nil, &config.MissingRequiredInput{Input: "manifest"}
	}

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, &config.MissingRequiredInput{Input: "manifest", Detail: err.Error()}
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, &config.MissingRequiredInput{Input: "manifest", Detail: "no .hcl files found"}
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}
	var settings topLevel

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		content, diags := hclFile.Body.Content(rootSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := settings.merge(content.Attributes); err != nil {
			return nil, err
		}

		for _, block := range content.Blocks {
			switch block.Type {
			case "api_version":
				decl, err := translateAPIVersion(block)
				if err != nil {
					return nil, err
				}
				model.APIVersions = append(model.APIVersions, decl)
			case "extension":
				decl, err := translateExtension(block)
				if err != nil {
					return nil, err
				}
				model.Extensions = append(model.Extensions, decl)
			}
		}
		logger.Debug("Manifest file loaded.", "file", file, "blocks", len(content.Blocks))
	}

	model.Prefix = settings.prefix.value
	model.CeilingPolicy = settings.ceilingPolicy.value

	logger.Debug("HCL manifest loading complete.",
		"api_versions", len(model.APIVersions),
		"extensions", len(model.Extensions),
		"prefix", model.Prefix,
	)
	return model, nil
}
