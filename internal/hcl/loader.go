package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/dcorder/internal/config"
	"github.com/specialistvlad/dcorder/internal/ctxlog"
	"github.com/specialistvlad/dcorder/internal/fsutil"
)

// fileExtension is the suffix of track files.
const fileExtension = ".hcl"

// ErrNoFiles is returned when the given paths contain no track files.
var ErrNoFiles = errors.New("no configuration files found")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load discovers every .hcl file under paths, decodes it and merges all
// blocks into one model. Files are processed in path order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(fileExtension, paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	var configurationFile string
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Configurations {
			if model.Configuration != nil {
				return nil, fmt.Errorf("configuration %q in %s: configuration already declared in %s",
					block.Name, file, configurationFile)
			}
			cfg, cfgDiags := translateConfiguration(ctx, block)
			diags = append(diags, cfgDiags...)
			model.Configuration = cfg
			configurationFile = file
		}
		for _, block := range root.Compartments {
			compartment, compDiags := translateCompartment(block, file)
			diags = append(diags, compDiags...)
			model.Compartments = append(model.Compartments, compartment)
		}
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid HCL file %s: %w", file, diags)
		}
		logger.Debug("Decoded HCL file.", "file", file, "compartments", len(root.Compartments))
	}

	logger.Debug("HCL loading complete.",
		"compartments", len(model.Compartments),
		"components", model.ComponentCount(),
	)
	return model, nil
}
