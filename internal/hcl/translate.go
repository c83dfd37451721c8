// This file translates the decoded HCL blocks into the format-agnostic
// configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/config"
	"github.com/specialistvlad/dcorder/internal/ctxlog"
	"github.com/specialistvlad/dcorder/internal/dcid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

func translateConfiguration(ctx context.Context, b *configurationBlock) (*config.Configuration, hcl.Diagnostics) {
	cfg := &config.Configuration{
		Name:        b.Name,
		Caption:     b.Caption,
		Description: b.Description,
	}
	if b.BuildVariant == nil {
		return cfg, nil
	}

	options, diags := decodeOptions(ctx, b.BuildVariant)
	if diags.HasErrors() {
		return nil, diags
	}
	cfg.BuildVariant = &config.BuildVariant{
		Name:    b.BuildVariant.Name,
		Options: options,
	}
	return cfg, diags
}

// decodeOptions evaluates the options expression and converts it into a
// string map. Numbers and bools are converted to their string form; an
// absent or null expression yields an empty map.
func decodeOptions(ctx context.Context, b *buildVariantBlock) (map[string]string, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	options := make(map[string]string)
	if b.Options == nil {
		return options, nil
	}

	val, diags := b.Options.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return options, diags
	}
	if !val.IsWhollyKnown() {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid build variant options",
			Detail:   "The 'options' attribute must be known at load time.",
			Subject:  b.Options.Range().Ptr(),
		})
	}

	target := cty.Map(cty.String)
	converted, err := convert.Convert(val, target)
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid build variant options",
			Detail: fmt.Sprintf("Cannot convert %s to required type %s: %s.",
				val.Type().FriendlyName(), target.FriendlyName(), err),
			Subject: b.Options.Range().Ptr(),
		})
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted options type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	if err := gocty.FromCtyValue(converted, &options); err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid build variant options",
			Detail:   err.Error(),
			Subject:  b.Options.Range().Ptr(),
		})
	}
	return options, diags
}

// translateCompartment converts a compartment block and checks the values
// that can be judged from the block alone. Checks spanning several files,
// such as conflicting states, are left to the registry.
func translateCompartment(b *compartmentBlock, file string) (*config.Compartment, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	if _, err := component.ParseState(b.State); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid compartment state",
			Detail:   fmt.Sprintf("Compartment %q: %s.", component.CompartmentName(b.Vendor, b.SoftwareComponent), err),
			Subject:  &b.DefRange,
		})
	}

	c := &config.Compartment{
		Vendor:            b.Vendor,
		SoftwareComponent: b.SoftwareComponent,
		Caption:           b.Caption,
		Kind:              b.Kind,
		State:             b.State,
		Uses:              b.Uses,
		FilePath:          file,
	}
	for _, block := range b.Components {
		comp, compDiags := translateComponent(block)
		diags = append(diags, compDiags...)
		c.Components = append(c.Components, comp)
	}
	return c, diags
}

func translateComponent(b *componentBlock) (*config.Component, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	if strings.TrimSpace(b.Name) == "" {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing component name",
			Detail:   "A component block needs a non-empty name label.",
			Subject:  &b.DefRange,
		})
	}

	c := &config.Component{
		Vendor:      b.Vendor,
		Name:        b.Name,
		Type:        b.Type,
		Caption:     b.Caption,
		Description: b.Description,
	}
	for _, pp := range b.PublicParts {
		if _, err := component.ParsePublicPartType(pp.Type); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid public part type",
				Detail:   fmt.Sprintf("Public part %q of component %q: %s.", pp.Name, b.Name, err),
				Subject:  &pp.DefRange,
			})
		}
		c.PublicParts = append(c.PublicParts, &config.PublicPart{
			Name:    pp.Name,
			Caption: pp.Caption,
			Type:    pp.Type,
		})
	}
	for _, u := range b.Uses {
		if _, err := dcid.Parse(u.Target); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid dependency target",
				Detail:   fmt.Sprintf("Component %q: %s. Targets are written as 'vendor:name'.", b.Name, err),
				Subject:  &u.DefRange,
			})
		}
		c.Dependencies = append(c.Dependencies, &config.Dependency{
			Target:     u.Target,
			PublicPart: u.PublicPart,
			BuildTime:  boolOr(u.BuildTime, true),
			RunTime:    boolOr(u.RunTime, false),
			DeployTime: boolOr(u.DeployTime, false),
		})
	}
	return c, diags
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
