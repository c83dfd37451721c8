package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks a track file may contain. Any other
// block type is rejected by the decoder.
type fileRoot struct {
	Configurations []*configurationBlock `hcl:"configuration,block"`
	Compartments   []*compartmentBlock   `hcl:"compartment,block"`
}

// configurationBlock is the `configuration "NAME"` block describing the track.
type configurationBlock struct {
	Name         string             `hcl:"name,label"`
	Caption      string             `hcl:"caption,optional"`
	Description  string             `hcl:"description,optional"`
	BuildVariant *buildVariantBlock `hcl:"build_variant,block"`
}

// buildVariantBlock is the `build_variant "NAME"` block. Options is kept as
// an expression and converted after decoding.
type buildVariantBlock struct {
	Name    string         `hcl:"name,label"`
	Options hcl.Expression `hcl:"options,optional"`
}

// compartmentBlock is the `compartment "VENDOR" "SOFTWARE_COMPONENT"` block.
type compartmentBlock struct {
	Vendor            string            `hcl:"vendor,label"`
	SoftwareComponent string            `hcl:"software_component,label"`
	State             string            `hcl:"state,optional"`
	Caption           string            `hcl:"caption,optional"`
	Kind              string            `hcl:"kind,optional"`
	Uses              []string          `hcl:"uses,optional"`
	Components        []*componentBlock `hcl:"component,block"`
	DefRange          hcl.Range         `hcl:",def_range"`
}

// componentBlock is the `component "VENDOR" "NAME"` block.
type componentBlock struct {
	Vendor      string             `hcl:"vendor,label"`
	Name        string             `hcl:"name,label"`
	Type        string             `hcl:"type,optional"`
	Caption     string             `hcl:"caption,optional"`
	Description string             `hcl:"description,optional"`
	PublicParts []*publicPartBlock `hcl:"public_part,block"`
	Uses        []*usesBlock       `hcl:"uses,block"`
	DefRange    hcl.Range          `hcl:",def_range"`
}

// publicPartBlock is the `public_part "NAME"` block.
type publicPartBlock struct {
	Name     string    `hcl:"name,label"`
	Caption  string    `hcl:"caption,optional"`
	Type     string    `hcl:"type,optional"`
	DefRange hcl.Range `hcl:",def_range"`
}

// usesBlock is the `uses "VENDOR:NAME"` block declaring a dependency.
type usesBlock struct {
	Target     string    `hcl:"target,label"`
	PublicPart string    `hcl:"public_part,optional"`
	BuildTime  *bool     `hcl:"build_time,optional"`
	RunTime    *bool     `hcl:"run_time,optional"`
	DeployTime *bool     `hcl:"deploy_time,optional"`
	DefRange   hcl.Range `hcl:",def_range"`
}
