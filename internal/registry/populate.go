// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/config"
	"github.com/specialistvlad/dcorder/internal/ctxlog"
	"github.com/specialistvlad/dcorder/internal/dcid"
)

// NewFromModel creates a registry pre-populated from a configuration model.
// The reverse index is not built; see RebuildReverseIndex.
func NewFromModel(ctx context.Context, model *config.Model) (*Registry, error) {
	r := New()
	if err := r.Populate(ctx, model); err != nil {
		return nil, err
	}
	return r, nil
}

// Populate adds the compartments and components of model to the registry.
// Components already present are reused, so several models (or files) may
// contribute to one registry. A component declared in more than one
// compartment ends up owned by the last one.
//
// All problems in the model are collected and reported together.
func (r *Registry) Populate(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)
	if model == nil {
		return fmt.Errorf("registry population failed: model is nil")
	}

	var errs []string
	if model.Configuration != nil {
		r.SetConfiguration(translateConfiguration(model.Configuration))
	}

	for _, mc := range model.Compartments {
		where := mc.FilePath
		if where == "" {
			where = "<unknown>"
		}

		state, err := component.ParseState(mc.State)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: compartment %q: %v", where, component.CompartmentName(mc.Vendor, mc.SoftwareComponent), err))
			continue
		}

		compartment := r.GetOrCreateCompartment(mc.Vendor, mc.SoftwareComponent, state)
		if compartment.State() != state {
			errs = append(errs, fmt.Sprintf("%s: compartment %q declared as %s but already known as %s", where, compartment.Name(), state, compartment.State()))
			continue
		}
		if mc.Caption != "" {
			compartment.Caption = mc.Caption
		}
		if mc.Kind != "" {
			compartment.Kind = mc.Kind
		}
		for _, used := range mc.Uses {
			compartment.Use(used)
		}

		for _, mcomp := range mc.Components {
			if problems := r.populateComponent(compartment, mcomp); len(problems) > 0 {
				for _, p := range problems {
					errs = append(errs, fmt.Sprintf("%s: %s", where, p))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry population failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry populated from configuration model.",
		"compartments", len(model.Compartments),
		"components", model.ComponentCount(),
		"registered", r.Len(),
	)
	return nil
}

// populateComponent registers a single component declaration and returns the
// problems found in it.
func (r *Registry) populateComponent(owner *component.Compartment, mc *config.Component) []string {
	vendor := mc.Vendor
	if vendor == "" {
		vendor = owner.Vendor
	}
	id := dcid.New(vendor, mc.Name)
	if strings.TrimSpace(mc.Name) == "" {
		return []string{fmt.Sprintf("compartment %q: component without a name", owner.Name())}
	}

	var problems []string
	c := r.GetOrCreate(id, component.ParseKind(mc.Type))
	if mc.Caption != "" {
		c.Caption = mc.Caption
	}
	if mc.Description != "" {
		c.Description = mc.Description
	}
	owner.Add(c)

	for _, pp := range mc.PublicParts {
		typ, err := component.ParsePublicPartType(pp.Type)
		if err != nil {
			problems = append(problems, fmt.Sprintf("component %q, public part %q: %v", id, pp.Name, err))
			continue
		}
		c.AddPublicPart(component.PublicPart{Name: pp.Name, Caption: pp.Caption, Type: typ})
	}

	for _, dep := range mc.Dependencies {
		target, err := dcid.Parse(dep.Target)
		if err != nil {
			problems = append(problems, fmt.Sprintf("component %q: dependency: %v", id, err))
			continue
		}
		c.AddDependency(component.Dependency{
			Target:       target,
			PublicPart:   dep.PublicPart,
			AtBuildTime:  dep.BuildTime,
			AtRunTime:    dep.RunTime,
			AtDeployTime: dep.DeployTime,
		})
	}
	return problems
}

func translateConfiguration(mc *config.Configuration) component.Configuration {
	cfg := component.Configuration{
		Name:        mc.Name,
		Caption:     mc.Caption,
		Description: mc.Description,
	}
	if mc.BuildVariant != nil {
		cfg.BuildVariant = component.BuildVariant{
			Name:    mc.BuildVariant.Name,
			Options: maps.Clone(mc.BuildVariant.Options),
		}
	}
	return cfg
}
