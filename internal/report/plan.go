// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/dcid"
	"github.com/specialistvlad/dcorder/internal/resolver"
)

// Document is the serializable form of a plan.
type Document struct {
	PlanID               string   `json:"plan_id" yaml:"plan_id"`
	Configuration        string   `json:"configuration,omitempty" yaml:"configuration,omitempty"`
	BuildVariant         string   `json:"build_variant,omitempty" yaml:"build_variant,omitempty"`
	Changed              []string `json:"changed" yaml:"changed"`
	RebuildSet           []string `json:"rebuild_set" yaml:"rebuild_set"`
	Order                []Step   `json:"order" yaml:"order"`
	CircularDependencies []Cycle  `json:"circular_dependencies" yaml:"circular_dependencies"`
	Excluded             []string `json:"excluded" yaml:"excluded"`
	Skipped              []string `json:"skipped" yaml:"skipped"`
}

// Step is one entry of the build order.
type Step struct {
	Position    int    `json:"position" yaml:"position"`
	Component   string `json:"component" yaml:"component"`
	Kind        string `json:"kind" yaml:"kind"`
	Compartment string `json:"compartment,omitempty" yaml:"compartment,omitempty"`
}

// Cycle is one unorderable pair.
type Cycle struct {
	Component  string `json:"component" yaml:"component"`
	Dependency string `json:"dependency" yaml:"dependency"`
	OnCycle    bool   `json:"on_cycle" yaml:"on_cycle"`
}

// NewDocument flattens plan. cfg adds the track name when it is known.
func NewDocument(plan *resolver.Plan, cfg component.Configuration) Document {
	doc := Document{
		PlanID:               plan.ID,
		Configuration:        cfg.Name,
		BuildVariant:         cfg.BuildVariant.Name,
		Changed:              dcid.Strings(plan.Changed),
		RebuildSet:           names(plan.RebuildSet),
		Order:                make([]Step, 0, len(plan.Components)),
		CircularDependencies: make([]Cycle, 0, len(plan.CircularDependencies)),
		Excluded:             names(plan.Excluded()),
		Skipped:              names(plan.Skipped),
	}
	for i, c := range plan.Components {
		step := Step{
			Position:  i + 1,
			Component: c.ID().String(),
			Kind:      string(c.Kind()),
		}
		if owner := c.Compartment(); owner != nil {
			step.Compartment = owner.Name()
		}
		doc.Order = append(doc.Order, step)
	}
	for _, cd := range plan.CircularDependencies {
		doc.CircularDependencies = append(doc.CircularDependencies, Cycle{
			Component:  cd.Component.ID().String(),
			Dependency: cd.Dependency.ID().String(),
			OnCycle:    cd.OnCycle,
		})
	}
	return doc
}

// WritePlan writes doc to w in the given format.
func WritePlan(w io.Writer, format Format, doc Document) error {
	if format != FormatText {
		return encode(w, format, doc)
	}
	_, err := io.WriteString(w, renderPlan(newStyles(w), doc))
	return err
}

func renderPlan(s styles, doc Document) string {
	var sb strings.Builder

	title := "Build plan " + doc.PlanID
	if doc.Configuration != "" {
		title += " for " + doc.Configuration
	}
	sb.WriteString(s.title.Render(title))
	sb.WriteString("\n")
	if len(doc.Changed) > 0 {
		fmt.Fprintf(&sb, "Changed: %s\n", strings.Join(doc.Changed, ", "))
	}
	fmt.Fprintf(&sb, "Rebuild set: %d component(s)\n", len(doc.RebuildSet))

	sb.WriteString("\n")
	sb.WriteString(s.heading.Render(fmt.Sprintf("Build order (%d)", len(doc.Order))))
	sb.WriteString("\n")
	if len(doc.Order) == 0 {
		sb.WriteString(s.muted.Render("  nothing to build"))
		sb.WriteString("\n")
	}
	width := 0
	for _, step := range doc.Order {
		width = max(width, lipgloss.Width(step.Component))
	}
	column := s.body.Width(width)
	for _, step := range doc.Order {
		fmt.Fprintf(&sb, "%4d. %s  %s\n",
			step.Position,
			column.Render(step.Component),
			s.muted.Render(fmt.Sprintf("[%s] %s", step.Kind, step.Compartment)),
		)
	}

	if len(doc.CircularDependencies) > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.warning.Render(fmt.Sprintf(
			"Circular dependencies: %d component(s) excluded from build", len(doc.Excluded))))
		sb.WriteString("\n")
		for _, cd := range doc.CircularDependencies {
			reason := "blocked by cycle"
			if cd.OnCycle {
				reason = "cycle"
			}
			fmt.Fprintf(&sb, "  %s -> %s %s\n", cd.Component, cd.Dependency, s.muted.Render("("+reason+")"))
		}
	}

	if len(doc.Skipped) > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.heading.Render("Not in a source compartment"))
		sb.WriteString("\n")
		for _, id := range doc.Skipped {
			fmt.Fprintf(&sb, "  %s\n", id)
		}
	}
	return sb.String()
}

func names(components []*component.Component) []string {
	return dcid.Strings(component.IDs(components))
}
