// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/dcorder/internal/registry"
)

// Finding is the serializable form of a registry.Issue.
type Finding struct {
	Kind       string `json:"kind" yaml:"kind"`
	Component  string `json:"component" yaml:"component"`
	Target     string `json:"target,omitempty" yaml:"target,omitempty"`
	PublicPart string `json:"public_part,omitempty" yaml:"public_part,omitempty"`
	Message    string `json:"message" yaml:"message"`
}

// Validation is the serializable result of validating a track.
type Validation struct {
	Components int       `json:"components" yaml:"components"`
	Findings   []Finding `json:"findings" yaml:"findings"`
}

// NewValidation flattens issues found among the given number of components.
func NewValidation(components int, issues []registry.Issue) Validation {
	v := Validation{
		Components: components,
		Findings:   make([]Finding, 0, len(issues)),
	}
	for _, issue := range issues {
		f := Finding{
			Kind:      string(issue.Kind),
			Component: issue.Component.String(),
			Message:   issue.String(),
		}
		if !issue.Dependency.Target.IsZero() {
			f.Target = issue.Dependency.Target.String()
			f.PublicPart = issue.Dependency.PublicPart
		}
		v.Findings = append(v.Findings, f)
	}
	return v
}

// WriteValidation writes v to w in the given format.
func WriteValidation(w io.Writer, format Format, v Validation) error {
	if format != FormatText {
		return encode(w, format, v)
	}

	s := newStyles(w)
	var sb strings.Builder
	if len(v.Findings) == 0 {
		sb.WriteString(s.heading.Render(fmt.Sprintf("%d component(s), no findings", v.Components)))
		sb.WriteString("\n")
	} else {
		sb.WriteString(s.warning.Render(fmt.Sprintf("%d component(s), %d finding(s)", v.Components, len(v.Findings))))
		sb.WriteString("\n")
		for _, f := range v.Findings {
			fmt.Fprintf(&sb, "  %s %s\n", s.muted.Render("["+f.Kind+"]"), f.Message)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
