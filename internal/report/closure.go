// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/dcid"
)

// Member is one component of a rebuild set.
type Member struct {
	Component   string `json:"component" yaml:"component"`
	Compartment string `json:"compartment,omitempty" yaml:"compartment,omitempty"`
	Source      bool   `json:"source" yaml:"source"`
}

// Closure is the serializable form of a rebuild set.
type Closure struct {
	Changed    []string `json:"changed" yaml:"changed"`
	RebuildSet []Member `json:"rebuild_set" yaml:"rebuild_set"`
}

// NewClosure flattens the rebuild set computed for changed.
func NewClosure(changed []dcid.ID, rebuild []*component.Component) Closure {
	c := Closure{
		Changed:    dcid.Strings(changed),
		RebuildSet: make([]Member, 0, len(rebuild)),
	}
	for _, comp := range rebuild {
		m := Member{Component: comp.ID().String(), Source: comp.IsSource()}
		if owner := comp.Compartment(); owner != nil {
			m.Compartment = owner.Name()
		}
		c.RebuildSet = append(c.RebuildSet, m)
	}
	return c
}

// WriteClosure writes c to w in the given format.
func WriteClosure(w io.Writer, format Format, c Closure) error {
	if format != FormatText {
		return encode(w, format, c)
	}

	s := newStyles(w)
	var sb strings.Builder
	sb.WriteString(s.heading.Render(fmt.Sprintf("Rebuild set (%d)", len(c.RebuildSet))))
	sb.WriteString("\n")
	for _, m := range c.RebuildSet {
		line := "  " + m.Component
		if !m.Source {
			line += " " + s.muted.Render("(archived)")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
