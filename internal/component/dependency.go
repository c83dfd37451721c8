// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package component

import (
	"cmp"
	"strings"

	"github.com/specialistvlad/dcorder/internal/dcid"
)

// Dependency is a forward edge descriptor: the declaring component uses the
// public part PublicPart of the component Target. The target may not exist
// in the registry; such a dangling reference is treated as no dependency.
type Dependency struct {
	Target     dcid.ID
	PublicPart string

	AtBuildTime  bool
	AtRunTime    bool
	AtDeployTime bool
}

// NewBuildTimeDependency is a shorthand for the most common edge kind.
func NewBuildTimeDependency(target dcid.ID, publicPart string) Dependency {
	return Dependency{Target: target, PublicPart: publicPart, AtBuildTime: true}
}

// Times renders the applicability flags as a compact list, e.g. "build,run".
func (d Dependency) Times() string {
	var times []string
	if d.AtBuildTime {
		times = append(times, "build")
	}
	if d.AtRunTime {
		times = append(times, "run")
	}
	if d.AtDeployTime {
		times = append(times, "deploy")
	}
	return strings.Join(times, ",")
}

// compareDependencies orders by target, then public part, then flags.
func compareDependencies(a, b Dependency) int {
	if c := dcid.Compare(a.Target, b.Target); c != 0 {
		return c
	}
	if c := cmp.Compare(a.PublicPart, b.PublicPart); c != 0 {
		return c
	}
	return cmp.Compare(flagBits(a), flagBits(b))
}

func flagBits(d Dependency) int {
	bits := 0
	if d.AtBuildTime {
		bits |= 1
	}
	if d.AtRunTime {
		bits |= 2
	}
	if d.AtDeployTime {
		bits |= 4
	}
	return bits
}
