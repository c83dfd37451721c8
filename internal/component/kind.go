// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package component

import "strings"

// Kind is the categorical type of a component. It is carried for reporting
// only and has no influence on graph algorithms.
type Kind string

const (
	KindUnknown               Kind = "unknown"
	KindJava                  Kind = "Java"
	KindWebModule             Kind = "Web Module"
	KindEJBModule             Kind = "EJB Module"
	KindEnterpriseApplication Kind = "Enterprise Application"
	KindJ2EEServerComponent   Kind = "J2EE Server Component"
	KindExternalLibrary       Kind = "External Library"
	KindWebDynpro             Kind = "Web Dynpro"
	KindBuildPlugin           Kind = "Build Plugin"
	KindComposite             Kind = "Composite"
)

var knownKinds = []Kind{
	KindJava,
	KindWebModule,
	KindEJBModule,
	KindEnterpriseApplication,
	KindJ2EEServerComponent,
	KindExternalLibrary,
	KindWebDynpro,
	KindBuildPlugin,
	KindComposite,
}

// ParseKind maps a configured type name onto a Kind. Matching is
// case-insensitive for the known kinds; unknown names are kept verbatim and
// an empty name yields KindUnknown.
func ParseKind(s string) Kind {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindUnknown
	}
	for _, k := range knownKinds {
		if strings.EqualFold(string(k), s) {
			return k
		}
	}
	return Kind(s)
}

// IsKnown reports whether k is one of the predefined kinds.
func (k Kind) IsKnown() bool {
	for _, known := range knownKinds {
		if k == known {
			return true
		}
	}
	return false
}
