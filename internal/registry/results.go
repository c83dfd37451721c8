// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/dcorder/internal/dcid"
)

// ApplyBuildResults feeds the outcome of a build back into the rebuild
// flags: succeeded components are cleared, failed ones are (re)flagged.
// Known identifiers are applied even when some are unknown; the unknown ones
// are reported in an error wrapping ErrNotRegistered.
func (r *Registry) ApplyBuildResults(succeeded, failed []dcid.ID) error {
	var unknown []string

	apply := func(ids []dcid.ID, needsRebuild bool) {
		for _, id := range ids {
			c, ok := r.Get(id)
			if !ok {
				unknown = append(unknown, id.String())
				continue
			}
			c.SetNeedsRebuild(needsRebuild)
		}
	}
	apply(succeeded, false)
	apply(failed, true)

	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrNotRegistered, strings.Join(unknown, ", "))
	}
	return nil
}
