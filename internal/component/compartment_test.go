// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package component

import (
	"testing"

	"github.com/specialistvlad/dcorder/internal/dcid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompartment(t *testing.T) {
	c := NewCompartment("sap.com", "SAP_BUILDT", Archive)
	assert.Equal(t, "sap.com_SAP_BUILDT_1", c.Name())
	assert.Equal(t, Archive, c.State())
	assert.Zero(t, c.Len())

	c.SetState(Source)
	assert.Equal(t, Source, c.State())
}

func TestCompartment_Ownership(t *testing.T) {
	first := NewCompartment("v", "FIRST", Source)
	second := NewCompartment("v", "SECOND", Archive)
	comp := New(dcid.New("v", "c"), "")

	first.Add(comp)
	require.Same(t, first, comp.Compartment())
	assert.True(t, comp.IsSource())
	assert.True(t, first.Contains(comp))

	t.Run("reassignment clears the previous owner", func(t *testing.T) {
		second.Add(comp)
		assert.Same(t, second, comp.Compartment())
		assert.False(t, first.Contains(comp))
		assert.Zero(t, first.Len())
		assert.False(t, comp.IsSource())
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		second.Add(comp)
		assert.Equal(t, 1, second.Len())
	})

	t.Run("remove clears the back-reference", func(t *testing.T) {
		second.Remove(comp)
		assert.Nil(t, comp.Compartment())
		assert.False(t, second.Contains(comp))
		assert.False(t, comp.IsSource())
	})

	t.Run("removing a non-member does nothing", func(t *testing.T) {
		first.Add(comp)
		second.Remove(comp)
		assert.Same(t, first, comp.Compartment())
	})
}

func TestCompartment_ComponentsSorted(t *testing.T) {
	c := NewCompartment("v", "SC", Source)
	c.Add(New(dcid.New("v", "b"), ""))
	c.Add(New(dcid.New("v", "a"), ""))
	assert.Equal(t, []string{"v:a", "v:b"}, dcid.Strings(IDs(c.Components())))
}

func TestCompartment_Uses(t *testing.T) {
	c := NewCompartment("v", "SC", Source)
	c.Use("z_1")
	c.Use("a_1")
	c.Use("z_1")
	assert.Equal(t, []string{"a_1", "z_1"}, c.UsedCompartments())
}

func TestParseState(t *testing.T) {
	s, err := ParseState("ARCHIVE")
	require.NoError(t, err)
	assert.Equal(t, Archive, s)

	s, err = ParseState("")
	require.NoError(t, err)
	assert.Equal(t, Source, s)

	_, err = ParseState("frozen")
	assert.ErrorContains(t, err, "unknown compartment state")
}
