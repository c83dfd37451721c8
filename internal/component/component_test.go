// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package component

import (
	"testing"

	"github.com/specialistvlad/dcorder/internal/dcid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsKind(t *testing.T) {
	c := New(dcid.New("example.org", "one"), "")
	assert.Equal(t, KindUnknown, c.Kind())
	assert.Equal(t, "example.org:one", c.String())
	assert.Equal(t, "example.org", c.Vendor())
	assert.Equal(t, "one", c.Name())
	assert.Empty(t, c.Dependencies())
	assert.Empty(t, c.PublicParts())
	assert.False(t, c.NeedsRebuild())
	assert.Nil(t, c.Compartment())
}

func TestPublicParts(t *testing.T) {
	c := New(dcid.New("v", "c"), KindJava)
	c.AddPublicPart(PublicPart{Name: "impl", Type: Assembly})
	c.AddPublicPart(PublicPart{Name: "api"})
	c.AddPublicPart(PublicPart{Name: "api", Caption: "replaced"})

	parts := c.PublicParts()
	require.Len(t, parts, 2)
	assert.Equal(t, "api", parts[0].Name)
	assert.Equal(t, "replaced", parts[0].Caption)
	assert.Equal(t, "impl", parts[1].Name)

	pp, ok := c.PublicPart("impl")
	require.True(t, ok)
	assert.Equal(t, Assembly, pp.Type)

	_, ok = c.PublicPart("missing")
	assert.False(t, ok)
}

func TestDependencies_SetSemantics(t *testing.T) {
	c := New(dcid.New("v", "c"), KindJava)
	b := dcid.New("v", "b")
	a := dcid.New("v", "a")

	c.AddDependency(NewBuildTimeDependency(b, "api"))
	c.AddDependency(NewBuildTimeDependency(a, "api"))
	c.AddDependency(NewBuildTimeDependency(b, "api"))
	c.AddDependency(Dependency{Target: b, PublicPart: "api", AtRunTime: true})

	deps := c.Dependencies()
	require.Len(t, deps, 3)
	assert.Equal(t, a, deps[0].Target)
	assert.Equal(t, b, deps[1].Target)
	assert.True(t, c.DependsOn(a))
	assert.False(t, c.DependsOn(dcid.New("v", "zzz")))

	c.RemoveDependency(NewBuildTimeDependency(a, "api"))
	assert.False(t, c.DependsOn(a))
}

func TestDependency_Times(t *testing.T) {
	d := Dependency{AtBuildTime: true, AtDeployTime: true}
	assert.Equal(t, "build,deploy", d.Times())
	assert.Equal(t, "", Dependency{}.Times())
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindUnknown, ParseKind(" "))
	assert.Equal(t, KindWebModule, ParseKind("web module"))
	assert.True(t, ParseKind("java").IsKnown())
	custom := ParseKind("Something Else")
	assert.Equal(t, Kind("Something Else"), custom)
	assert.False(t, custom.IsKnown())
}

func TestParsePublicPartType(t *testing.T) {
	typ, err := ParsePublicPartType("")
	require.NoError(t, err)
	assert.Equal(t, Compilation, typ)

	typ, err = ParsePublicPartType("Assembly")
	require.NoError(t, err)
	assert.Equal(t, Assembly, typ)
	assert.Equal(t, "assembly", typ.String())

	_, err = ParsePublicPartType("weird")
	assert.ErrorContains(t, err, "unknown public part type")
}

func TestSortByID(t *testing.T) {
	cs := []*Component{
		New(dcid.New("b", "x"), ""),
		New(dcid.New("a", "y"), ""),
		New(dcid.New("a", "x"), ""),
	}
	SortByID(cs)
	assert.Equal(t, []string{"a:x", "a:y", "b:x"}, dcid.Strings(IDs(cs)))
}
