// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dag

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/dcorder/internal/dcid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(name string) dcid.ID {
	return dcid.New("example.org", name)
}

// build creates a graph from "a -> b" edges meaning a depends on b.
func build(t *testing.T, nodes []string, edges ...string) *Graph {
	t.Helper()
	g := New()
	for _, n := range nodes {
		g.AddNode(id(n))
	}
	for _, e := range edges {
		var from, to string
		_, err := fmt.Sscanf(e, "%s -> %s", &from, &to)
		require.NoError(t, err, "edge %q", e)
		require.NoError(t, g.AddDependency(id(from), id(to)))
	}
	return g
}

func names(ids []dcid.ID) []string {
	out := make([]string, len(ids))
	for i, v := range ids {
		out[i] = v.Name
	}
	return out
}

func position(order []dcid.ID) map[string]int {
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v.Name] = i
	}
	return pos
}

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotNil(t, g.nodes)
	assert.Zero(t, g.Len())
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode(id("a"))
	assert.Equal(t, 1, g.Len())
	nodeA, ok := g.nodes[id("a")]
	require.True(t, ok)
	assert.Equal(t, id("a"), nodeA.id)
	assert.NotNil(t, nodeA.deps)
	assert.NotNil(t, nodeA.dependents)

	g.AddNode(id("a"))
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Has(id("a")))
	assert.False(t, g.Has(id("b")))
}

func TestAddDependency(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := build(t, []string{"a", "b"}, "b -> a")

		deps, err := g.Dependencies(id("b"))
		require.NoError(t, err)
		assert.Equal(t, []dcid.ID{id("a")}, deps)

		dependents, err := g.Dependents(id("a"))
		require.NoError(t, err)
		assert.Equal(t, []dcid.ID{id("b")}, dependents)
	})

	t.Run("self reference is allowed", func(t *testing.T) {
		g := build(t, []string{"a"}, "a -> a")
		deps, err := g.Dependencies(id("a"))
		require.NoError(t, err)
		assert.Equal(t, []dcid.ID{id("a")}, deps)
	})

	t.Run("error cases", func(t *testing.T) {
		g := build(t, []string{"a"})

		assert.ErrorContains(t, g.AddDependency(id("dne"), id("a")), "dependent node not found")
		assert.ErrorContains(t, g.AddDependency(id("a"), id("dne")), "dependency node not found")

		_, err := g.Dependencies(id("dne"))
		assert.ErrorContains(t, err, "node not found")
		_, err = g.Dependents(id("dne"))
		assert.ErrorContains(t, err, "node not found")
	})
}

func TestSort(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		res := New().Sort()
		assert.Empty(t, res.Order)
		assert.False(t, res.HasCycles())
	})

	t.Run("independent nodes", func(t *testing.T) {
		res := build(t, []string{"two", "one"}).Sort()
		assert.ElementsMatch(t, []string{"one", "two"}, names(res.Order))
		assert.Empty(t, res.CircularDependencies)
	})

	t.Run("dependencies come first", func(t *testing.T) {
		res := build(t, []string{"one", "two", "three"},
			"three -> one",
			"three -> two",
		).Sort()
		require.Len(t, res.Order, 3)
		assert.Equal(t, "three", res.Order[2].Name)
		assert.Empty(t, res.CircularDependencies)
	})

	t.Run("chain places the last dependent last", func(t *testing.T) {
		res := build(t, []string{"four", "three", "two", "one"},
			"four -> three",
			"three -> one",
			"three -> two",
		).Sort()
		pos := position(res.Order)
		require.Len(t, pos, 4)
		assert.Less(t, pos["three"], pos["four"])
		assert.Less(t, pos["one"], pos["three"])
		assert.Less(t, pos["two"], pos["three"])
	})

	t.Run("deterministic order", func(t *testing.T) {
		g := build(t, []string{"d", "c", "b", "a"}, "a -> d")
		want := []string{"b", "c", "d", "a"}
		for range 5 {
			if diff := cmp.Diff(want, names(g.Sort().Order)); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
		}
	})

	t.Run("sort leaves the graph untouched", func(t *testing.T) {
		g := build(t, []string{"a", "b"}, "b -> a")
		first := g.Sort()
		second := g.Sort()
		assert.Equal(t, first, second)
		deps, _ := g.Dependencies(id("b"))
		assert.Len(t, deps, 1)
	})
}

func TestSort_Cycles(t *testing.T) {
	t.Run("two-cycle is reported in both directions", func(t *testing.T) {
		res := build(t, []string{"one", "two"}, "one -> two", "two -> one").Sort()
		assert.Empty(t, res.Order)
		assert.Equal(t, []CircularDependency{
			{Component: id("one"), Dependency: id("two"), OnCycle: true},
			{Component: id("two"), Dependency: id("one"), OnCycle: true},
		}, res.CircularDependencies)
	})

	t.Run("self-reference", func(t *testing.T) {
		res := build(t, []string{"m", "free"}, "m -> m").Sort()
		assert.Equal(t, []string{"free"}, names(res.Order))
		assert.Equal(t, []CircularDependency{
			{Component: id("m"), Dependency: id("m"), OnCycle: true},
		}, res.CircularDependencies)
	})

	t.Run("three-cycle", func(t *testing.T) {
		res := build(t, []string{"a", "b", "c"}, "a -> b", "b -> c", "c -> a").Sort()
		assert.Empty(t, res.Order)
		assert.Len(t, res.CircularDependencies, 3)
		for _, cd := range res.CircularDependencies {
			assert.True(t, cd.OnCycle, "%v", cd)
		}
	})

	t.Run("acyclic part is still ordered", func(t *testing.T) {
		res := build(t, []string{"lib", "x", "y", "app"},
			"x -> lib",
			"y -> lib",
			"x -> y",
			"y -> x",
			"app -> lib",
		).Sort()
		assert.Equal(t, []string{"lib", "app"}, names(res.Order))
		assert.Equal(t, []string{"x", "y"}, names(res.Excluded()))
	})

	t.Run("dependents of a cycle are blocked", func(t *testing.T) {
		res := build(t, []string{"a", "b", "top"},
			"a -> b",
			"b -> a",
			"top -> a",
		).Sort()
		assert.Empty(t, res.Order)
		assert.Contains(t, res.CircularDependencies,
			CircularDependency{Component: id("top"), Dependency: id("a"), OnCycle: false})
		assert.Equal(t, []string{"a", "b", "top"}, names(res.Excluded()))
	})

	t.Run("blocked edges are dropped when a node is on a cycle", func(t *testing.T) {
		res := build(t, []string{"a", "b", "c", "d"},
			"a -> b",
			"b -> a",
			"a -> c",
			"c -> d",
			"d -> d",
		).Sort()
		assert.Empty(t, res.Order)
		assert.Equal(t, []CircularDependency{
			{Component: id("a"), Dependency: id("b"), OnCycle: true},
			{Component: id("b"), Dependency: id("a"), OnCycle: true},
			{Component: id("c"), Dependency: id("d"), OnCycle: false},
			{Component: id("d"), Dependency: id("d"), OnCycle: true},
		}, res.CircularDependencies)
	})

	t.Run("edge between two cycles is not on a cycle", func(t *testing.T) {
		res := build(t, []string{"a", "b", "c", "d"},
			"a -> b",
			"b -> a",
			"b -> c",
			"c -> d",
			"d -> c",
		).Sort()
		assert.Empty(t, res.Order)
		assert.Equal(t, []CircularDependency{
			{Component: id("a"), Dependency: id("b"), OnCycle: true},
			{Component: id("b"), Dependency: id("a"), OnCycle: true},
			{Component: id("c"), Dependency: id("d"), OnCycle: true},
			{Component: id("d"), Dependency: id("c"), OnCycle: true},
		}, res.CircularDependencies)
	})
}

// TestSort_Completeness checks that every node lands in exactly one of the
// two outputs and that the order respects all edges among ordered nodes.
func TestSort_Completeness(t *testing.T) {
	const size = 60
	g := New()
	for i := range size {
		g.AddNode(id(fmt.Sprintf("n%02d", i)))
	}
	for i := range size {
		for _, j := range []int{i * 7 % size, i * 13 % size} {
			if j < i {
				require.NoError(t, g.AddDependency(id(fmt.Sprintf("n%02d", i)), id(fmt.Sprintf("n%02d", j))))
			}
		}
	}
	// Close the cycle n11 -> n59 -> n53 -> n11 and add a self-reference.
	require.NoError(t, g.AddDependency(id("n11"), id("n59")))
	require.NoError(t, g.AddDependency(id("n30"), id("n30")))

	res := g.Sort()

	ordered := make(map[dcid.ID]bool)
	for _, v := range res.Order {
		require.False(t, ordered[v], "%s emitted twice", v)
		ordered[v] = true
	}
	excluded := make(map[dcid.ID]bool)
	for _, v := range res.Excluded() {
		excluded[v] = true
		assert.False(t, ordered[v], "%s both ordered and excluded", v)
	}
	assert.Equal(t, size, len(ordered)+len(excluded))
	assert.True(t, excluded[id("n30")])
	assert.True(t, excluded[id("n11")])
	assert.True(t, excluded[id("n53")])
	assert.True(t, excluded[id("n59")])

	pos := make(map[dcid.ID]int)
	for i, v := range res.Order {
		pos[v] = i
	}
	for _, v := range res.Order {
		deps, err := g.Dependencies(v)
		require.NoError(t, err)
		for _, d := range deps {
			require.True(t, ordered[d], "ordered %s depends on unordered %s", v, d)
			assert.Less(t, pos[d], pos[v], "%s must precede %s", d, v)
		}
	}
}

func TestSort_DeepChain(t *testing.T) {
	const depth = 20000
	name := func(i int) dcid.ID { return dcid.New("v", fmt.Sprintf("%06d", i)) }

	g := New()
	for i := range depth {
		g.AddNode(name(i))
	}
	// Every node depends on its successor, so the order is fully reversed.
	for i := 1; i < depth; i++ {
		require.NoError(t, g.AddDependency(name(i-1), name(i)))
	}

	res := g.Sort()
	require.Len(t, res.Order, depth)
	assert.Equal(t, name(depth-1), res.Order[0])
	assert.Equal(t, name(0), res.Order[depth-1])
	assert.False(t, res.HasCycles())
}

func TestSort_LargeRing(t *testing.T) {
	const size = 1000
	name := func(i int) dcid.ID { return dcid.New("v", fmt.Sprintf("%04d", i)) }

	g := New()
	for i := range size {
		g.AddNode(name(i))
	}
	for i := range size {
		require.NoError(t, g.AddDependency(name(i), name((i+1)%size)))
	}

	res := g.Sort()
	assert.Empty(t, res.Order)
	require.Len(t, res.CircularDependencies, size)
	for _, cd := range res.CircularDependencies {
		assert.True(t, cd.OnCycle)
	}
}

// TestSort_BlockedFanIn covers a single cyclic base that everything else
// uses. None of the users is on a cycle, so every one of their edges is
// reported as blocked.
func TestSort_BlockedFanIn(t *testing.T) {
	const (
		size   = 3000
		fanOut = 20
	)
	name := func(i int) dcid.ID { return dcid.New("v", fmt.Sprintf("%05d", i)) }

	g := New()
	for i := range size {
		g.AddNode(name(i))
	}
	require.NoError(t, g.AddDependency(name(0), name(0)))
	for i := 1; i < size; i++ {
		require.NoError(t, g.AddDependency(name(i), name(0)))
		for k := range fanOut {
			require.NoError(t, g.AddDependency(name(i), name((i*7+k*13)%i)))
		}
	}

	start := time.Now()
	res := g.Sort()
	elapsed := time.Since(start)

	assert.Empty(t, res.Order)
	require.Len(t, res.Excluded(), size)
	require.NotEmpty(t, res.CircularDependencies)
	assert.Equal(t, CircularDependency{Component: name(0), Dependency: name(0), OnCycle: true}, res.CircularDependencies[0])
	for _, cd := range res.CircularDependencies[1:] {
		assert.NotEqual(t, name(0), cd.Component)
		assert.False(t, cd.OnCycle, "%v", cd)
	}
	assert.Less(t, elapsed, 2*time.Second, "cycle extraction took %s", elapsed)
}
