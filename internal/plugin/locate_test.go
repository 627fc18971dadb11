package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plugin-analyzer/internal/semantic"
)

func TestFindUnit(t *testing.T) {
	w := newSampleWorkspace()

	for _, m := range []semantic.Model{w.arena, scanOnly{w.arena}} {
		got, ok := FindUnit(m, "sample_plugin")
		require.True(t, ok)
		assert.Equal(t, w.plugin, got)

		_, ok = FindUnit(m, "Sample_Plugin")
		assert.False(t, ok, "matching is exact")

		_, ok = FindUnit(m, "missing")
		assert.False(t, ok)
	}
}

func TestFindUnit_SkipsUnnamedAndTakesFirst(t *testing.T) {
	a := semantic.NewArena()
	a.AddUnit("")
	first := a.AddUnit("dup")
	a.AddUnit("dup")

	for _, m := range []semantic.Model{a, scanOnly{a}} {
		got, ok := FindUnit(m, "dup")
		require.True(t, ok)
		assert.Equal(t, first, got)

		_, ok = FindUnit(m, "")
		assert.False(t, ok)
	}
}

func TestFindInterface(t *testing.T) {
	w := newSampleWorkspace()

	got, ok := FindInterface(w.arena, w.ecs, "Component")
	require.True(t, ok)
	assert.Equal(t, w.component, got)

	_, ok = FindInterface(w.arena, w.ecs, "spawn")
	assert.False(t, ok, "non-interface declarations are skipped")

	_, ok = FindInterface(w.arena, w.plugin, "Component")
	assert.False(t, ok, "search is scoped to the given unit")
}

func TestFindInterface_SearchesAllModulesInOrder(t *testing.T) {
	a := semantic.NewArena()
	u := a.AddUnit("bevy_ecs")
	root := a.AddModule(u, semantic.NoModule, "")
	component := a.AddModule(u, root, "component")
	a.AddStruct(root, "Component")
	first := a.AddDecl(component, semantic.DeclInterface, "Component")
	world := a.AddModule(u, root, "world")
	a.AddDecl(world, semantic.DeclInterface, "Component")

	got, ok := FindInterface(a, u, "Component")
	require.True(t, ok)
	assert.Equal(t, first, got)
}
