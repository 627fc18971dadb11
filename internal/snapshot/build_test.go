package snapshot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plugin-analyzer/internal/semantic"
)

func mustBuild(t *testing.T, doc string) (*semantic.Arena, []string) {
	t.Helper()

	f, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)

	arena, diags := Build(f)
	require.NoError(t, diags.Error())

	var codes []string
	for _, w := range diags.Warnings {
		codes = append(codes, w.Code)
	}

	return arena, codes
}

func TestBuild_ModuleTree(t *testing.T) {
	arena, _ := mustBuild(t, `
units:
  - name: game
    modules:
      - path: "world::physics"
      - path: "world"
      - path: "ui"
`)

	u, ok := arena.LookupUnit("game")
	require.True(t, ok)

	var names []string
	for _, m := range arena.UnitModules(u) {
		name, _ := arena.ModuleName(m)
		names = append(names, name)
	}

	assert.Equal(t, []string{"", "world", "physics", "ui"}, names)

	modules := arena.UnitModules(u)
	parent, ok := arena.ModuleParent(modules[2])
	require.True(t, ok)
	assert.Equal(t, modules[1], parent)
}

func TestBuild_ForwardReferences(t *testing.T) {
	arena, warnings := mustBuild(t, `
units:
  - name: game
    modules:
      - path: ""
        impls:
          - {trait: "ecs::Component", self: "game::Player"}
  - name: ecs
    modules:
      - path: ""
        declarations:
          - {kind: interface, name: Component}
`)
	assert.Equal(t, []string{CodeUnresolvedSelf}, warnings)

	u, _ := arena.LookupUnit("game")
	root, _ := arena.RootModule(u)
	impls := arena.Impls(root)
	require.Len(t, impls, 1)

	_, ok := arena.ImplTrait(impls[0])
	assert.True(t, ok, "trait declared later in the file resolves")
	assert.Equal(t, semantic.TypeUnknown, arena.ImplSelf(impls[0]).Kind)
}

func TestBuild_Warnings(t *testing.T) {
	arena, warnings := mustBuild(t, `
units:
  - name: ""
  - name: game
    modules:
      - path: ""
        declarations:
          - {kind: struct, name: Player, fields: [name]}
          - {kind: struct, name: NotATrait}
        impls:
          - {trait: "ecs::Component", self: "game::Player"}
          - {trait: "game::NotATrait", self: "game::Player"}
          - {trait: "", self: "game::Ghost"}
          - {self: "game::Player", self_kind: enum}
`)

	assert.Equal(t, []string{
		CodeUnnamedUnit,
		CodeUnresolvedTrait,
		CodeNotAnInterface,
		CodeUnresolvedSelf,
		CodeKindMismatch,
	}, warnings)

	u, _ := arena.LookupUnit("game")
	root, _ := arena.RootModule(u)
	impls := arena.Impls(root)
	require.Len(t, impls, 4)

	for _, i := range impls {
		_, ok := arena.ImplTrait(i)
		assert.False(t, ok, "unresolved traits become inherent impls")
	}

	assert.Equal(t, semantic.TypeStruct, arena.ImplSelf(impls[3]).Kind, "declaration wins over self_kind")
}

func TestBuild_InvalidModulePath(t *testing.T) {
	for _, path := range []string{"a::", "::a", "a::::b", "::"} {
		t.Run(path, func(t *testing.T) {
			f := &File{Version: CurrentVersion, Units: []Unit{{
				Name: "game",
				Modules: []Module{
					{Path: "a::b"},
					{Path: path, Declarations: []Declaration{{Kind: "struct", Name: "Player"}}},
				},
			}}}

			arena, diags := Build(f)
			require.Error(t, diags.Error())
			require.Len(t, diags.Errors, 1)
			assert.Equal(t, CodeInvalidPath, diags.Errors[0].Code)

			u, ok := arena.LookupUnit("game")
			require.True(t, ok)

			// Root, a and a::b only; the rejected module and its declarations are dropped.
			mods := arena.UnitModules(u)
			require.Len(t, mods, 3)

			for _, mod := range mods[1:] {
				name, ok := arena.ModuleName(mod)
				assert.True(t, ok)
				assert.NotEmpty(t, name)
				assert.Empty(t, arena.Declarations(mod))
			}
		})
	}
}

func TestBuild_UnsupportedVersion(t *testing.T) {
	_, diags := Build(&File{Version: "2"})
	require.Error(t, diags.Error())
	assert.Equal(t, CodeUnsupportedVersion, diags.Errors[0].Code)
}

func TestExport_RoundTrip(t *testing.T) {
	f, err := LoadFile("testdata/sample_plugin.yaml")
	require.NoError(t, err)

	arena, diags := Build(f)
	require.NoError(t, diags.Error())

	exported := Export(arena)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, exported, FormatTOML))

	decoded, err := Decode(buf.Bytes(), FormatTOML)
	require.NoError(t, err)

	rebuilt, diags := Build(decoded)
	require.NoError(t, diags.Error())

	assert.Equal(t, Export(rebuilt), exported)

	plugin := exported.Units[1]
	require.Len(t, plugin.Modules, 3, "root, physics and physics::forces")
	assert.Equal(t, "physics", plugin.Modules[1].Path)
	assert.Equal(t, "physics::forces", plugin.Modules[2].Path)
	assert.Equal(t, Impl{Trait: "ecs::Component", Self: "u32", SelfKind: "primitive"}, plugin.Modules[0].Impls[2])
}
