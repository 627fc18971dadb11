package plugin

import "plugin-analyzer/internal/semantic"

// scanOnly hides the arena's UnitIndex so lookups take the linear path.
type scanOnly struct {
	semantic.Model
}

type sampleWorkspace struct {
	arena     *semantic.Arena
	ecs       semantic.UnitID
	plugin    semantic.UnitID
	component semantic.DeclID
	pluginMod semantic.ModuleID
}

// newSampleWorkspace builds a unit "ecs" declaring trait Component and an
// empty unit "sample_plugin" with a root module.
func newSampleWorkspace() *sampleWorkspace {
	a := semantic.NewArena()

	ecs := a.AddUnit("ecs")
	ecsRoot := a.AddModule(ecs, semantic.NoModule, "")
	a.AddDecl(ecsRoot, semantic.DeclFunc, "spawn")
	component := a.AddDecl(ecsRoot, semantic.DeclInterface, "Component")

	plugin := a.AddUnit("sample_plugin")
	pluginRoot := a.AddModule(plugin, semantic.NoModule, "")

	return &sampleWorkspace{
		arena:     a,
		ecs:       ecs,
		plugin:    plugin,
		component: component,
		pluginMod: pluginRoot,
	}
}

// addComponent declares a struct in mod and an impl of Component for it.
func (w *sampleWorkspace) addComponent(mod semantic.ModuleID, name string, fields ...string) semantic.DeclID {
	d := w.arena.AddStruct(mod, name, fields...)
	w.arena.AddImpl(mod, w.component, w.arena.RefTo(d))

	return d
}
