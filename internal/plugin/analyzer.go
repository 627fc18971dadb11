package plugin

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"plugin-analyzer/internal/logging"
	"plugin-analyzer/internal/semantic"
)

const (
	// DefaultDependency is the unit declaring the component interface.
	DefaultDependency = "bevy_ecs"
	// DefaultInterface is the name of the component interface.
	DefaultInterface = "Component"
)

// Analyzer finds the components of a compilation unit.
type Analyzer struct {
	provider   semantic.Provider
	dependency string
	iface      string
	logger     *log.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDependency sets the name of the unit declaring the component interface.
func WithDependency(name string) Option {
	return func(a *Analyzer) {
		a.dependency = name
	}
}

// WithInterface sets the name of the component interface.
func WithInterface(name string) Option {
	return func(a *Analyzer) {
		a.iface = name
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// NewAnalyzer creates an Analyzer loading models from p.
func NewAnalyzer(p semantic.Provider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider:   p,
		dependency: DefaultDependency,
		iface:      DefaultInterface,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logging.Discard()
	}

	return a
}

// Analyze loads the workspace at root and reports the components of unitName.
func (a *Analyzer) Analyze(ctx context.Context, unitName, root string) (*PluginCrate, error) {
	a.logger.Debug("loading workspace", "root", root)

	m, err := a.provider.Load(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("%w from %s: %w", ErrModelLoad, root, err)
	}

	return a.AnalyzeModel(m, unitName)
}

// AnalyzeModel reports the components of unitName in an already loaded model.
func (a *Analyzer) AnalyzeModel(m semantic.Model, unitName string) (*PluginCrate, error) {
	dep, ok := FindUnit(m, a.dependency)
	if !ok {
		return nil, fmt.Errorf("%w: %q%s", ErrDependencyUnitNotFound, a.dependency,
			didYouMean(a.dependency, unitNames(m)))
	}

	iface, ok := FindInterface(m, dep, a.iface)
	if !ok {
		return nil, fmt.Errorf("%w: %s%s%s%s", ErrInterfaceNotFound, a.dependency, PathSeparator, a.iface,
			didYouMean(a.iface, interfaceNames(m, dep)))
	}

	target, ok := FindUnit(m, unitName)
	if !ok {
		return nil, fmt.Errorf("%w: %q%s", ErrTargetUnitNotFound, unitName,
			didYouMean(unitName, unitNames(m)))
	}

	a.logger.Debug("resolved entities", "interface", a.dependency+PathSeparator+a.iface, "unit", unitName)

	components, err := extract(m, target, iface, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to extract components of %s: %w", unitName, err)
	}

	a.logger.Info("analyzed unit", "unit", unitName, "components", len(components))

	return &PluginCrate{
		Name:       unitName,
		Components: components,
	}, nil
}
