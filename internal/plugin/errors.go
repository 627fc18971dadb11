package plugin

import "errors"

var (
	// ErrModelLoad is returned when the provider cannot build a model.
	ErrModelLoad = errors.New("failed to load workspace model")
	// ErrDependencyUnitNotFound is returned when the unit declaring the
	// component interface is not part of the workspace graph.
	ErrDependencyUnitNotFound = errors.New("dependency unit not found")
	// ErrInterfaceNotFound is returned when the dependency unit does not
	// declare the component interface.
	ErrInterfaceNotFound = errors.New("interface not found")
	// ErrTargetUnitNotFound is returned when no unit matches the requested name.
	ErrTargetUnitNotFound = errors.New("target unit not found")
	// ErrProviderInvariant is returned when the model breaks its contract,
	// e.g. a struct or its unit has no name.
	ErrProviderInvariant = errors.New("provider invariant violation")
)
