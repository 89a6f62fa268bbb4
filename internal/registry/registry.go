package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/project"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// SynthesizeFunc contributes a component's fragments, tasks and files to p.
type SynthesizeFunc func(ctx context.Context, p *project.Project) error

// RegisteredComponent holds the compiled Go parts of a component.
type RegisteredComponent struct {
	Name       string
	Synthesize SynthesizeFunc
}

// Registry holds all registered components for a single application instance.
type Registry struct {
	components []*RegisteredComponent
	byName     map[string]*RegisteredComponent
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		byName: make(map[string]*RegisteredComponent),
	}
}

// RegisterComponent appends a component. Registering the same name twice is
// a programmer error and panics.
func (r *Registry) RegisterComponent(name string, fn SynthesizeFunc) {
	if name == "" {
		panic("component name must not be empty")
	}
	if fn == nil {
		panic(fmt.Sprintf("component '%s' has no synthesize function", name))
	}
	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("component with name '%s' already registered", name))
	}
	slog.Debug("Registering component.", "name", name)
	c := &RegisteredComponent{Name: name, Synthesize: fn}
	r.components = append(r.components, c)
	r.byName[name] = c
}

// Component returns the component registered under name.
func (r *Registry) Component(name string) (*RegisteredComponent, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Names returns the component names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.components))
	for _, c := range r.components {
		names = append(names, c.Name)
	}
	return names
}

// Synthesize runs every component against p in registration order and stops
// at the first failure.
func (r *Registry) Synthesize(ctx context.Context, p *project.Project) error {
	logger := ctxlog.FromContext(ctx)
	for _, c := range r.components {
		logger.Debug("Running component.", "component", c.Name)
		if err := c.Synthesize(ctxlog.With(ctx, "component", c.Name), p); err != nil {
			return fmt.Errorf("component %s: %w", c.Name, err)
		}
	}
	logger.Debug("All components ran.", "count", len(r.components))
	return nil
}
