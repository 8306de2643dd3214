package experiment

import (
	"fmt"
	"sort"

	"github.com/skoret/odelab/internal/config"
	"github.com/skoret/odelab/internal/models"
	"github.com/skoret/odelab/internal/ode"
)

// Field couples a vector field with its dimensional contract and
// default initial state; every model in the registry satisfies it.
type Field interface {
	Eval(dxdt, x []float64, params ...float64)
	DefaultState(dim int) []float64
	ValidateDim(dim int) error
	GetParams() map[string]float64
}

type Registry struct {
	fields map[string]func(cfg *config.Config) Field
}

func NewRegistry() *Registry {
	r := &Registry{fields: make(map[string]func(cfg *config.Config) Field)}

	r.fields["lorenz96"] = func(cfg *config.Config) Field {
		return models.NewLorenz96(cfg.Params.F)
	}
	r.fields["meanrev"] = func(cfg *config.Config) Field {
		return models.NewMeanReversion(cfg.Params.Rate, cfg.Params.Mean)
	}

	return r
}

func (r *Registry) Get(name string, cfg *config.Config) (Field, error) {
	fn, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (available: %v)", name, r.List())
	}
	return fn(cfg), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scheme resolves a scheme name, turning the parser's Unknown sentinel
// into an explicit error at the CLI boundary.
func (r *Registry) Scheme(name string) (ode.Scheme, error) {
	s := ode.ParseScheme(name)
	if s == ode.Unknown {
		return s, fmt.Errorf("unknown scheme: %s (supported: euler, heun, rk4)", name)
	}
	return s, nil
}
