package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/internal/tensor"
)

// ParamGroup is a set of parameters sharing one configuration.
//
// A nil Config inherits the optimizer's configuration.
type ParamGroup[T tensor.Float, B tensor.Backend] struct {
	Params []*nn.Parameter[T, B]
	Config *Config
}

// group is the resolved, validated form of a ParamGroup.
type group[T tensor.Float, B tensor.Backend] struct {
	params []*nn.Parameter[T, B]
	config Config
}

func resolveGroups[T tensor.Float, B tensor.Backend](groups []ParamGroup[T, B], defaults Config) ([]group[T, B], error) {
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, errors.WithStack(ErrNoParams)
	}

	seen := make(map[nn.ParamID]int)
	resolved := make([]group[T, B], 0, len(groups))
	for gi, g := range groups {
		if len(g.Params) == 0 {
			return nil, errors.Wrapf(ErrNoParams, "group %d", gi)
		}

		cfg := defaults
		if g.Config != nil {
			cfg = *g.Config
			if err := cfg.Validate(); err != nil {
				return nil, errors.WithMessagef(err, "group %d", gi)
			}
		}

		params := make([]*nn.Parameter[T, B], len(g.Params))
		for pi, p := range g.Params {
			if p == nil || p.Tensor() == nil {
				return nil, errors.Wrapf(ErrNoParams, "group %d: parameter %d is nil", gi, pi)
			}
			if prev, dup := seen[p.ID()]; dup {
				return nil, errors.Wrapf(ErrDuplicateParam, "parameter %q in groups %d and %d", p.Name(), prev, gi)
			}
			seen[p.ID()] = gi
			params[pi] = p
		}

		resolved = append(resolved, group[T, B]{params: params, config: cfg})
	}
	return resolved, nil
}
