package optim

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/internal/tensor"
)

// State dict entry suffixes.
const (
	keyFastEMA      = "m1"
	keySlowEMA      = "m2"
	keySecondMoment = "nu"
	keyStep         = "step"
)

var stateSuffixes = [...]string{keyFastEMA, keySlowEMA, keySecondMoment, keyStep}

func stateKey(group, index int, suffix string) string {
	return fmt.Sprintf("%d.%d.%s", group, index, suffix)
}

// StateDict returns a copy of the optimizer state.
//
// Keys have the form "{group}.{index}.{m1|m2|nu|step}", where index is the
// parameter's position within its group. The step counter is an int64 scalar
// tensor. Parameters without state have no entries. The format of any file
// holding the result is up to the caller.
func (o *AdEMAMix[T, B]) StateDict() map[string]*tensor.RawTensor {
	dict := make(map[string]*tensor.RawTensor)
	for gi, g := range o.groups {
		for pi, p := range g.params {
			s, ok := o.states.Get(p.ID())
			if !ok {
				continue
			}
			dict[stateKey(gi, pi, keyFastEMA)] = s.FastEMA.Raw().Clone()
			dict[stateKey(gi, pi, keySlowEMA)] = s.SlowEMA.Raw().Clone()
			dict[stateKey(gi, pi, keySecondMoment)] = s.SecondMoment.Raw().Clone()

			step, err := tensor.NewRaw(tensor.Shape{}, tensor.Int64, o.backend.Device())
			if err != nil {
				panic(err) // a scalar shape is always valid
			}
			step.AsInt64()[0] = int64(s.Step)
			dict[stateKey(gi, pi, keyStep)] = step
		}
	}
	return dict
}

// LoadStateDict replaces the optimizer state with the contents of dict.
//
// A parameter's entries must be all present or all absent. Tensors must match
// the parameter's shape and dtype. On error the current state is kept.
func (o *AdEMAMix[T, B]) LoadStateDict(dict map[string]*tensor.RawTensor) error {
	states := make(map[nn.ParamID]*ParameterState[T, B])
	used := make(map[string]bool, len(dict))

	for gi, g := range o.groups {
		for pi, p := range g.params {
			s, err := o.loadEntry(dict, gi, pi, p)
			if err != nil {
				return err
			}
			if s != nil {
				for _, suffix := range stateSuffixes {
					used[stateKey(gi, pi, suffix)] = true
				}
				states[p.ID()] = s
			}
		}
	}

	for key := range dict {
		if !used[key] {
			return errors.Errorf("ademamix: state dict entry %q matches no parameter", key)
		}
	}

	o.states.replace(states)
	return nil
}

func (o *AdEMAMix[T, B]) loadEntry(dict map[string]*tensor.RawTensor, gi, pi int, p *nn.Parameter[T, B]) (*ParameterState[T, B], error) {
	var raws [len(stateSuffixes)]*tensor.RawTensor
	found := 0
	for i, suffix := range stateSuffixes {
		if r, ok := dict[stateKey(gi, pi, suffix)]; ok {
			raws[i] = r
			found++
		}
	}
	switch found {
	case 0:
		return nil, nil
	case len(stateSuffixes):
	default:
		return nil, errors.Wrapf(ErrMissingState, "parameter %q (%s): %d of %d entries", p.Name(), stateKey(gi, pi, "*"), found, len(stateSuffixes))
	}

	want := p.Tensor().Shape()
	dtype := tensor.DataTypeOf[T]()
	moments := make([]*tensor.Tensor[T, B], 3)
	for i := range moments {
		r := raws[i]
		if r == nil {
			return nil, errors.Wrapf(ErrMissingState, "parameter %q: nil %s", p.Name(), stateSuffixes[i])
		}
		if r.DType() != dtype {
			return nil, dtypeMismatch(p.Name(), r.DType(), dtype)
		}
		if !r.Shape().Equal(want) {
			return nil, shapeMismatch(p.Name(), stateSuffixes[i], r.Shape(), want)
		}
		moments[i] = tensor.New[T](r.Clone(), o.backend)
	}

	step := raws[3]
	if step == nil || step.DType() != tensor.Int64 || step.NumElements() != 1 {
		return nil, errors.Wrapf(ErrMissingState, "parameter %q: step must be an int64 scalar", p.Name())
	}
	n := step.AsInt64()[0]
	if n < 0 {
		return nil, errors.Errorf("ademamix: parameter %q: negative step %d", p.Name(), n)
	}

	return &ParameterState[T, B]{
		Step:         int(n),
		FastEMA:      moments[0],
		SlowEMA:      moments[1],
		SecondMoment: moments[2],
	}, nil
}
