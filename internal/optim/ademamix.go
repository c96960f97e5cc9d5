package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ademamix/internal/autodiff"
	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/internal/tensor"
)

// AdEMAMix implements the AdEMAMix optimizer.
//
// Each parameter gets its own step counter, so parameters that miss a
// gradient on some steps are bias-corrected by the number of updates they
// actually received.
//
// AdEMAMix is not safe for concurrent use.
//
// Example:
//
//	optimizer, err := optim.NewAdEMAMix(params, optim.DefaultConfig(), backend)
//	if err != nil {
//	    return err
//	}
//
//	for epoch := range epochs {
//	    grads := backward(loss)
//	    if err := optimizer.StepGrads(grads); err != nil {
//	        return err
//	    }
//	}
type AdEMAMix[T tensor.Float, B tensor.Backend] struct {
	groups  []group[T, B]
	states  *StateMap[T, B]
	backend B
}

var _ Optimizer = (*AdEMAMix[float32, *tensor.MockBackend])(nil)

// NewAdEMAMix creates an optimizer over a single parameter group.
//
// Returns an error wrapping ErrInvalidConfig if cfg is out of range and
// ErrNoParams if params is empty. State tensors live on backend. Recording is
// paused during a step on backend and on the backends of every parameter and
// gradient.
func NewAdEMAMix[T tensor.Float, B tensor.Backend](params []*nn.Parameter[T, B], cfg Config, backend B) (*AdEMAMix[T, B], error) {
	return NewAdEMAMixGroups([]ParamGroup[T, B]{{Params: params}}, cfg, backend)
}

// NewAdEMAMixGroups creates an optimizer over several parameter groups.
// Groups without a Config use defaults. A parameter may belong to one group only.
func NewAdEMAMixGroups[T tensor.Float, B tensor.Backend](groups []ParamGroup[T, B], defaults Config, backend B) (*AdEMAMix[T, B], error) {
	resolved, err := resolveGroups(groups, defaults)
	if err != nil {
		return nil, err
	}
	return &AdEMAMix[T, B]{
		groups:  resolved,
		states:  NewStateMap[T](backend),
		backend: backend,
	}, nil
}

// MustNewAdEMAMix is like NewAdEMAMix but panics on error.
func MustNewAdEMAMix[T tensor.Float, B tensor.Backend](params []*nn.Parameter[T, B], cfg Config, backend B) *AdEMAMix[T, B] {
	o, err := NewAdEMAMix(params, cfg, backend)
	if err != nil {
		panic(err)
	}
	return o
}

// Step updates every parameter with an attached gradient.
//
// Parameters with no gradient are skipped. If any gradient does not match its
// parameter, Step returns an error and changes nothing.
func (o *AdEMAMix[T, B]) Step() error {
	return o.step(attachedGradient[T, B])
}

// StepGrads updates parameters from a gradient map keyed by parameter
// RawTensor, as returned by a tape backward pass. Parameters missing from the
// map are skipped.
func (o *AdEMAMix[T, B]) StepGrads(grads map[*tensor.RawTensor]*tensor.RawTensor) error {
	return o.step(mappedGradient[T](grads, o.backend))
}

// StepClosure calls closure to recompute the loss, then applies Step.
// Gradient tracking is left untouched while the closure runs.
// A nil closure steps and reports a zero loss.
func (o *AdEMAMix[T, B]) StepClosure(closure func() (float64, error)) (float64, error) {
	var loss float64
	if closure != nil {
		var err error
		if loss, err = closure(); err != nil {
			return 0, errors.WithMessage(err, "ademamix: closure")
		}
	}
	if err := o.Step(); err != nil {
		return loss, err
	}
	return loss, nil
}

type pendingUpdate[T tensor.Float, B tensor.Backend] struct {
	param *nn.Parameter[T, B]
	grad  *tensor.Tensor[T, B]
	cfg   Config
}

func (o *AdEMAMix[T, B]) step(source gradientSource[T, B]) error {
	var paused pausedTapes
	defer paused.restore()
	paused.pause(o.backend)

	var pending []pendingUpdate[T, B]
	for _, g := range o.groups {
		for _, p := range g.params {
			paused.pause(p.Tensor().Backend())
			grad, err := source(p)
			if err != nil {
				return err
			}
			if grad == nil {
				continue
			}
			if err := o.check(p, grad); err != nil {
				return err
			}
			paused.pause(grad.Backend())
			pending = append(pending, pendingUpdate[T, B]{param: p, grad: grad, cfg: g.config})
		}
	}

	for _, u := range pending {
		if err := o.update(u.param, u.grad, o.states.GetOrCreate(u.param), u.cfg); err != nil {
			return err
		}
	}
	return nil
}

// pausedTapes stops recording on each distinct tape it is given and
// restores them in reverse order.
type pausedTapes struct {
	seen     map[*autodiff.GradientTape]bool
	restores []func()
}

func (t *pausedTapes) pause(b any) {
	tracker, ok := b.(autodiff.Tracker)
	if !ok || t.seen[tracker.Tape()] {
		return
	}
	if t.seen == nil {
		t.seen = make(map[*autodiff.GradientTape]bool)
	}
	t.seen[tracker.Tape()] = true
	t.restores = append(t.restores, autodiff.NoGrad(b))
}

func (t *pausedTapes) restore() {
	for i := len(t.restores) - 1; i >= 0; i-- {
		t.restores[i]()
	}
}

// check validates a gradient against its parameter and existing state.
func (o *AdEMAMix[T, B]) check(p *nn.Parameter[T, B], grad *tensor.Tensor[T, B]) error {
	want := p.Tensor().Shape()
	if grad.Raw() == nil {
		return errors.Wrapf(ErrNilGradient, "parameter %q", p.Name())
	}
	if dt := grad.DType(); dt != p.Tensor().DType() {
		return dtypeMismatch(p.Name(), dt, p.Tensor().DType())
	}
	if got := grad.Shape(); !got.Equal(want) {
		return shapeMismatch(p.Name(), "gradient", got, want)
	}
	if s, ok := o.states.Get(p.ID()); ok && !s.Shape().Equal(want) {
		return shapeMismatch(p.Name(), "state", s.Shape(), want)
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (o *AdEMAMix[T, B]) ZeroGrad() {
	for _, g := range o.groups {
		for _, p := range g.params {
			p.ZeroGrad()
		}
	}
}

// GetLR returns the learning rate of the first group.
func (o *AdEMAMix[T, B]) GetLR() float64 {
	return o.groups[0].config.LR
}

// SetLR sets the learning rate of every group.
func (o *AdEMAMix[T, B]) SetLR(lr float64) error {
	for i := range o.groups {
		cfg := o.groups[i].config
		cfg.LR = lr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	for i := range o.groups {
		o.groups[i].config.LR = lr
	}
	return nil
}

// Groups returns a copy of each group's configuration.
func (o *AdEMAMix[T, B]) Groups() []Config {
	configs := make([]Config, len(o.groups))
	for i, g := range o.groups {
		configs[i] = g.config
	}
	return configs
}

// State returns a snapshot of p's state. The second result is false until
// p has received its first update.
func (o *AdEMAMix[T, B]) State(p *nn.Parameter[T, B]) (*ParameterState[T, B], bool) {
	s, ok := o.states.Get(p.ID())
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// NumStates returns the number of parameters that have optimizer state.
func (o *AdEMAMix[T, B]) NumStates() int {
	return o.states.Len()
}
