package optim

import (
	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/internal/tensor"
)

// ParameterState is the per-parameter AdEMAMix state.
//
// Step counts the updates applied to the parameter. The three moment tensors
// have the parameter's shape and start at zero.
type ParameterState[T tensor.Float, B tensor.Backend] struct {
	Step         int
	FastEMA      *tensor.Tensor[T, B] // m1, decay beta1
	SlowEMA      *tensor.Tensor[T, B] // m2, decay beta3
	SecondMoment *tensor.Tensor[T, B] // nu, decay beta2
}

func newParameterState[T tensor.Float, B tensor.Backend](shape tensor.Shape, backend B) *ParameterState[T, B] {
	return &ParameterState[T, B]{
		FastEMA:      tensor.Zeros[T](shape, backend),
		SlowEMA:      tensor.Zeros[T](shape, backend),
		SecondMoment: tensor.Zeros[T](shape, backend),
	}
}

// Shape returns the shape shared by the moment tensors.
func (s *ParameterState[T, B]) Shape() tensor.Shape {
	return s.FastEMA.Shape()
}

// Clone returns a deep copy of the state.
func (s *ParameterState[T, B]) Clone() *ParameterState[T, B] {
	return &ParameterState[T, B]{
		Step:         s.Step,
		FastEMA:      s.FastEMA.Clone(),
		SlowEMA:      s.SlowEMA.Clone(),
		SecondMoment: s.SecondMoment.Clone(),
	}
}

// StateMap owns the state of every parameter an optimizer has updated,
// keyed by parameter identity.
type StateMap[T tensor.Float, B tensor.Backend] struct {
	states  map[nn.ParamID]*ParameterState[T, B]
	backend B
}

// NewStateMap creates an empty state map allocating on backend.
func NewStateMap[T tensor.Float, B tensor.Backend](backend B) *StateMap[T, B] {
	return &StateMap[T, B]{
		states:  make(map[nn.ParamID]*ParameterState[T, B]),
		backend: backend,
	}
}

// Get returns the state stored for id.
func (m *StateMap[T, B]) Get(id nn.ParamID) (*ParameterState[T, B], bool) {
	s, ok := m.states[id]
	return s, ok
}

// GetOrCreate returns the state of p, creating zeroed state on first use.
func (m *StateMap[T, B]) GetOrCreate(p *nn.Parameter[T, B]) *ParameterState[T, B] {
	s, ok := m.states[p.ID()]
	if !ok {
		s = newParameterState[T](p.Tensor().Shape(), m.backend)
		m.states[p.ID()] = s
	}
	return s
}

// Len returns the number of tracked parameters.
func (m *StateMap[T, B]) Len() int {
	return len(m.states)
}

func (m *StateMap[T, B]) replace(states map[nn.ParamID]*ParameterState[T, B]) {
	m.states = states
}
