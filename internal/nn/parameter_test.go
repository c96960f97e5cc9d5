package nn_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/internal/tensor"
)

func TestParameter_Identity(t *testing.T) {
	backend := tensor.NewMockBackend()

	w, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	a := nn.NewParameter("w", w)
	b := nn.NewParameter("w", w)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID(), "same name and tensor must still get distinct IDs")
	assert.Equal(t, "w", a.Name())
	assert.Same(t, w, a.Tensor())
}

func TestParameter_WithID(t *testing.T) {
	backend := tensor.NewMockBackend()
	id := uuid.MustParse("6f1c7b0e-3b7a-4f2e-9a51-1d2c3e4f5a6b")

	p := nn.NewParameterWithID(id, "bias", tensor.Zeros[float64](tensor.Shape{3}, backend))

	assert.Equal(t, id, p.ID())
}

func TestParameter_Grad(t *testing.T) {
	backend := tensor.NewMockBackend()
	p := nn.NewParameter("x", tensor.Zeros[float64](tensor.Shape{1}, backend))

	assert.Nil(t, p.Grad(), "fresh parameter has no gradient")

	g := tensor.Full[float64](tensor.Shape{1}, 0.5, backend)
	p.SetGrad(g)
	assert.Same(t, g, p.Grad())

	p.ZeroGrad()
	assert.Nil(t, p.Grad())
}
