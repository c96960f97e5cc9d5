package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ademamix/internal/backend/cpu"
	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/internal/optim"
	"github.com/born-ml/ademamix/internal/tensor"
)

type cpuParam = nn.Parameter[float64, *cpu.CPUBackend]

func trainedOptimizer(t *testing.T, steps int) (*optim.AdEMAMix[float64, *cpu.CPUBackend], *cpuParam, *cpuParam) {
	t.Helper()
	backend := cpu.New()
	a := newParam(t, "a", []float64{1, 2}, backend)
	b := newParam(t, "b", []float64{3}, backend)
	o, err := optim.NewAdEMAMix([]*cpuParam{a, b}, optim.DefaultConfig(), backend)
	require.NoError(t, err)

	for range steps {
		setGrad(t, a, []float64{0.1, -0.3})
		require.NoError(t, o.Step())
	}
	return o, a, b
}

func TestStateDict_Keys(t *testing.T) {
	o, _, _ := trainedOptimizer(t, 2)

	dict := o.StateDict()
	require.Len(t, dict, 4, "b has no state yet")
	for _, key := range []string{"0.0.m1", "0.0.m2", "0.0.nu", "0.0.step"} {
		assert.Contains(t, dict, key)
	}

	step := dict["0.0.step"]
	assert.Equal(t, tensor.Int64, step.DType())
	assert.Equal(t, []int64{2}, step.AsInt64())
	assert.Equal(t, tensor.Shape{2}, dict["0.0.m1"].Shape())
}

func TestStateDict_IsCopy(t *testing.T) {
	o, a, _ := trainedOptimizer(t, 1)

	dict := o.StateDict()
	dict["0.0.m1"].AsFloat64()[0] = 100

	st, ok := o.State(a)
	require.True(t, ok)
	assert.NotEqual(t, 100.0, st.FastEMA.At(0))
}

func TestStateDict_RoundTrip(t *testing.T) {
	src, srcA, _ := trainedOptimizer(t, 3)
	dst, dstA, _ := trainedOptimizer(t, 0)

	require.NoError(t, dst.LoadStateDict(src.StateDict()))

	want, ok := src.State(srcA)
	require.True(t, ok)
	got, ok := dst.State(dstA)
	require.True(t, ok)

	assert.Equal(t, want.Step, got.Step)
	assert.Equal(t, want.FastEMA.Data(), got.FastEMA.Data())
	assert.Equal(t, want.SlowEMA.Data(), got.SlowEMA.Data())
	assert.Equal(t, want.SecondMoment.Data(), got.SecondMoment.Data())

	// Both optimizers now produce the same update for the same parameter value.
	require.NoError(t, dstA.Tensor().CopyFrom(srcA.Tensor()))
	for _, p := range []*cpuParam{srcA, dstA} {
		setGrad(t, p, []float64{0.2, 0.2})
	}
	require.NoError(t, src.Step())
	require.NoError(t, dst.Step())
	assert.Equal(t, srcA.Tensor().Data(), dstA.Tensor().Data())
}

func TestLoadStateDict_Errors(t *testing.T) {
	valid := func(t *testing.T) map[string]*tensor.RawTensor {
		src, _, _ := trainedOptimizer(t, 2)
		return src.StateDict()
	}

	tests := []struct {
		name   string
		mutate func(t *testing.T, dict map[string]*tensor.RawTensor)
		target error
	}{
		{
			name:   "missing entry",
			mutate: func(_ *testing.T, dict map[string]*tensor.RawTensor) { delete(dict, "0.0.nu") },
			target: optim.ErrMissingState,
		},
		{
			name: "wrong shape",
			mutate: func(t *testing.T, dict map[string]*tensor.RawTensor) {
				r, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
				require.NoError(t, err)
				dict["0.0.m2"] = r
			},
			target: optim.ErrShapeMismatch,
		},
		{
			name: "wrong dtype",
			mutate: func(t *testing.T, dict map[string]*tensor.RawTensor) {
				r, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
				require.NoError(t, err)
				dict["0.0.m1"] = r
			},
			target: optim.ErrDTypeMismatch,
		},
		{
			name: "step not int64",
			mutate: func(t *testing.T, dict map[string]*tensor.RawTensor) {
				r, err := tensor.NewRaw(tensor.Shape{}, tensor.Float64, tensor.CPU)
				require.NoError(t, err)
				dict["0.0.step"] = r
			},
			target: optim.ErrMissingState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, a, _ := trainedOptimizer(t, 1)
			before, ok := dst.State(a)
			require.True(t, ok)

			dict := valid(t)
			tt.mutate(t, dict)

			err := dst.LoadStateDict(dict)
			require.ErrorIs(t, err, tt.target)

			after, ok := dst.State(a)
			require.True(t, ok)
			assert.Equal(t, before.Step, after.Step, "state kept on error")
			assert.Equal(t, before.FastEMA.Data(), after.FastEMA.Data())
		})
	}

	t.Run("negative step", func(t *testing.T) {
		dst, _, _ := trainedOptimizer(t, 0)
		dict := valid(t)
		dict["0.0.step"].AsInt64()[0] = -1
		assert.Error(t, dst.LoadStateDict(dict))
	})

	t.Run("unknown key", func(t *testing.T) {
		dst, _, _ := trainedOptimizer(t, 0)
		dict := valid(t)
		dict["7.0.m1"] = dict["0.0.m1"]
		err := dst.LoadStateDict(dict)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "7.0.m1")
	})
}

func TestLoadStateDict_EmptyClearsState(t *testing.T) {
	o, a, _ := trainedOptimizer(t, 2)

	require.NoError(t, o.LoadStateDict(map[string]*tensor.RawTensor{}))

	_, ok := o.State(a)
	assert.False(t, ok)
	assert.Zero(t, o.NumStates())
}
