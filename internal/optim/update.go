package optim

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/internal/tensor"
)

// update performs the AdEMAMix update for a single parameter.
//
// Every new tensor is computed before anything is written back, so a failure
// part way leaves the state and the parameter as they were.
func (o *AdEMAMix[T, B]) update(
	param *nn.Parameter[T, B],
	grad *tensor.Tensor[T, B],
	state *ParameterState[T, B],
	cfg Config,
) error {
	step := state.Step + 1
	beta1, beta2 := cfg.Beta1(), cfg.Beta2()

	// bias_correction1 = 1 - beta1^t
	// bias_correction2 = 1 - beta2^t
	// The slow EMA is left biased.
	biasCorrection1 := 1 - math.Pow(beta1, float64(step))
	biasCorrection2 := 1 - math.Pow(beta2, float64(step))

	alpha := AlphaScheduler(step, 0, cfg.Alpha, cfg.TAlpha)
	beta3 := Beta3SchedulerShaped(cfg.beta3Shape(), step, beta1, cfg.Beta3(), cfg.TBeta3)

	// m1 = beta1 * m1 + (1-beta1) * grad
	// m2 = beta3 * m2 + (1-beta3) * grad
	// nu = beta2 * nu + (1-beta2) * grad²
	fast := state.FastEMA.EMA(grad, beta1)
	slow := state.SlowEMA.EMA(grad, beta3)
	second := state.SecondMoment.EMA(grad.Square(), beta2)

	// denom = sqrt(nu) / sqrt(bias_correction2) + eps
	denom := second.Sqrt().DivScalar(math.Sqrt(biasCorrection2)).AddScalar(cfg.Eps)

	// update = (m1 / bias_correction1 + alpha * m2) / denom
	direction := fast.DivScalar(biasCorrection1)
	if cfg.mixing() == MixAdditive {
		direction = direction.AddScalar(alpha).Add(slow)
	} else {
		direction = direction.Add(slow.MulScalar(alpha))
	}
	direction = direction.Div(denom)

	// Coupled weight decay uses the pre-update parameter.
	p := param.Tensor()
	if cfg.WeightDecay != 0 {
		direction = direction.Add(p.MulScalar(cfg.WeightDecay))
	}

	// param = param - lr * update
	next := p.Sub(direction.MulScalar(cfg.LR))

	return o.commit(param, next, state, step, fast, slow, second)
}

func (o *AdEMAMix[T, B]) commit(
	param *nn.Parameter[T, B],
	next *tensor.Tensor[T, B],
	state *ParameterState[T, B],
	step int,
	fast, slow, second *tensor.Tensor[T, B],
) error {
	for _, c := range [...]struct {
		dst, src *tensor.Tensor[T, B]
		what     string
	}{
		{state.FastEMA, fast, "fast EMA"},
		{state.SlowEMA, slow, "slow EMA"},
		{state.SecondMoment, second, "second moment"},
		{param.Tensor(), next, "value"},
	} {
		if err := c.dst.CopyFrom(c.src); err != nil {
			return errors.Wrapf(err, "parameter %q: commit %s", param.Name(), c.what)
		}
	}
	state.Step = step
	return nil
}
