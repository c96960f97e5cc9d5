package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/ademamix/internal/optim"
)

func TestAlphaScheduler(t *testing.T) {
	tests := []struct {
		name string
		step int
		t    int
		want float64
	}{
		{"start of ramp", 0, 100, 0},
		{"quarter", 25, 100, 1.25},
		{"half", 50, 100, 2.5},
		{"end of ramp", 100, 100, 5},
		{"past end", 1000, 100, 5},
		{"no ramp at step 0", 0, 0, 5},
		{"no ramp later", 7, 0, 5},
		{"negative horizon", 3, -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, optim.AlphaScheduler(tt.step, 0, 5, tt.t), 1e-12)
		})
	}
}

func TestAlphaScheduler_ExactEndpoints(t *testing.T) {
	const a = 8.3
	for _, horizon := range []int{1, 3, 10, 7919} {
		assert.Equal(t, 0.0, optim.AlphaScheduler(0, 0, a, horizon))
		assert.Equal(t, a, optim.AlphaScheduler(horizon, 0, a, horizon))
	}
	for _, step := range []int{0, 1, 50, 1 << 20} {
		assert.Equal(t, a, optim.AlphaScheduler(step, 0, a, 0))
	}
}

func TestBeta3Scheduler_EndpointsAndMonotonic(t *testing.T) {
	const beta1, beta3, horizon = 0.9, 0.9999, 500

	shapes := []optim.ScheduleShape{optim.LinearSchedule, optim.HalfLifeSchedule}
	for _, shape := range shapes {
		t.Run(string(shape), func(t *testing.T) {
			assert.Equal(t, beta1, optim.Beta3SchedulerShaped(shape, 0, beta1, beta3, horizon))
			assert.Equal(t, beta3, optim.Beta3SchedulerShaped(shape, horizon, beta1, beta3, horizon))

			prev := optim.Beta3SchedulerShaped(shape, 0, beta1, beta3, horizon)
			for step := 1; step <= horizon; step++ {
				v := optim.Beta3SchedulerShaped(shape, step, beta1, beta3, horizon)
				assert.GreaterOrEqual(t, v, prev, "step %d", step)
				assert.LessOrEqual(t, v, beta3, "step %d", step)
				prev = v
			}
		})
	}
}

func TestBeta3Scheduler_MatchesLinearShape(t *testing.T) {
	for step := 0; step <= 20; step++ {
		assert.Equal(t,
			optim.Beta3SchedulerShaped(optim.LinearSchedule, step, 0.9, 0.999, 20),
			optim.Beta3Scheduler(step, 0.9, 0.999, 20))
	}
}

func TestBeta3Scheduler_HalfLife(t *testing.T) {
	// 10% of the way: 1/ln(beta3) = 0.9/ln(0.9) + 0.1/ln(0.9999).
	want := math.Exp(1 / (0.9/math.Log(0.9) + 0.1/math.Log(0.9999)))
	got := optim.Beta3SchedulerShaped(optim.HalfLifeSchedule, 10, 0.9, 0.9999, 100)
	assert.InDelta(t, want, got, 1e-12)

	// The half-life ramp approaches beta3 much faster than the linear one.
	assert.Greater(t, got, optim.Beta3Scheduler(10, 0.9, 0.9999, 100))
	assert.Less(t, got, 0.9999)
}

func TestBeta3Scheduler_HalfLifeDecreasing(t *testing.T) {
	const start, end, horizon = 0.9999, 0.9, 50

	prev := optim.Beta3SchedulerShaped(optim.HalfLifeSchedule, 0, start, end, horizon)
	assert.Equal(t, start, prev)
	for step := 1; step <= horizon; step++ {
		v := optim.Beta3SchedulerShaped(optim.HalfLifeSchedule, step, start, end, horizon)
		assert.LessOrEqual(t, v, prev, "step %d", step)
		assert.GreaterOrEqual(t, v, end, "step %d", step)
		prev = v
	}
	assert.Equal(t, end, prev)
}

func TestBeta3Scheduler_HalfLifeZeroEndpointFallsBack(t *testing.T) {
	for step := 0; step <= 10; step++ {
		assert.Equal(t,
			optim.Beta3Scheduler(step, 0, 0.99, 10),
			optim.Beta3SchedulerShaped(optim.HalfLifeSchedule, step, 0, 0.99, 10))
	}
}

func TestSchedulers_Idempotent(t *testing.T) {
	order := []int{7, 3, 7, 0, 100, 3}
	first := make(map[int]float64)
	for _, step := range order {
		v := optim.Beta3SchedulerShaped(optim.HalfLifeSchedule, step, 0.9, 0.9999, 10)
		if prev, ok := first[step]; ok {
			assert.Equal(t, prev, v, "step %d", step)
		}
		first[step] = v
	}
}

func FuzzAlphaScheduler(f *testing.F) {
	f.Add(0, 5.0, 10)
	f.Add(3, 1.5, 0)
	f.Add(99, 12.0, 100)

	f.Fuzz(func(t *testing.T, step int, end float64, horizon int) {
		if math.IsNaN(end) || math.IsInf(end, 0) || end < 0 || end > 1e12 || step < 0 {
			t.Skip()
		}
		v := optim.AlphaScheduler(step, 0, end, horizon)
		if v < 0 || v > end {
			t.Fatalf("AlphaScheduler(%d, 0, %v, %d) = %v, outside [0, %v]", step, end, horizon, v, end)
		}
		if (horizon <= 0 || step >= horizon) && v != end {
			t.Fatalf("AlphaScheduler(%d, 0, %v, %d) = %v, want exactly %v", step, end, horizon, v, end)
		}
	})
}

func FuzzBeta3Scheduler(f *testing.F) {
	f.Add(0, 0.9, 0.9999, 10)
	f.Add(5, 0.5, 0.999, 6)

	f.Fuzz(func(t *testing.T, step int, start, end float64, horizon int) {
		if !(start >= 0 && start < 1 && end >= start && end < 1) || step < 0 {
			t.Skip()
		}
		v := optim.Beta3SchedulerShaped(optim.HalfLifeSchedule, step, start, end, horizon)
		if v < start || v > end {
			t.Fatalf("Beta3SchedulerShaped(%d, %v, %v, %d) = %v, outside range", step, start, end, horizon, v)
		}
	})
}
