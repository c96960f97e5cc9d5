package optim

import "math"

// AlphaScheduler returns the slow-EMA weight at step.
//
// The value ramps linearly from start at step 0 to end at step t and stays at
// end afterwards. t <= 0 disables the warmup and returns end for every step.
func AlphaScheduler(step int, start, end float64, t int) float64 {
	return linearRamp(step, start, end, t)
}

// Beta3Scheduler returns the slow EMA decay at step, ramping linearly from
// start to end over t steps with the same boundary rules as AlphaScheduler.
func Beta3Scheduler(step int, start, end float64, t int) float64 {
	return linearRamp(step, start, end, t)
}

// Beta3SchedulerShaped is Beta3Scheduler with a selectable ramp.
//
// HalfLifeSchedule interpolates 1/ln(beta) linearly, so the half-life of the
// slow EMA grows in proportion to the step instead of beta3 itself. It falls
// back to the linear ramp when an endpoint is 0, where the log is undefined.
func Beta3SchedulerShaped(shape ScheduleShape, step int, start, end float64, t int) float64 {
	if shape != HalfLifeSchedule || start <= 0 || end <= 0 {
		return linearRamp(step, start, end, t)
	}
	if done, v := rampBounds(step, start, end, t); done {
		return v
	}

	f := float64(step) / float64(t)
	logStart, logEnd := math.Log(start), math.Log(end)
	v := math.Exp(logStart * logEnd / ((1-f)*logEnd + f*logStart))
	return clamp(v, start, end)
}

func linearRamp(step int, start, end float64, t int) float64 {
	if done, v := rampBounds(step, start, end, t); done {
		return v
	}
	f := float64(step) / float64(t)
	return clamp(start+(end-start)*f, start, end)
}

// rampBounds resolves the exact endpoints so they never pick up rounding error.
func rampBounds(step int, start, end float64, t int) (bool, float64) {
	switch {
	case t <= 0, step >= t:
		return true, end
	case step <= 0:
		return true, start
	}
	return false, 0
}

func clamp(v, a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return math.Max(lo, math.Min(hi, v))
}
