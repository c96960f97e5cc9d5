package autodiff

// Tracker is implemented by backends whose operations can be recorded.
type Tracker interface {
	Tape() *GradientTape
}

// NoGrad disables recording on b's tape and returns a function restoring the
// previous recording state. Backends that do not track gradients get a no-op.
//
// Callers defer the restore so it also runs when the guarded code panics:
//
//	defer autodiff.NoGrad(backend)()
func NoGrad(b any) (restore func()) {
	tracker, ok := b.(Tracker)
	if !ok {
		return func() {}
	}

	tape := tracker.Tape()
	wasRecording := tape.IsRecording()
	tape.StopRecording()

	return func() {
		if wasRecording {
			tape.StartRecording()
		}
	}
}

// IsTracking reports whether b is currently recording operations.
func IsTracking(b any) bool {
	tracker, ok := b.(Tracker)
	return ok && tracker.Tape().IsRecording()
}
