package autodiff

import (
	"github.com/born-ml/ademamix/internal/tensor"
)

// Operation is one recorded forward computation.
//
// The tape keeps inputs and output by identity so an external
// differentiation pass can walk the graph in reverse.
type Operation struct {
	Name   string              // Backend method name, e.g. "Mul" or "MulScalar".
	Inputs []*tensor.RawTensor // Tensor operands in call order.
	Output *tensor.RawTensor
}

// GradientTape records operations during the forward pass.
//
// Usage:
//
//	tape := NewGradientTape()
//	tape.StartRecording()
//	// ... perform operations ...
//	ops := tape.Operations()
type GradientTape struct {
	operations []Operation // Recorded operations (in execution order)
	recording  bool        // Whether tape is currently recording
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]Operation, 0, 64), // Pre-allocate for common case
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape) Record(op Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// Operations returns the recorded operations in execution order.
func (t *GradientTape) Operations() []Operation {
	return t.operations
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}
