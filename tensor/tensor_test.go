// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/ademamix/internal/backend/cpu"
	"github.com/born-ml/ademamix/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if shape := raw.Shape(); !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", shape)
	}
	if dtype := raw.DType(); dtype != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", dtype)
	}
	if device := raw.Device(); device != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", device)
	}
	if n := raw.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}
	if size := raw.ByteSize(); size != 24 {
		t.Errorf("ByteSize() = %d, want 24", size)
	}
}

func TestCreation(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name string
		got  *tensor.Tensor[float64, *cpu.CPUBackend]
		want []float64
	}{
		{"zeros", tensor.Zeros[float64](tensor.Shape{3}, backend), []float64{0, 0, 0}},
		{"ones", tensor.Ones[float64](tensor.Shape{3}, backend), []float64{1, 1, 1}},
		{"full", tensor.Full(tensor.Shape{3}, 2.5, backend), []float64{2.5, 2.5, 2.5}},
		{"zeros like", tensor.ZerosLike(tensor.Ones[float64](tensor.Shape{3}, backend)), []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.got.Data()
			if len(data) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(data), len(tt.want))
			}
			for i := range data {
				if data[i] != tt.want[i] {
					t.Errorf("[%d] = %v, want %v", i, data[i], tt.want[i])
				}
			}
		})
	}
}

func TestFromSlice_SizeMismatch(t *testing.T) {
	_, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}, cpu.New())
	if err == nil {
		t.Error("expected error for 3 elements in a 2x2 shape")
	}
}
