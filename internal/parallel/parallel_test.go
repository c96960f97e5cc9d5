package parallel

import (
	"sync/atomic"
	"testing"
)

func covered(t *testing.T, n int, cfg Config) {
	t.Helper()

	hits := make([]int32, n)
	var calls int64
	Range(n, func(start, end int) {
		atomic.AddInt64(&calls, 1)
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, h)
		}
	}
	if n > 0 && calls == 0 {
		t.Fatal("f was never called")
	}
}

func TestRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	for _, n := range []int{1, 7, 16, 17, 100, 1001} {
		covered(t, n, cfg)
	}
}

func TestRange_Sequential(t *testing.T) {
	var calls int
	Range(100, func(start, end int) {
		calls++
		if start != 0 || end != 100 {
			t.Errorf("sequential range = [%d, %d), want [0, 100)", start, end)
		}
	}, Sequential())

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestRange_SmallInputStaysOnCaller(t *testing.T) {
	cfg := DefaultConfig()

	var calls int
	Range(cfg.MinChunkSize, func(_, _ int) { calls++ }, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call for small input, got %d", calls)
	}
}

func TestRange_Empty(t *testing.T) {
	Range(0, func(_, _ int) {
		t.Error("f must not be called for n == 0")
	}, DefaultConfig())
}

func BenchmarkRange(b *testing.B) {
	cfg := DefaultConfig()
	data := make([]float64, 1<<20)

	for i := 0; i < b.N; i++ {
		Range(len(data), func(start, end int) {
			for j := start; j < end; j++ {
				data[j] = data[j]*0.9 + 0.1
			}
		}, cfg)
	}
}
