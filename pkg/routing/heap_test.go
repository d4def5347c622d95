package routing

import (
	"math/rand"
	"sort"
	"testing"
)

func TestFrontierPopsInPriorityOrder(t *testing.T) {
	var pq frontier
	rng := rand.New(rand.NewSource(7))

	const n = 500
	want := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		f := rng.Float64() * 1000
		pq.Push(frontierItem{node: uint32(i), f: f, g: f / 2})
		want = append(want, f)
	}
	sort.Float64s(want)

	for i := 0; i < n; i++ {
		got := pq.Pop()
		if got.f != want[i] {
			t.Fatalf("pop %d: f = %f, want %f", i, got.f, want[i])
		}
	}
	if pq.Len() != 0 {
		t.Errorf("len = %d after draining, want 0", pq.Len())
	}
}

func TestFrontierTieBreaksOnSmallerG(t *testing.T) {
	var pq frontier
	pq.Push(frontierItem{node: 1, f: 10, g: 8})
	pq.Push(frontierItem{node: 2, f: 10, g: 3})
	pq.Push(frontierItem{node: 3, f: 10, g: 5})

	if got := pq.Pop(); got.node != 2 {
		t.Errorf("first pop node = %d, want 2 (smallest g)", got.node)
	}
	if got := pq.Pop(); got.node != 3 {
		t.Errorf("second pop node = %d, want 3", got.node)
	}
	if got := pq.Pop(); got.node != 1 {
		t.Errorf("third pop node = %d, want 1", got.node)
	}
}

func TestFrontierInterleavedPushPop(t *testing.T) {
	var pq frontier
	rng := rand.New(rand.NewSource(42))

	last := -1.0
	for i := 0; i < 2000; i++ {
		if pq.Len() == 0 || rng.Intn(3) > 0 {
			pq.Push(frontierItem{node: uint32(i), f: last + rng.Float64()*10, g: 0})
			continue
		}
		got := pq.Pop()
		if got.f < last {
			t.Fatalf("pop returned f %f after %f", got.f, last)
		}
		last = got.f
	}
}
