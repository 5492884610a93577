package priority

import "testing"

// Benchmark scheduling over a flat tree of active streams
func BenchmarkNextFlat(b *testing.B) {
	tree := New()
	for id := uint32(1); id <= 31; id += 2 {
		tree.Insert(id, 0, 16, false)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tree.Next(); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark scheduling through a chain of blocked ancestors
func BenchmarkNextDeepChain(b *testing.B) {
	tree := New()
	var parent uint32
	for id := uint32(1); id <= 31; id += 2 {
		tree.Insert(id, parent, 16, false)
		parent = id
	}
	// Only the leaf has data; every call descends the full chain.
	for id := uint32(1); id < 31; id += 2 {
		tree.Block(id)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tree.Next(); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark scheduling when most siblings are blocked
func BenchmarkNextMostlyBlocked(b *testing.B) {
	tree := New()
	for id := uint32(1); id <= 127; id += 2 {
		tree.Insert(id, 0, 16, false)
		if id != 63 {
			tree.Block(id)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tree.Next(); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark stream churn (insert and remove)
func BenchmarkInsertRemove(b *testing.B) {
	tree := New()
	tree.Insert(1, 0, 16, false)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := tree.Insert(3, 1, 16, false); err != nil {
			b.Fatal(err)
		}
		if err := tree.Remove(3); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark PRIORITY payload parsing (should be 0 allocs/op)
func BenchmarkParsePriorityPayload(b *testing.B) {
	payload := []byte{0x80, 0x00, 0x00, 0x07, 0x0f}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ParsePriorityPayload(payload); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark applying PRIORITY updates to existing streams
func BenchmarkApplyPriority(b *testing.B) {
	tree := New()
	tree.Insert(1, 0, 16, false)
	tree.Insert(3, 0, 16, false)
	tree.Insert(5, 1, 16, false)

	params := [2]PriorityParam{
		{StreamDep: 1, Weight: 31},
		{StreamDep: 3, Weight: 63},
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := tree.ApplyPriority(5, params[i&1]); err != nil {
			b.Fatal(err)
		}
	}
}
