package treemap

import "testing"

func benchmarkAssoc(factor int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := Empty[int, int]()
		for i := 0; i < factor; i++ {
			m = m.Assoc(i, i)
		}
	}
}

func BenchmarkAssoc100(b *testing.B) { benchmarkAssoc(100, b) }
func BenchmarkAssoc1k(b *testing.B)  { benchmarkAssoc(1_000, b) }
func BenchmarkAssoc10k(b *testing.B) { benchmarkAssoc(10_000, b) }

func benchmarkGet(size int, b *testing.B) {
	m := Empty[int, int]()
	for i := 0; i < size; i++ {
		m = m.Assoc(i, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Get(n % size)
	}
}

func BenchmarkGet1k(b *testing.B)   { benchmarkGet(1_000, b) }
func BenchmarkGet100k(b *testing.B) { benchmarkGet(100_000, b) }

func benchmarkWithout(size int, b *testing.B) {
	base := Empty[int, int]()
	for i := 0; i < size; i++ {
		base = base.Assoc(i, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		base.Without(n % size)
	}
}

func BenchmarkWithout1k(b *testing.B)  { benchmarkWithout(1_000, b) }
func BenchmarkWithout10k(b *testing.B) { benchmarkWithout(10_000, b) }

func BenchmarkIterate10k(b *testing.B) {
	m := Empty[int, int]()
	for i := 0; i < 10_000; i++ {
		m = m.Assoc(i, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for range m.All() {
		}
	}
}
