package vector

import "testing"

func benchmarkAppend(factor int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		v := Empty[int]()
		for i := 0; i < factor; i++ {
			v = v.Append(i)
		}
	}
}

func BenchmarkAppend100(b *testing.B) { benchmarkAppend(100, b) }
func BenchmarkAppend1k(b *testing.B)  { benchmarkAppend(1_000, b) }
func BenchmarkAppend10k(b *testing.B) { benchmarkAppend(10_000, b) }

func benchmarkTransientAppend(factor int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		tr := Empty[int]().Transient()
		for i := 0; i < factor; i++ {
			tr.Append(i)
		}
		tr.ToImmutable()
	}
}

func BenchmarkTransientAppend100(b *testing.B) { benchmarkTransientAppend(100, b) }
func BenchmarkTransientAppend1k(b *testing.B)  { benchmarkTransientAppend(1_000, b) }
func BenchmarkTransientAppend10k(b *testing.B) { benchmarkTransientAppend(10_000, b) }

func benchmarkGet(size int, b *testing.B) {
	v := rangeVector(size)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		v.Get(n % size)
	}
}

func BenchmarkGet1k(b *testing.B)   { benchmarkGet(1_000, b) }
func BenchmarkGet100k(b *testing.B) { benchmarkGet(100_000, b) }

func benchmarkReplace(size int, b *testing.B) {
	v := rangeVector(size)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		v.Replace(n%size, n)
	}
}

func BenchmarkReplace1k(b *testing.B)   { benchmarkReplace(1_000, b) }
func BenchmarkReplace100k(b *testing.B) { benchmarkReplace(100_000, b) }
