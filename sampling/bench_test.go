package sampling_test

import (
	"testing"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/builder"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/sampling"
)

// BenchmarkForward_Chain10k draws 10k rows from the three-node chain.
func BenchmarkForward_Chain10k(b *testing.B) {
	m := diagnosisModel(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampling.Forward(m, 10_000, sampling.WithSeed(uint64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkForward_Chain10kWorkers4 is the same workload split across four shards.
func BenchmarkForward_Chain10kWorkers4(b *testing.B) {
	m := diagnosisModel(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampling.Forward(m, 10_000, sampling.WithSeed(uint64(i)), sampling.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkForward_RandomDAG20 samples a seeded 20-variable random network
// with ternary variables.
func BenchmarkForward_RandomDAG20(b *testing.B) {
	m, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithCard(3)},
		builder.RandomDAG(20, 0.15))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampling.Forward(m, 10_000, sampling.WithSeed(uint64(i)), sampling.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}
