package usecase

import (
	"context"
	"math/rand"
	"time"

	"career-compass/internal/domain/peers"
)

type BenchmarkUsecase interface {
	Benchmark(ctx context.Context, career string, in SkillInput, sampleSize int) (peers.Report, error)
}

// Benchmark generates peer comparison reports. A fresh random source is
// drawn per call; rand.Rand is not safe for concurrent use, and tests
// inject a seeded factory for reproducibility.
type Benchmark struct {
	src        CatalogSource
	newRand    func() *rand.Rand
	sampleSize int
}

func NewBenchmarkUsecase(src CatalogSource, newRand func() *rand.Rand, sampleSize int) *Benchmark {
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &Benchmark{src: src, newRand: newRand, sampleSize: sampleSize}
}

func (u *Benchmark) Benchmark(ctx context.Context, career string, in SkillInput, sampleSize int) (peers.Report, error) {
	store := u.src.Store()
	target, err := scorableCareer(store, career)
	if err != nil {
		return peers.Report{}, err
	}

	profile, err := buildProfile(u.src, in)
	if err != nil {
		return peers.Report{}, err
	}

	if sampleSize <= 0 {
		sampleSize = u.sampleSize
	}
	gen := peers.New(u.newRand())
	return gen.Generate(store, target, profile, sampleSize), nil
}
