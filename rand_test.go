package intervalskiplist

import (
	"math"
	"strings"
	"testing"
)

func TestLevelDrawDistribution(t *testing.T) {
	const numSamples = 1000000
	const p = 0.5
	counts := make(map[int]int)
	rng := newRNGWithSeed(0x123456789abcdef)
	for range numSamples {
		counts[rng.levelDraw()]++
	}

	// Check that the distribution is roughly geometric: with p = 1/2 the
	// number of draws reaching level i+1 should be about half the number
	// reaching level i.
	for i := 0; i < 20; i++ {
		count1 := counts[i]
		if count1 == 0 {
			continue
		}
		count2 := counts[i+1]
		ratio := float64(count2) / float64(count1)

		// The draws reaching level i+1 follow a Binomial(count1, p)
		// distribution, so the ratio has mean p and variance
		// p(1-p)/count1. Five standard deviations keeps the check tight
		// on the dense low levels without spurious failures once the
		// samples thin out.
		stdDev := math.Sqrt(p * (1 - p) / float64(count1))
		tolerance := 5 * stdDev

		if math.Abs(ratio-p) > tolerance {
			t.Errorf("expected ratio between level %d and %d to be around %.2f ± %.4f, got %.2f",
				i, i+1, p, tolerance, ratio)
		}
	}
}

func TestRandomLevelHonorsLadderCap(t *testing.T) {
	s := newIntIndex()
	// On an empty index maxLevel is 0, so draws are capped at 1.
	for range 1000 {
		if level := s.randomLevel(); level > 1 {
			t.Fatalf("randomLevel = %d with maxLevel = 0", level)
		}
	}

	// The ladder stays contiguous as it grows: each endpoint node raises
	// maxLevel by at most one, and an insert creates at most two nodes.
	prevMax := s.maxLevel
	for i := range 5000 {
		s.Insert(ci(i*3, i*3+1))
		if s.maxLevel > prevMax+2 {
			t.Fatalf("maxLevel jumped from %d to %d", prevMax, s.maxLevel)
		}
		prevMax = s.maxLevel
	}
	if s.maxLevel >= MaxLevel {
		t.Fatalf("maxLevel %d must stay below MaxLevel", s.maxLevel)
	}
}

func TestSeededIndexesAreReproducible(t *testing.T) {
	build := func() string {
		s := NewWithSeed[int, ClosedInterval[int]](intLess, 99)
		for i := range 200 {
			s.Insert(ci(i, i+5))
		}
		var b strings.Builder
		s.Dump(&b)
		return b.String()
	}
	if a, b := build(), build(); a != b {
		t.Fatalf("same seed must give identical structure:\n%s\n%s", a, b)
	}
}
