package gap

import (
	"fmt"
	"testing"
)

func gaps(n int, prefix string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return out
}

func TestEstimateLearningTime_DataAnalystScenario(t *testing.T) {
	// 2*1 + 1*1 + 0.4*1 = 3.4 weeks, floored to whole weeks.
	got := EstimateLearningTime(Buckets{
		CoreGaps:     []string{"Excel"},
		AdvancedGaps: []string{"Statistics"},
		ToolGaps:     []string{"Tableau"},
	})
	if got != "3 weeks" {
		t.Fatalf("expected %q, got %q", "3 weeks", got)
	}
}

func TestEstimateLearningTime_ZeroGaps(t *testing.T) {
	if got := EstimateLearningTime(Buckets{}); got != "0 weeks" {
		t.Fatalf("expected %q, got %q", "0 weeks", got)
	}
}

func TestEstimateLearningTime_MonthsRendering(t *testing.T) {
	// 2*2 + 1 = 5 weeks -> 1.3 months.
	got := EstimateLearningTime(Buckets{
		CoreGaps:     gaps(2, "core"),
		AdvancedGaps: gaps(1, "adv"),
	})
	if got != "1.3 months" {
		t.Fatalf("expected %q, got %q", "1.3 months", got)
	}

	// 2*4 = 8 weeks -> 2.0 months.
	got = EstimateLearningTime(Buckets{CoreGaps: gaps(4, "core")})
	if got != "2.0 months" {
		t.Fatalf("expected %q, got %q", "2.0 months", got)
	}
}

func TestEstimateLearningTime_MonotonicPerTier(t *testing.T) {
	weeks := func(c, a, tl int) float64 {
		return 2*float64(c) + float64(a) + 0.4*float64(tl)
	}

	for c := 0; c < 5; c++ {
		for a := 0; a < 5; a++ {
			for tl := 0; tl < 5; tl++ {
				if weeks(c+1, a, tl) < weeks(c, a, tl) ||
					weeks(c, a+1, tl) < weeks(c, a, tl) ||
					weeks(c, a, tl+1) < weeks(c, a, tl) {
					t.Fatalf("estimate not monotonic at c=%d a=%d t=%d", c, a, tl)
				}
			}
		}
	}
}
