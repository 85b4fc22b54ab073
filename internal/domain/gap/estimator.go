package gap

import (
	"fmt"
	"math"
)

// EstimateLearningTime converts tiered gap counts into a rough duration:
// two weeks per core skill, one per advanced, 0.4 per tool. Under four
// weeks it renders whole weeks, otherwise months rounded to one decimal.
// Deliberately ignores skill difficulty and learner pace.
func EstimateLearningTime(b Buckets) string {
	weeks := 2.0*float64(len(b.CoreGaps)) + float64(len(b.AdvancedGaps)) + 0.4*float64(len(b.ToolGaps))

	if weeks < 4 {
		return fmt.Sprintf("%d weeks", int(weeks))
	}
	months := math.Round(weeks/4*10) / 10
	return fmt.Sprintf("%.1f months", months)
}
