package expandable_test

import (
	"testing"

	"github.com/mstarzyk/expandable"
	"github.com/stretchr/testify/assert"
)

func TestEasingCurves(t *testing.T) {
	t.Parallel()

	curves := map[string]expandable.Easing{
		"Linear":        expandable.Linear,
		"EaseOutQuad":   expandable.EaseOutQuad,
		"EaseInOutQuad": expandable.EaseInOutQuad,
		"EaseOutCubic":  expandable.EaseOutCubic,
	}

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, 0.0, curve(0), 1e-9)
			assert.InDelta(t, 1.0, curve(1), 1e-9)

			// Monotone non-decreasing and bounded on a coarse grid.
			prev := curve(0)
			for i := 1; i <= 20; i++ {
				v := curve(float64(i) / 20)
				assert.GreaterOrEqual(t, v, prev)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
				prev = v
			}
		})
	}
}
