package expandable

// Easing maps an elapsed-time fraction in [0, 1] to a progress fraction in
// [0, 1]. Curves must satisfy f(0) = 0 and f(1) = 1. The view uses the
// configured curve to drive the expand transition.
type Easing func(t float64) float64

// Linear progresses at constant speed.
func Linear(t float64) float64 { return t }

// EaseOutQuad decelerates toward the end of the transition.
func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseInOutQuad accelerates through the first half and decelerates through
// the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// EaseOutCubic decelerates more sharply than EaseOutQuad.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
