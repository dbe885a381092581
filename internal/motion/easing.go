package motion

// EasingFunc maps progress in [0,1] to eased progress in [0,1].
type EasingFunc func(t float64) float64

var (
	// EaseLinear moves at constant speed. Slot shifts use it.
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutQuad starts fast and decelerates.
	EaseOutQuad EasingFunc = func(t float64) float64 {
		return t * (2.0 - t)
	}

	// EaseSmoothstep accelerates at the start and decelerates at the end.
	EaseSmoothstep EasingFunc = func(t float64) float64 {
		return t * t * (3.0 - 2.0*t)
	}
)

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
