package tone

// Interpretation is the discrete label for a tone index.
type Interpretation string

// Labels, from most hawkish to most dovish
const (
	StrongHawkish   Interpretation = "Strong Hawkish"
	ModerateHawkish Interpretation = "Moderate Hawkish"
	Neutral         Interpretation = "Neutral"
	ModerateDovish  Interpretation = "Moderate Dovish"
	StrongDovish    Interpretation = "Strong Dovish"
)

// Interpret maps a tone index to its label.
func Interpret(index float64) Interpretation {
	switch {
	case index >= 0.3:
		return StrongHawkish
	case index >= 0.1:
		return ModerateHawkish
	case index >= -0.1:
		return Neutral
	case index >= -0.3:
		return ModerateDovish
	default:
		return StrongDovish
	}
}
