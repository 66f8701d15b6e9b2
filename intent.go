package tone

// ScoreIntent returns the tone of a sentence that carries forward-looking or
// necessity language, with both scores boosted by the intent multiplier. The
// second result is false only when the sentence has no intent marker; a
// marker sentence without polarity signal scores 0.
func (a *Analyzer) ScoreIntent(sentence string, hawkish, dovish float64) (float64, bool) {
	var multiplier float64
	switch {
	case a.markers.strongIntent.MatchString(sentence):
		multiplier = a.config.StrongIntentMultiplier
	case a.markers.intent.MatchString(sentence):
		multiplier = a.config.IntentMultiplier
	default:
		return 0, false
	}

	return a.toneIndex(hawkish*multiplier, dovish*multiplier), true
}
