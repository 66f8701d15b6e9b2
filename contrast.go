package tone

// ScoreSentenceWithContrast splits sentence on its first contrastive
// connector and weights the clause after it more heavily. Sentences without
// a connector are scored as a whole.
func (a *Analyzer) ScoreSentenceWithContrast(sentence string) (hawkish, dovish float64) {
	s := a.scoreContrast(sentence)
	return s.h, s.d
}

func (a *Analyzer) scoreContrast(sentence string) clauseScore {
	loc := a.markers.contrast.FindStringIndex(sentence)
	if loc == nil {
		return a.scoreClause(sentence)
	}

	// Only the first connector splits; later ones stay inside the clauses.
	before := a.scoreClause(sentence[:loc[0]])
	after := a.scoreClause(sentence[loc[1]:])
	return before.scale(a.config.ContrastBefore).plus(after.scale(a.config.ContrastAfter))
}
