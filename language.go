package tone

import (
	"unicode"
)

// Script is the writing system a text is mostly written in.
type Script string

// Scripts recognised by DetectScript
const (
	ScriptHangul  Script = "hangul"
	ScriptHan     Script = "han"
	ScriptLatin   Script = "latin"
	ScriptUnknown Script = "unknown"
)

var scriptTables = []struct {
	script Script
	table  *unicode.RangeTable
}{
	{ScriptHangul, unicode.Hangul},
	{ScriptHan, unicode.Han},
	{ScriptLatin, unicode.Latin},
}

// DetectScript returns the dominant script among the letters of text and
// the share of letters written in it. Texts without letters are
// ScriptUnknown with share 0.
func DetectScript(text string) (Script, float64) {
	counts := make(map[Script]int, len(scriptTables))
	letters := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		for _, st := range scriptTables {
			if unicode.Is(st.table, r) {
				counts[st.script]++
				break
			}
		}
	}
	if letters == 0 {
		return ScriptUnknown, 0
	}

	best, bestCount := ScriptUnknown, 0
	for _, st := range scriptTables {
		if counts[st.script] > bestCount {
			best, bestCount = st.script, counts[st.script]
		}
	}
	if bestCount == 0 {
		return ScriptUnknown, 0
	}
	return best, float64(bestCount) / float64(letters)
}
