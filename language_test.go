package tone

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectScript(t *testing.T) {
	tests := []struct {
		text     string
		script   Script
		minShare float64
		desc     string
	}{
		{"한국은행 금융통화위원회", ScriptHangul, 1, "korean"},
		{"The committee raised rates", ScriptLatin, 1, "english"},
		{"위원들은 CPI 상승률을 논의하였다", ScriptHangul, 0.7, "mixed"},
		{"金融通貨委員會", ScriptHan, 1, "hanja"},
		{"2024. 01. 11", ScriptUnknown, 0, "no letters"},
		{"", ScriptUnknown, 0, "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			script, share := DetectScript(tt.text)
			assert.Equal(t, tt.script, script)
			assert.GreaterOrEqual(t, share, tt.minShare)
			assert.LessOrEqual(t, share, 1.0)
		})
	}
}

func TestAnalyzeWarnsOnForeignText(t *testing.T) {
	var logs bytes.Buffer
	a := newTestAnalyzer(t, WithLogger(zerolog.New(&logs)))

	result, err := a.Analyze("The committee decided to keep the base rate unchanged.")
	require.NoError(t, err)
	assert.Equal(t, Neutral, result.Interpretation)
	assert.Contains(t, logs.String(), `"script":"latin"`)

	logs.Reset()
	_, err = a.Analyze(goldenMinutes)
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "not predominantly Korean")
}
