package tone

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBatch(t *testing.T) {
	var logs bytes.Buffer
	config := DefaultConfig()
	config.Workers = 3
	a := newTestAnalyzer(t, WithConfig(config), WithLogger(zerolog.New(&logs)))

	docs := []Document{
		{MeetingID: "2024_01_11", Text: goldenMinutes},
		{MeetingID: "2024_02_22", Text: "경기 침체 우려가 커졌다. 금리 인하 여지가 있다."},
		{MeetingID: "broken", Text: "금리 \xff 인상"},
		{MeetingID: "2024_04_12", Text: ""},
	}
	for i := 0; i < 20; i++ {
		docs = append(docs, Document{MeetingID: fmt.Sprintf("extra-%d", i), Text: goldenMinutes})
	}

	results := a.AnalyzeBatch(context.Background(), docs)
	require.Len(t, results, len(docs))

	for i, r := range results {
		assert.Equal(t, docs[i].MeetingID, r.MeetingID)
	}

	assert.NoError(t, results[0].Err)
	assert.Equal(t, ModerateHawkish, results[0].Result.Interpretation)
	assert.NoError(t, results[1].Err)
	assert.Less(t, results[1].Result.ToneIndex, 0.0)
	assert.True(t, errors.Is(results[2].Err, ErrInvalidInput))
	assert.NoError(t, results[3].Err)
	assert.Equal(t, Neutral, results[3].Result.Interpretation)

	single, err := a.Analyze(goldenMinutes)
	require.NoError(t, err)
	for _, r := range results[4:] {
		require.NoError(t, r.Err)
		assert.Equal(t, single.ToneIndex, r.Result.ToneIndex)
	}

	assert.Contains(t, logs.String(), "skipping document")
	assert.Contains(t, logs.String(), `"meeting_id":"broken"`)
}

func TestAnalyzeBatchRecoversPanics(t *testing.T) {
	splitter := SplitterFunc(func(text string) []string {
		if text == "패닉" {
			panic("splitter failed")
		}
		return RuleSplitter{}.Split(text)
	})
	a := newTestAnalyzer(t, WithSplitter(splitter))

	results := a.AnalyzeBatch(context.Background(), []Document{
		{MeetingID: "a", Text: "패닉"},
		{MeetingID: "b", Text: goldenMinutes},
	})
	require.Len(t, results, 2)
	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "got panic: splitter failed")
	assert.NoError(t, results[1].Err)
}

func TestAnalyzeBatchCancelled(t *testing.T) {
	a := newTestAnalyzer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := a.AnalyzeBatch(ctx, []Document{
		{MeetingID: "a", Text: goldenMinutes},
		{MeetingID: "b", Text: goldenMinutes},
	})
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, errors.Is(r.Err, context.Canceled))
	}

	assert.Empty(t, a.AnalyzeBatch(context.Background(), nil))
}
