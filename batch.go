package tone

import (
	"context"
	"sync"
)

// BatchResult is the outcome for one document of a batch. Err is set when
// the document could not be scored; the rest of the batch is unaffected.
type BatchResult struct {
	MeetingID string
	Result    ToneResult
	Err       error
}

// AnalyzeBatch scores docs on Config.Workers goroutines and returns one
// result per document in input order. A failing document is logged and
// skipped. When ctx is cancelled, documents not yet started get ctx.Err().
func (a *Analyzer) AnalyzeBatch(ctx context.Context, docs []Document) []BatchResult {
	results := make([]BatchResult, len(docs))
	for i := range docs {
		results[i].MeetingID = docs[i].MeetingID
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := a.config.workers()
	if workers > len(docs) {
		workers = len(docs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i].Result, results[i].Err = a.analyzeSafe(&docs[i])
				if results[i].Err != nil {
					a.logger.Error().
						Err(results[i].Err).
						Str("meeting_id", docs[i].MeetingID).
						Msg("skipping document")
				}
			}
		}()
	}

	dispatched := 0
dispatch:
	for ; dispatched < len(docs) && ctx.Err() == nil; dispatched++ {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- dispatched:
		}
	}
	close(jobs)
	wg.Wait()

	for i := dispatched; i < len(docs); i++ {
		results[i].Err = ctx.Err()
	}
	if dispatched < len(docs) {
		a.logger.Warn().Err(ctx.Err()).Int("skipped", len(docs)-dispatched).Msg("batch cancelled")
	}

	return results
}

func (a *Analyzer) analyzeSafe(doc *Document) (result ToneResult, err error) {
	defer recoverWithError(&err)
	return a.AnalyzeDocument(doc)
}
