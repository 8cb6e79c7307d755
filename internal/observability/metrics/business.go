package metrics

import "time"

// Submission outcomes recorded by RecordSubmission.
const (
	SubmissionInserted  = "inserted"
	SubmissionDuplicate = "duplicate"
	SubmissionError     = "error"
)

// Per-entry sink results recorded by RecordEntryIndexed.
const (
	ResultIndexed   = "indexed"
	ResultDuplicate = "duplicate"
	ResultError     = "error"
)

// RecordSubmission records the outcome of a single URL submission.
func RecordSubmission(outcome string) {
	SubmissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordFeedProcessed records the terminal state and duration of one
// consumed feed message.
func RecordFeedProcessed(state string, duration time.Duration) {
	FeedsProcessedTotal.WithLabelValues(state).Inc()
	FeedProcessDuration.Observe(duration.Seconds())
}

// RecordEntryIndexed records the result of writing one entry to one sink.
// Sink should be "search" or "graph".
func RecordEntryIndexed(sink, result string) {
	EntriesIndexedTotal.WithLabelValues(sink, result).Inc()
}

// RecordSinkDivergence records an entry for which the search and graph
// sinks disagreed on prior presence.
func RecordSinkDivergence() {
	SinkDivergenceTotal.Inc()
}

// RecordBrokerRequeue records a negative acknowledgment disposition,
// either "requeued" or "dead_lettered".
func RecordBrokerRequeue(disposition string) {
	BrokerRequeuesTotal.WithLabelValues(disposition).Inc()
}
