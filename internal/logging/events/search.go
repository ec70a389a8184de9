package events

import "github.com/forkfind/forkfind/internal/logging"

type SearchTracer struct{}

var Search = SearchTracer{}

func (SearchTracer) Commit(query string, seq uint64, unchanged bool) {
	logging.Trace("search.commit", map[string]interface{}{
		"query":     query,
		"seq":       seq,
		"unchanged": unchanged,
	})
}

func (SearchTracer) Request(requestID, query string) {
	logging.Trace("search.request", map[string]interface{}{
		"request": requestID,
		"query":   query,
	})
}

func (SearchTracer) Response(requestID string, hits int, status int) {
	logging.Trace("search.response", map[string]interface{}{
		"request": requestID,
		"hits":    hits,
		"status":  status,
	})
}

func (SearchTracer) Stale(query string, seq, current uint64) {
	logging.Trace("search.stale", map[string]interface{}{
		"query":   query,
		"seq":     seq,
		"current": current,
	})
}

func (SearchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("search.error", map[string]interface{}{"error": err.Error()})
}
