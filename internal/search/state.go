// Package search owns the query state and the fetch lifecycle. It performs
// no I/O: the UI commits a query, runs the fetch elsewhere, and feeds the
// outcome back through Resolve. Responses for superseded commits are
// discarded so a slow early request can never overwrite a later one.
package search

import (
	"errors"
	"fmt"

	"github.com/forkfind/forkfind/internal/edamam"
	"github.com/forkfind/forkfind/internal/logging/events"
)

// Status enumerates the fetch cycle states.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Request identifies one in-flight fetch. Seq is monotonic per commit; only
// the request carrying the current sequence may update the state.
type Request struct {
	Seq   uint64
	Query string
}

// State is the single holder for search state. It is only ever mutated from
// the Bubble Tea update loop, so no locking is needed.
type State struct {
	draft     string
	committed bool
	query     string
	seq       uint64

	status Status
	hits   []edamam.Hit
	errMsg string

	selected string
}

// NewState returns an idle state with an empty draft.
func NewState() *State {
	return &State{status: StatusIdle}
}

// Draft returns the uncommitted query text.
func (s *State) Draft() string { return s.draft }

// SetDraft replaces the draft text without touching the committed query.
func (s *State) SetDraft(text string) { s.draft = text }

// Query returns the committed query.
func (s *State) Query() string { return s.query }

// Status returns the current fetch status.
func (s *State) Status() Status { return s.status }

// Hits returns the most recent successful result list.
func (s *State) Hits() []edamam.Hit { return s.hits }

// ErrMsg returns the user-facing failure message, empty outside Failure.
func (s *State) ErrMsg() string { return s.errMsg }

// Seq returns the sequence of the latest commit.
func (s *State) Seq() uint64 { return s.seq }

// Commit finalizes the draft into the committed query and starts a new fetch
// cycle: prior results and errors are discarded, the selection is cleared,
// and the state moves to Loading. An unchanged or empty draft still commits;
// deduplication is deliberately not performed.
func (s *State) Commit() Request {
	unchanged := s.committed && s.draft == s.query
	s.query = s.draft
	s.committed = true
	s.seq++
	s.status = StatusLoading
	s.hits = nil
	s.errMsg = ""
	s.selected = ""
	events.Search.Commit(s.query, s.seq, unchanged)
	return Request{Seq: s.seq, Query: s.query}
}

// Resolve applies a fetch outcome. It reports false, leaving the state
// untouched, when the request no longer matches the latest commit.
func (s *State) Resolve(req Request, hits []edamam.Hit, err error) bool {
	if req.Seq != s.seq {
		events.Search.Stale(req.Query, req.Seq, s.seq)
		return false
	}
	if err != nil {
		s.status = StatusFailure
		s.hits = nil
		s.errMsg = failureMessage(err)
		events.Search.Error(err)
		return true
	}
	s.status = StatusSuccess
	s.hits = hits
	s.errMsg = ""
	return true
}

// HitID returns the identity used for selection. Hits without provider
// identifiers fall back to their position in the result list, which is
// stable because results are never reordered between fetch and display.
func HitID(hit edamam.Hit, index int) string {
	if id := hit.Recipe.ID(); id != "" {
		return id
	}
	return fmt.Sprintf("hit:%d", index)
}

// Select records the recipe with the given ID as selected for detail view.
// It reports false when no such recipe is in the current results.
func (s *State) Select(id string) bool {
	if s.status != StatusSuccess {
		return false
	}
	for i, hit := range s.hits {
		if HitID(hit, i) == id {
			s.selected = id
			return true
		}
	}
	return false
}

// ClearSelection closes the detail view without touching the fetch status.
func (s *State) ClearSelection() { s.selected = "" }

// SelectedID returns the ID of the selected recipe, empty when none.
func (s *State) SelectedID() string { return s.selected }

// Selected returns the selected recipe record from the fetched results.
func (s *State) Selected() (edamam.Recipe, bool) {
	if s.selected == "" {
		return edamam.Recipe{}, false
	}
	for i, hit := range s.hits {
		if HitID(hit, i) == s.selected {
			return hit.Recipe, true
		}
	}
	return edamam.Recipe{}, false
}

// failureMessage converts a fetch error into the message shown to the user.
func failureMessage(err error) string {
	var statusErr *edamam.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("The recipe service answered with %s. Submit the search again to retry.", statusErr.Status)
	}
	var reqErr *edamam.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("Could not reach the recipe service: %v. Submit the search again to retry.", reqErr.Err)
	}
	return err.Error()
}
