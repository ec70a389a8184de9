package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forkfind/forkfind/internal/edamam"
	"github.com/forkfind/forkfind/internal/logging"
	"github.com/forkfind/forkfind/internal/search"
)

// searchResultMsg carries the outcome of one fetch back onto the event loop.
// The request token lets the handler discard responses for superseded
// commits.
type searchResultMsg struct {
	req  search.Request
	hits []edamam.Hit
	err  error
}

func searchCmd(client Searcher, req search.Request) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Search(context.Background(), req.Query)
		if err != nil {
			logging.Error(err)
			return searchResultMsg{req: req, err: err}
		}
		return searchResultMsg{req: req, hits: resp.Hits}
	}
}

func resultSummary(query string, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("No recipes for %q", query)
	case 1:
		return fmt.Sprintf("1 recipe for %q", query)
	default:
		return fmt.Sprintf("%d recipes for %q", count, query)
	}
}
