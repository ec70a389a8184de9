package events

import "github.com/forkfind/forkfind/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) GridCursor(cursor int) {
	logging.Trace("grid.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Select(recipeID, label string) {
	logging.Trace("grid.select", map[string]interface{}{
		"recipe": recipeID,
		"label":  label,
	})
}

func (UITracer) CloseDetail(recipeID string) {
	logging.Trace("detail.close", map[string]interface{}{"recipe": recipeID})
}

func (UITracer) DetailScroll(recipeID string, offset int) {
	logging.Trace("detail.scroll", map[string]interface{}{
		"recipe": recipeID,
		"offset": offset,
	})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}
