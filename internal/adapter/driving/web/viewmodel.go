package web

import (
	"net/url"

	vm "github.com/ericfisherdev/seedpass/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/seedpass/internal/domain/model"
)

const (
	arrowUp   = "▲"
	arrowDown = "▼"
)

// toPasswordRowViewModel converts a domain PasswordRecord to a table row.
func toPasswordRowViewModel(rec model.PasswordRecord) vm.PasswordRowViewModel {
	return vm.PasswordRowViewModel{
		SeedText:  rec.SeedText,
		Password:  rec.Password,
		CreatedAt: rec.FormattedCreatedAt(),
	}
}

// toSavedPageViewModel builds the saved passwords page. Each column heading
// links to the same listing sorted by that column with the direction flipped,
// keeping the current search term.
func toSavedPageViewModel(q model.ListQuery, records []model.PasswordRecord) vm.SavedPageViewModel {
	rows := make([]vm.PasswordRowViewModel, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toPasswordRowViewModel(rec))
	}

	return vm.SavedPageViewModel{
		Search:        q.Search,
		Sort:          string(q.OrderBy),
		Order:         q.Order(),
		SeedHeader:    sortHeader("Seed Text", model.SortBySeedText, q),
		CreatedHeader: sortHeader("Date/Time", model.SortByCreatedAt, q),
		Rows:          rows,
	}
}

func sortHeader(label string, column model.SortColumn, q model.ListQuery) vm.SortHeaderViewModel {
	next := model.ListQuery{OrderBy: column, Ascending: !q.Ascending, Search: q.Search}

	h := vm.SortHeaderViewModel{
		Label:  label,
		Href:   savedPath(next),
		Active: q.OrderBy == column,
	}
	if h.Active {
		h.Arrow = arrowDown
		if q.Ascending {
			h.Arrow = arrowUp
		}
	}
	return h
}

// savedPath returns the saved passwords URL for q.
func savedPath(q model.ListQuery) string {
	v := url.Values{}
	v.Set("sort", string(q.OrderBy))
	v.Set("order", q.Order())
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	return "/saved?" + v.Encode()
}
