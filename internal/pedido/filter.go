package pedido

import (
	"net/url"
	"strings"
)

// AllStatuses is the query value the list page sends for "no status filter".
const AllStatuses = "todos"

// Filter is the list page state: an optional exact status and a free-text
// search term.
type Filter struct {
	Status *Status
	Search string
}

// ToggleStatus implements click-to-toggle on the status badges: picking the
// active status again clears it.
func (f Filter) ToggleStatus(s Status) Filter {
	if f.Status != nil && *f.Status == s {
		f.Status = nil
		return f
	}
	f.Status = &s
	return f
}

// StatusParam is the value forwarded to the backend list call.
func (f Filter) StatusParam() string {
	if f.Status == nil {
		return ""
	}
	return string(*f.Status)
}

// ParseFilter reads ?status= and ?q= from a query string. "todos" and an
// empty status both mean unset.
func ParseFilter(q url.Values) (Filter, error) {
	f := Filter{Search: q.Get("q")}
	raw := strings.TrimSpace(q.Get("status"))
	if raw == "" || raw == AllStatuses {
		return f, nil
	}
	s, err := ParseStatus(raw)
	if err != nil {
		return Filter{}, err
	}
	f.Status = &s
	return f, nil
}

// ApplyFilters keeps the views matching f. With no status set cancelled
// orders are hidden; search only looks at the store name for department
// and admin roles.
func ApplyFilters(views []OrderView, f Filter, role Role) []OrderView {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]OrderView, 0, len(views))
	for _, v := range views {
		if !matchStatus(v.Status, f.Status) {
			continue
		}
		if term != "" && !matchSearch(v, term, role) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchStatus(s Status, want *Status) bool {
	if want == nil {
		return s != StatusCancelled
	}
	return s == *want
}

func matchSearch(v OrderView, term string, role Role) bool {
	fields := []string{v.Plate, v.Make, v.Model, v.GlassType}
	if role.Internal() && v.Store != nil {
		fields = append(fields, v.Store.Name)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
