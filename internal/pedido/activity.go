package pedido

import "log/slog"

// Tracked is anything carrying an order status and the backend's
// new-activity flag. Order and OrderView both satisfy it.
type Tracked interface {
	CurrentStatus() Status
	HasNewActivity() bool
}

// HasUnseenActivity reports whether the order should pulse: the flag only
// counts while the order sits in one of the conversation statuses.
func HasUnseenActivity(t Tracked) bool {
	return t.CurrentStatus().Conversation() && t.HasNewActivity()
}

// Counts maps every canonical status to a number of orders.
type Counts map[Status]int

func newCounts() Counts {
	c := make(Counts, len(statuses))
	for _, s := range statuses {
		c[s] = 0
	}
	return c
}

// CountByStatus counts orders per canonical status. Orders with a status
// outside the canonical set are skipped here and reported by Summarize.
func CountByStatus[T Tracked](items []T) Counts {
	c := newCounts()
	for _, it := range items {
		if s := it.CurrentStatus(); s.Valid() {
			c[s]++
		}
	}
	return c
}

// CountUnseenByStatus counts orders in status with unseen activity.
func CountUnseenByStatus[T Tracked](items []T, status Status) int {
	n := 0
	for _, it := range items {
		if it.CurrentStatus() == status && HasUnseenActivity(it) {
			n++
		}
	}
	return n
}

// Summary feeds the dashboard and list badges.
type Summary struct {
	Counts  Counts `json:"counts"`
	Unseen  Counts `json:"unseen"`
	Unknown int    `json:"unknown"`
	Total   int    `json:"total"`
}

// UnseenTotal is the number shown on the global notification badge.
func (s Summary) UnseenTotal() int {
	n := 0
	for _, v := range s.Unseen {
		n += v
	}
	return n
}

func Summarize[T Tracked](items []T) Summary {
	sum := Summary{Counts: newCounts(), Unseen: newCounts(), Total: len(items)}
	for _, it := range items {
		s := it.CurrentStatus()
		if !s.Valid() {
			sum.Unknown++
			slog.Warn("order with unknown status", "status", string(s))
			continue
		}
		sum.Counts[s]++
		if HasUnseenActivity(it) {
			sum.Unseen[s]++
		}
	}
	return sum
}
