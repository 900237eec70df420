package pedido

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasUnseenActivity_OnlyConversationStatuses(t *testing.T) {
	for _, s := range Statuses() {
		for _, flag := range []bool{true, false} {
			got := HasUnseenActivity(Order{Status: s, NewActivity: flag})
			want := flag && (s == StatusResponded || s == StatusAwaitingReply)
			assert.Equal(t, want, got, "%s flag=%v", s, flag)
		}
	}
	assert.False(t, HasUnseenActivity(Order{Status: "mystery", NewActivity: true}))
}

func TestHasUnseenActivity_OnViews(t *testing.T) {
	v := Project(Order{Status: StatusResponded, NewActivity: true}, RoleStore)
	assert.True(t, HasUnseenActivity(v))

	v = Project(Order{Status: StatusFound, NewActivity: true}, RoleDepartment)
	assert.False(t, v.Unseen)
	assert.False(t, HasUnseenActivity(v))
}

func activityFixture() []Order {
	return []Order{
		{ID: "1", Status: StatusPending, NewActivity: true},
		{ID: "2", Status: StatusResponded, NewActivity: true},
		{ID: "3", Status: StatusResponded, NewActivity: false},
		{ID: "4", Status: StatusAwaitingReply, NewActivity: true},
		{ID: "5", Status: StatusCancelled},
		{ID: "6", Status: Status("arquivado"), NewActivity: true},
	}
}

func TestCountByStatus(t *testing.T) {
	c := CountByStatus(activityFixture())
	assert.Len(t, c, 7)
	assert.Equal(t, 1, c[StatusPending])
	assert.Equal(t, 2, c[StatusResponded])
	assert.Equal(t, 1, c[StatusAwaitingReply])
	assert.Equal(t, 1, c[StatusCancelled])
	assert.Equal(t, 0, c[StatusFound])
	assert.NotContains(t, c, Status("arquivado"))
}

func TestCountUnseenByStatus(t *testing.T) {
	orders := activityFixture()
	assert.Equal(t, 1, CountUnseenByStatus(orders, StatusResponded))
	assert.Equal(t, 1, CountUnseenByStatus(orders, StatusAwaitingReply))
	assert.Equal(t, 0, CountUnseenByStatus(orders, StatusPending))
}

func TestSummarize_UnknownNotFoldedIntoPending(t *testing.T) {
	sum := Summarize(ProjectAll(activityFixture(), RoleDepartment))
	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 1, sum.Unknown)
	assert.Equal(t, 1, sum.Counts[StatusPending])
	assert.Equal(t, 2, sum.UnseenTotal())

	n := 0
	for _, v := range sum.Counts {
		n += v
	}
	assert.Equal(t, sum.Total, n+sum.Unknown)
}
