package portal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temitayo1239/student-information-portal-main/internal/fixture"
	"github.com/temitayo1239/student-information-portal-main/internal/model"
)

func ids(ns []model.Notification) []int {
	out := make([]int, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.ID)
	}
	return out
}

func threeUnread() *Inbox {
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return NewInbox([]model.Notification{
		{ID: 1, Timestamp: base.Add(3 * time.Hour), Category: model.CategoryExam},
		{ID: 2, Timestamp: base.Add(2 * time.Hour), Category: model.CategoryAcademic},
		{ID: 3, Timestamp: base.Add(1 * time.Hour), Category: model.CategoryFinance},
	})
}

func TestMarkReadFiltersUnread(t *testing.T) {
	in := threeUnread()

	changed, err := in.MarkRead(2)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{1, 3}, ids(in.Collect(FilterUnread)))
}

func TestMarkReadAlreadyReadAndUnknown(t *testing.T) {
	in := threeUnread()
	_, err := in.MarkRead(1)
	require.NoError(t, err)

	changed, err := in.MarkRead(1)
	assert.NoError(t, err)
	assert.False(t, changed)

	changed, err = in.MarkRead(42)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.False(t, changed)
}

func TestMarkAllRead(t *testing.T) {
	in := NewInbox(fixture.Notifications())
	require.Equal(t, 3, in.UnreadCount())

	assert.Equal(t, 3, in.MarkAllRead())
	assert.Empty(t, in.Collect(FilterUnread))

	changed, err := in.MarkRead(1)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, in.Collect(FilterUnread))
	assert.Equal(t, 0, in.MarkAllRead())
}

func TestFilterByCategory(t *testing.T) {
	in := NewInbox(fixture.Notifications())

	assert.Equal(t, []int{2, 7}, ids(in.Collect(FilterCategory(model.CategoryAcademic))))
	assert.Equal(t, []int{1}, ids(in.Collect(FilterCategory(model.CategoryExam))))
	assert.Len(t, in.Collect(FilterAll), 7)
}

func TestFilterByIsNewestFirst(t *testing.T) {
	ns := fixture.Notifications()
	ns[0], ns[6] = ns[6], ns[0]
	in := NewInbox(ns)

	got := in.Collect(FilterAll)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Timestamp.After(got[i-1].Timestamp))
	}
}

func TestFilterByIsRestartableAndLazy(t *testing.T) {
	in := threeUnread()
	seq := in.FilterBy(FilterUnread)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 3, first)
	assert.Equal(t, first, second)

	// The sequence reads the inbox at iteration time.
	_, _ = in.MarkRead(1)
	var after []int
	for n := range seq {
		after = append(after, n.ID)
	}
	assert.Equal(t, []int{2, 3}, after)

	// Early break stops iteration.
	seen := 0
	for range in.FilterBy(FilterAll) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestFilterByDoesNotMutate(t *testing.T) {
	in := threeUnread()
	for n := range in.FilterBy(FilterAll) {
		n.IsRead = true
		_ = n
	}
	assert.Equal(t, 3, in.UnreadCount())
}

func TestNewInboxDropsDuplicateIDs(t *testing.T) {
	in := NewInbox([]model.Notification{{ID: 1, Title: "a"}, {ID: 1, Title: "b"}})
	got := in.Collect(FilterAll)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"unread", FilterUnread, false},
		{"finance", FilterCategory(model.CategoryFinance), false},
		{"events", Filter{}, true},
		{"UNREAD", Filter{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "deadline", FilterCategory(model.CategoryDeadline).String())
}
