package portal

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/temitayo1239/student-information-portal-main/internal/model"
)

// ErrNotificationNotFound is returned by MarkRead for an unknown id.
var ErrNotificationNotFound = errors.New("notification not found")

// ErrInvalidFilter is returned by ParseFilter.
var ErrInvalidFilter = errors.New("invalid notification filter")

type filterKind uint8

const (
	filterAll filterKind = iota
	filterUnread
	filterCategory
)

// Filter selects notifications: all of them, the unread ones, or a single
// category.
type Filter struct {
	kind     filterKind
	category model.Category
}

var (
	FilterAll    = Filter{kind: filterAll}
	FilterUnread = Filter{kind: filterUnread}
)

// FilterCategory selects notifications of one category.
func FilterCategory(c model.Category) Filter {
	return Filter{kind: filterCategory, category: c}
}

// ParseFilter reads "all", "unread" or a category tag. An empty string
// means all.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "all":
		return FilterAll, nil
	case "unread":
		return FilterUnread, nil
	}
	if c := model.Category(s); c.Valid() {
		return FilterCategory(c), nil
	}
	return Filter{}, fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

func (f Filter) String() string {
	switch f.kind {
	case filterUnread:
		return "unread"
	case filterCategory:
		return string(f.category)
	default:
		return "all"
	}
}

// Match reports whether n passes the filter.
func (f Filter) Match(n model.Notification) bool {
	switch f.kind {
	case filterUnread:
		return !n.IsRead
	case filterCategory:
		return n.Category == f.category
	default:
		return true
	}
}

// Inbox tracks read state over a fixed list of notifications, newest first.
// Notifications are never added or removed, and a read flag never goes back
// to unread.
type Inbox struct {
	items []model.Notification
}

// NewInbox copies ns, drops duplicate ids and orders the rest newest first.
// Equal timestamps keep their input order.
func NewInbox(ns []model.Notification) *Inbox {
	seen := make(map[int]struct{}, len(ns))
	items := make([]model.Notification, 0, len(ns))
	for _, n := range ns {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		items = append(items, n)
	}
	slices.SortStableFunc(items, func(a, b model.Notification) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return &Inbox{items: items}
}

// MarkRead flags one notification as read and reports whether the flag
// changed. An already-read notification is left alone.
func (in *Inbox) MarkRead(id int) (bool, error) {
	i := in.index(id)
	if i < 0 {
		return false, ErrNotificationNotFound
	}
	if in.items[i].IsRead {
		return false, nil
	}
	in.items[i].IsRead = true
	return true, nil
}

// MarkAllRead flags every notification as read and returns how many changed.
func (in *Inbox) MarkAllRead() int {
	changed := 0
	for i := range in.items {
		if !in.items[i].IsRead {
			in.items[i].IsRead = true
			changed++
		}
	}
	return changed
}

// FilterBy yields matching notifications newest first. The sequence reads
// the inbox lazily and can be ranged over any number of times.
func (in *Inbox) FilterBy(f Filter) iter.Seq[model.Notification] {
	return func(yield func(model.Notification) bool) {
		for _, n := range in.items {
			if f.Match(n) && !yield(n) {
				return
			}
		}
	}
}

// Collect materializes FilterBy. The result is never nil.
func (in *Inbox) Collect(f Filter) []model.Notification {
	out := []model.Notification{}
	for n := range in.FilterBy(f) {
		out = append(out, n)
	}
	return out
}

// UnreadCount counts unread notifications.
func (in *Inbox) UnreadCount() int {
	count := 0
	for range in.FilterBy(FilterUnread) {
		count++
	}
	return count
}

// Get returns a notification by id.
func (in *Inbox) Get(id int) (model.Notification, bool) {
	i := in.index(id)
	if i < 0 {
		return model.Notification{}, false
	}
	return in.items[i], true
}

func (in *Inbox) index(id int) int {
	return slices.IndexFunc(in.items, func(n model.Notification) bool {
		return n.ID == id
	})
}

func (in *Inbox) readIDs() []int {
	ids := []int{}
	for _, n := range in.items {
		if n.IsRead {
			ids = append(ids, n.ID)
		}
	}
	slices.Sort(ids)
	return ids
}
