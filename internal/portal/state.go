package portal

import (
	"errors"
	"fmt"

	"github.com/temitayo1239/student-information-portal-main/internal/model"
)

// ErrNotAuthenticated gates the academic workflows behind a login.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrCorruptSnapshot is returned when a snapshot breaks a workflow invariant.
var ErrCorruptSnapshot = errors.New("corrupt session snapshot")

// Source is everything a State needs from the fixture data.
type Source interface {
	ProfileSource
	Courses() []model.Course
	RegisteredCodes() []string
	Notifications() []model.Notification
}

// State is the complete academic state of one login: the session plus the
// registration and notification workflows. The two workflows share no data.
//
// A State is not safe for concurrent use.
type State struct {
	source       Source
	session      *Session
	registration *Registration
	inbox        *Inbox
}

// NewState returns a logged-out state seeded from source.
func NewState(source Source) *State {
	s := &State{source: source, session: NewSession(source)}
	s.reset()
	return s
}

func (s *State) reset() {
	s.registration = NewRegistration(s.source.Courses(), s.source.RegisteredCodes())
	s.inbox = NewInbox(s.source.Notifications())
}

// Session exposes the session manager.
func (s *State) Session() *Session {
	return s.session
}

// Logout ends the session and discards everything done during it.
func (s *State) Logout() {
	s.session.Logout()
	s.reset()
}

// Registration returns the registration workflow of a logged-in student.
func (s *State) Registration() (*Registration, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.registration, nil
}

// Inbox returns the notification workflow of a logged-in student.
func (s *State) Inbox() (*Inbox, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.inbox, nil
}

// Snapshot is the serializable form of a State. Only what differs from the
// fixture source is meaningful: the profile, both course sets and the ids of
// read notifications.
type Snapshot struct {
	Profile    Option[model.Profile] `json:"profile"`
	Registered []string              `json:"registered"`
	Cart       []string              `json:"cart"`
	Read       []int                 `json:"read"`
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Profile:    s.session.CurrentProfile(),
		Registered: s.registration.codesIn(s.registration.registered),
		Cart:       s.registration.codesIn(s.registration.cart),
		Read:       s.inbox.readIDs(),
	}
}

// RestoreState rebuilds a State from a snapshot, checking it against the
// catalog. Read ids that no longer exist are ignored.
func RestoreState(source Source, snap Snapshot) (*State, error) {
	s := &State{source: source, session: NewSession(source)}
	s.session.profile = snap.Profile
	s.inbox = NewInbox(source.Notifications())

	reg := NewRegistration(source.Courses(), nil)
	for _, code := range snap.Registered {
		if _, ok := reg.byCode[code]; !ok {
			return nil, fmt.Errorf("%w: registered course %q", ErrCorruptSnapshot, code)
		}
		reg.registered[code] = struct{}{}
	}
	for _, code := range snap.Cart {
		if _, ok := reg.byCode[code]; !ok {
			return nil, fmt.Errorf("%w: cart course %q", ErrCorruptSnapshot, code)
		}
		if reg.registered.has(code) {
			return nil, fmt.Errorf("%w: %q both registered and in cart", ErrCorruptSnapshot, code)
		}
		reg.cart[code] = struct{}{}
	}
	if total := reg.TotalCredits(); total > MaxCredits {
		return nil, fmt.Errorf("%w: %d credits over the %d limit", ErrCorruptSnapshot, total, MaxCredits)
	}
	s.registration = reg

	for _, id := range snap.Read {
		_, _ = s.inbox.MarkRead(id)
	}
	return s, nil
}
