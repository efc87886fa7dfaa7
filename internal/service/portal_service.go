package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/logger"
	"github.com/temitayo1239/student-information-portal-main/internal/model"
	"github.com/temitayo1239/student-information-portal-main/internal/portal"
	"github.com/temitayo1239/student-information-portal-main/internal/repository"
	"github.com/temitayo1239/student-information-portal-main/internal/store"
)

// ErrSessionNotFound is returned when a token's session state is gone,
// either because the student logged out or because it expired.
var ErrSessionNotFound = errors.New("session not found or expired")

// PortalService runs the portal workflows for logged-in students. Every
// operation on a session is serialized: the state is loaded, changed and
// saved under that session's lock.
type PortalService struct {
	catalog repository.Catalog
	store   store.Store
	auth    *AuthService
	log     zerolog.Logger
	now     func() time.Time
	locks   sessionLocks
}

// NewPortalService creates a new PortalService.
func NewPortalService(
	catalog repository.Catalog,
	st store.Store,
	auth *AuthService,
	log zerolog.Logger,
) *PortalService {
	return &PortalService{
		catalog: catalog,
		store:   st,
		auth:    auth,
		log:     logger.Component(log, "portal_service"),
		now:     time.Now,
		locks:   sessionLocks{entries: make(map[string]*lockEntry)},
	}
}

// Login starts a new session. Any non-empty matric number and password are
// accepted; the returned profile is the catalog's student.
func (s *PortalService) Login(ctx context.Context, matricNumber, password string) (string, model.Profile, error) {
	state := portal.NewState(s.catalog)
	if !state.Session().Login(matricNumber, password) {
		return "", model.Profile{}, ErrInvalidCredentials
	}
	profile, _ := state.Session().CurrentProfile().Get()

	token, claims, err := s.auth.GenerateToken(profile.MatricNumber)
	if err != nil {
		return "", model.Profile{}, err
	}
	if err := s.store.Create(ctx, claims.SessionID(), state.Snapshot(), s.auth.Expiry()); err != nil {
		return "", model.Profile{}, fmt.Errorf("store session: %w", err)
	}

	s.log.Info().
		Str("session_id", claims.SessionID()).
		Str("matric_number", profile.MatricNumber).
		Msg("Student logged in")
	return token, profile, nil
}

// Logout ends the session and discards its state. Logging out a session
// that is already gone is not an error.
func (s *PortalService) Logout(ctx context.Context, sessionID string) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, sessionID)
	switch {
	case err == nil:
		profile, _ := state.Session().CurrentProfile().Get()
		state.Logout()
		s.log.Info().
			Str("session_id", sessionID).
			Str("matric_number", profile.MatricNumber).
			Msg("Student logged out")
	case errors.Is(err, ErrSessionNotFound):
		// Already gone or unusable; still clear whatever is stored.
	default:
		return err
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ValidateToken parses a bearer token.
func (s *PortalService) ValidateToken(token string) (*Claims, error) {
	return s.auth.ValidateToken(token)
}

// SessionExists reports whether the session still has state.
func (s *PortalService) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.store.Load(ctx, sessionID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("load session: %w", err)
	}
}

// WithState runs fn against the session's state and saves the result only
// if fn returns nil. Calls for the same session never overlap.
func (s *PortalService) WithState(ctx context.Context, sessionID string, fn func(*portal.State) error) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}

	err = s.store.Update(ctx, sessionID, state.Snapshot())
	if errors.Is(err, store.ErrNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ViewState runs fn against the session's state without saving it.
func (s *PortalService) ViewState(ctx context.Context, sessionID string, fn func(*portal.State) error) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	return fn(state)
}

func (s *PortalService) load(ctx context.Context, sessionID string) (*portal.State, error) {
	snap, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	state, err := portal.RestoreState(s.catalog, snap)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("Discarding unusable session state")
		return nil, ErrSessionNotFound
	}
	if !state.Session().IsAuthenticated() {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

// Profile returns the logged-in student's profile.
func (s *PortalService) Profile(ctx context.Context, sessionID string) (model.Profile, error) {
	var profile model.Profile
	err := s.ViewState(ctx, sessionID, func(st *portal.State) error {
		profile, _ = st.Session().CurrentProfile().Get()
		return nil
	})
	return profile, err
}

// Courses returns the catalog with each course's registration state.
func (s *PortalService) Courses(ctx context.Context, sessionID string) ([]model.CourseView, error) {
	var courses []model.CourseView
	err := s.ViewState(ctx, sessionID, func(st *portal.State) error {
		reg, err := st.Registration()
		if err != nil {
			return err
		}
		courses = reg.Catalog()
		return nil
	})
	return courses, err
}

// Registration returns the registered courses, the cart and the credit totals.
func (s *PortalService) Registration(ctx context.Context, sessionID string) (model.RegistrationSummary, error) {
	var summary model.RegistrationSummary
	err := s.ViewState(ctx, sessionID, func(st *portal.State) error {
		reg, err := st.Registration()
		if err != nil {
			return err
		}
		summary = reg.Summary()
		return nil
	})
	return summary, err
}

// AddToCart stages a course for registration.
func (s *PortalService) AddToCart(ctx context.Context, sessionID, code string) (model.RegistrationSummary, error) {
	return s.updateRegistration(ctx, sessionID, func(r *portal.Registration) error {
		return r.AddToCart(code)
	})
}

// RemoveFromCart unstages a course. Removing a course that is not in the
// cart changes nothing.
func (s *PortalService) RemoveFromCart(ctx context.Context, sessionID, code string) (model.RegistrationSummary, error) {
	return s.updateRegistration(ctx, sessionID, func(r *portal.Registration) error {
		r.RemoveFromCart(code)
		return nil
	})
}

// DropCourse removes a registered course.
func (s *PortalService) DropCourse(ctx context.Context, sessionID, code string) (model.RegistrationSummary, error) {
	return s.updateRegistration(ctx, sessionID, func(r *portal.Registration) error {
		r.DropCourse(code)
		return nil
	})
}

// CommitRegistration registers everything in the cart.
func (s *PortalService) CommitRegistration(ctx context.Context, sessionID string) (model.RegistrationSummary, error) {
	summary, err := s.updateRegistration(ctx, sessionID, func(r *portal.Registration) error {
		r.CommitRegistration()
		return nil
	})
	if err == nil {
		s.log.Info().
			Str("session_id", sessionID).
			Int("registered_credits", summary.RegisteredCredits).
			Msg("Registration committed")
	}
	return summary, err
}

func (s *PortalService) updateRegistration(ctx context.Context, sessionID string, fn func(*portal.Registration) error) (model.RegistrationSummary, error) {
	var summary model.RegistrationSummary
	err := s.WithState(ctx, sessionID, func(st *portal.State) error {
		reg, err := st.Registration()
		if err != nil {
			return err
		}
		if err := fn(reg); err != nil {
			return err
		}
		summary = reg.Summary()
		return nil
	})
	return summary, err
}

// Notifications returns the inbox under filter, newest first.
func (s *PortalService) Notifications(ctx context.Context, sessionID string, filter portal.Filter) (model.InboxView, error) {
	var view model.InboxView
	err := s.ViewState(ctx, sessionID, func(st *portal.State) error {
		in, err := st.Inbox()
		if err != nil {
			return err
		}
		view = inboxView(in, filter)
		return nil
	})
	return view, err
}

// MarkRead marks one notification as read and returns the unread inbox.
// The returned flag is false if it was already read.
func (s *PortalService) MarkRead(ctx context.Context, sessionID string, id int) (model.InboxView, bool, error) {
	var (
		view    model.InboxView
		changed bool
	)
	err := s.WithState(ctx, sessionID, func(st *portal.State) error {
		in, err := st.Inbox()
		if err != nil {
			return err
		}
		if changed, err = in.MarkRead(id); err != nil {
			return err
		}
		view = inboxView(in, portal.FilterUnread)
		return nil
	})
	return view, changed, err
}

// MarkAllRead marks every notification as read and returns how many changed.
func (s *PortalService) MarkAllRead(ctx context.Context, sessionID string) (model.InboxView, int, error) {
	var (
		view    model.InboxView
		changed int
	)
	err := s.WithState(ctx, sessionID, func(st *portal.State) error {
		in, err := st.Inbox()
		if err != nil {
			return err
		}
		changed = in.MarkAllRead()
		view = inboxView(in, portal.FilterUnread)
		return nil
	})
	return view, changed, err
}

func inboxView(in *portal.Inbox, filter portal.Filter) model.InboxView {
	return model.InboxView{
		Filter:        filter.String(),
		Notifications: in.Collect(filter),
		UnreadCount:   in.UnreadCount(),
	}
}

// Results returns every semester result, oldest first.
func (s *PortalService) Results() []model.SemesterResult {
	return s.catalog.Results()
}

// Timetable returns the weekly timetable, or a single day of it when day is
// not empty.
func (s *PortalService) Timetable(day string) []model.TimetableSlot {
	slots := s.catalog.Timetable()
	if day == "" {
		return slots
	}
	out := make([]model.TimetableSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Day == day {
			out = append(out, slot)
		}
	}
	return out
}

// Fees returns the fees statement for the current session.
func (s *PortalService) Fees() model.FeesStatement {
	return s.catalog.Fees()
}

// Dashboard summarizes the student's current position.
func (s *PortalService) Dashboard(ctx context.Context, sessionID string) (model.Dashboard, error) {
	var d model.Dashboard
	err := s.ViewState(ctx, sessionID, func(st *portal.State) error {
		reg, err := st.Registration()
		if err != nil {
			return err
		}
		in, err := st.Inbox()
		if err != nil {
			return err
		}
		d.Student, _ = st.Session().CurrentProfile().Get()
		d.CGPA = d.Student.CGPA
		d.RegisteredCourses = len(reg.Registered())
		d.RegisteredCredits = reg.RegisteredCredits()
		d.UnreadCount = in.UnreadCount()
		return nil
	})
	if err != nil {
		return model.Dashboard{}, err
	}
	d.FeeBalance = s.catalog.Fees().Balance
	d.TodayClasses = s.Timetable(s.now().Weekday().String())
	return d, nil
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// sessionLocks hands out one mutex per session id. Entries are dropped once
// no caller holds or waits on them.
type sessionLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		e = &lockEntry{}
		l.entries[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, id)
		}
		l.mu.Unlock()
	}
}

func (l *sessionLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
