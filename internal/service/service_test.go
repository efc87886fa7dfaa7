package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temitayo1239/student-information-portal-main/internal/config"
	"github.com/temitayo1239/student-information-portal-main/internal/model"
	"github.com/temitayo1239/student-information-portal-main/internal/portal"
	"github.com/temitayo1239/student-information-portal-main/internal/repository"
	"github.com/temitayo1239/student-information-portal-main/internal/store"
)

func newTestService(t *testing.T) (*PortalService, *store.MemoryStore) {
	t.Helper()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	st := store.NewMemoryStore()
	return NewPortalService(repository.NewFixtureCatalog(), st, NewAuthService(cfg), zerolog.Nop()), st
}

func login(t *testing.T, svc *PortalService) string {
	t.Helper()
	token, _, err := svc.Login(context.Background(), "2023/12914", "password")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	return claims.SessionID()
}

func TestAuthServiceRoundTrip(t *testing.T) {
	auth := NewAuthService(&config.Config{JWTSecret: "s3cret", JWTExpiry: time.Hour})

	token, claims, err := auth.GenerateToken("2023/12914")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, parsed.SessionID())
	assert.Equal(t, "2023/12914", parsed.MatricNumber)
}

func TestAuthServiceRejectsBadTokens(t *testing.T) {
	auth := NewAuthService(&config.Config{JWTSecret: "s3cret", JWTExpiry: time.Hour})
	other := NewAuthService(&config.Config{JWTSecret: "different", JWTExpiry: time.Hour})

	token, _, err := other.GenerateToken("2023/12914")
	require.NoError(t, err)
	_, err = auth.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = auth.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewAuthService(&config.Config{JWTSecret: "s3cret", JWTExpiry: time.Hour})
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err = expired.GenerateToken("2023/12914")
	require.NoError(t, err)
	_, err = auth.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoginCreatesSession(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	token, profile, err := svc.Login(ctx, "2024/00001", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "2024/00001", profile.MatricNumber)
	assert.Equal(t, "Temitayo Job", profile.FullName)
	assert.Equal(t, 1, st.Len())

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "2024/00001", claims.MatricNumber)
	got, err := svc.Profile(ctx, claims.SessionID())
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	svc, st := newTestService(t)

	_, _, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "2023/12914", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, st.Len())
}

func TestLogoutDiscardsState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := login(t, svc)

	_, err := svc.AddToCart(ctx, id, "CSC313")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, id))
	require.NoError(t, svc.Logout(ctx, id))

	_, err = svc.Registration(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	exists, err := svc.SessionExists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)

	// A new login starts from the fixture state again.
	id = login(t, svc)
	summary, err := svc.Registration(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, summary.Cart)
	assert.Equal(t, 18, summary.TotalCredits)
}

func TestLogoutRecordsStudentOnce(t *testing.T) {
	var buf bytes.Buffer
	st := store.NewMemoryStore()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	svc := NewPortalService(repository.NewFixtureCatalog(), st, NewAuthService(cfg), zerolog.New(&buf))
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "2024/00001", "pw")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, svc.Logout(ctx, claims.SessionID()))
	require.NoError(t, svc.Logout(ctx, claims.SessionID()))

	assert.Equal(t, 1, strings.Count(buf.String(), "Student logged out"))
	assert.Contains(t, buf.String(), `"matric_number":"2024/00001"`)
	assert.Zero(t, st.Len())
}

func TestLogoutClearsUnusableSnapshot(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, st.Create(ctx, "broken", portal.Snapshot{
		Profile:    portal.Some(model.Profile{MatricNumber: "2023/12914"}),
		Registered: []string{"NOPE999"},
	}, time.Hour))

	require.NoError(t, svc.Logout(ctx, "broken"))
	assert.Zero(t, st.Len())
}

func TestRegistrationFlowPersists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := login(t, svc)

	for _, code := range []string{"CSC313", "CSC315", "CSC317"} {
		_, err := svc.AddToCart(ctx, id, code)
		require.NoError(t, err)
	}

	summary, err := svc.AddToCart(ctx, id, "GST301")
	assert.ErrorIs(t, err, portal.ErrCreditLimitExceeded)
	assert.Zero(t, summary.TotalCredits)

	summary, err = svc.Registration(ctx, id)
	require.NoError(t, err)
	assert.Len(t, summary.Cart, 3)
	assert.Equal(t, 24, summary.TotalCredits)

	summary, err = svc.CommitRegistration(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, summary.Cart)
	assert.Equal(t, 24, summary.RegisteredCredits)

	summary, err = svc.DropCourse(ctx, id, "CSC301")
	require.NoError(t, err)
	assert.Equal(t, 21, summary.RegisteredCredits)

	_, err = svc.AddToCart(ctx, id, "CSC313")
	assert.ErrorIs(t, err, portal.ErrAlreadyRegistered)
	_, err = svc.AddToCart(ctx, id, "XYZ999")
	assert.ErrorIs(t, err, portal.ErrUnknownCourse)
}

func TestRemoveFromCart(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := login(t, svc)

	_, err := svc.AddToCart(ctx, id, "GST301")
	require.NoError(t, err)
	summary, err := svc.RemoveFromCart(ctx, id, "GST301")
	require.NoError(t, err)
	assert.Empty(t, summary.Cart)

	summary, err = svc.RemoveFromCart(ctx, id, "GST301")
	require.NoError(t, err)
	assert.Equal(t, 18, summary.TotalCredits)
}

func TestCoursesReflectState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := login(t, svc)

	_, err := svc.AddToCart(ctx, id, "CSC317")
	require.NoError(t, err)

	courses, err := svc.Courses(ctx, id)
	require.NoError(t, err)
	states := map[string]string{}
	for _, c := range courses {
		states[c.Code] = string(c.State)
	}
	assert.Equal(t, "registered", states["CSC301"])
	assert.Equal(t, "in_cart", states["CSC317"])
	assert.Equal(t, "available", states["GST301"])
}

func TestNotificationFlow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := login(t, svc)

	view, err := svc.Notifications(ctx, id, portal.FilterUnread)
	require.NoError(t, err)
	assert.Equal(t, 3, view.UnreadCount)
	assert.Len(t, view.Notifications, 3)

	view, changed, err := svc.MarkRead(ctx, id, 1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2, view.UnreadCount)

	_, changed, err = svc.MarkRead(ctx, id, 1)
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = svc.MarkRead(ctx, id, 999)
	assert.ErrorIs(t, err, portal.ErrNotificationNotFound)

	view, n, err := svc.MarkAllRead(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Zero(t, view.UnreadCount)
	assert.Empty(t, view.Notifications)

	view, err = svc.Notifications(ctx, id, portal.FilterAll)
	require.NoError(t, err)
	assert.Len(t, view.Notifications, 7)
	assert.Equal(t, "all", view.Filter)
}

func TestFailedOperationDoesNotSave(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := login(t, svc)

	boom := errors.New("boom")
	err := svc.WithState(ctx, id, func(st *portal.State) error {
		reg, err := st.Registration()
		require.NoError(t, err)
		require.NoError(t, reg.AddToCart("GST301"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	summary, err := svc.Registration(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, summary.Cart)
}

func TestUnknownSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	err := svc.WithState(ctx, "missing", func(*portal.State) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Dashboard(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConcurrentAddsRespectCreditLimit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := login(t, svc)

	codes := []string{"CSC313", "CSC315", "CSC317", "GST301"}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		rejected int
	)
	for _, code := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.AddToCart(ctx, id, code); errors.Is(err, portal.ErrCreditLimitExceeded) {
				mu.Lock()
				rejected++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	summary, err := svc.Registration(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, rejected)
	assert.Len(t, summary.Cart, 3)
	assert.Equal(t, 24, summary.TotalCredits)
	assert.Zero(t, svc.locks.len())
}

func TestDashboard(t *testing.T) {
	svc, _ := newTestService(t)
	svc.now = func() time.Time { return time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC) } // a Monday
	ctx := context.Background()
	id := login(t, svc)

	_, _, err := svc.MarkRead(ctx, id, 2)
	require.NoError(t, err)

	d, err := svc.Dashboard(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2023/12914", d.Student.MatricNumber)
	assert.Equal(t, 3.72, d.CGPA)
	assert.Equal(t, 6, d.RegisteredCourses)
	assert.Equal(t, 18, d.RegisteredCredits)
	assert.Equal(t, 2, d.UnreadCount)
	assert.Equal(t, int64(75000), d.FeeBalance)
	require.Len(t, d.TodayClasses, 3)
	for _, slot := range d.TodayClasses {
		assert.Equal(t, "Monday", slot.Day)
	}
}

func TestTimetableFilter(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Len(t, svc.Timetable("Tuesday"), 2)
	assert.Empty(t, svc.Timetable("Saturday"))
	assert.Equal(t, len(repository.NewFixtureCatalog().Timetable()), len(svc.Timetable("")))
}
