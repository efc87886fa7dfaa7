package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temitayo1239/student-information-portal-main/internal/fixture"
	"github.com/temitayo1239/student-information-portal-main/internal/model"
)

func newRegistration() *Registration {
	return NewRegistration(fixture.Courses(), fixture.RegisteredCodes())
}

func codes(cs []model.Course) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Code)
	}
	return out
}

func TestRegistrationStartsAtEighteenCredits(t *testing.T) {
	r := newRegistration()
	assert.Equal(t, 18, r.TotalCredits())
	assert.Equal(t, 18, r.RegisteredCredits())
	assert.Empty(t, r.Cart())
}

func TestAddToCartWithinLimit(t *testing.T) {
	r := newRegistration()

	require.NoError(t, r.AddToCart("CSC313"))
	assert.Equal(t, []string{"CSC313"}, codes(r.Cart()))
	assert.Equal(t, 20, r.TotalCredits())
	assert.Equal(t, 18, r.RegisteredCredits())
}

func TestAddToCartRejectsOverLimit(t *testing.T) {
	r := newRegistration()
	require.NoError(t, r.AddToCart("CSC313"))
	require.NoError(t, r.AddToCart("CSC315"))
	require.NoError(t, r.AddToCart("CSC317"))
	require.Equal(t, 24, r.TotalCredits())

	before := r.Summary()
	err := r.AddToCart("GST301")
	assert.ErrorIs(t, err, ErrCreditLimitExceeded)
	assert.Equal(t, before, r.Summary())
	assert.Equal(t, 24, r.TotalCredits())
}

func TestAddToCartAlreadyPresent(t *testing.T) {
	r := newRegistration()

	assert.ErrorIs(t, r.AddToCart("CSC301"), ErrAlreadyRegistered)

	require.NoError(t, r.AddToCart("CSC313"))
	assert.ErrorIs(t, r.AddToCart("CSC313"), ErrAlreadyInCart)
	assert.Equal(t, []string{"CSC313"}, codes(r.Cart()))
}

func TestAddToCartUnknownCourse(t *testing.T) {
	r := newRegistration()
	assert.ErrorIs(t, r.AddToCart("XYZ999"), ErrUnknownCourse)
	assert.Empty(t, r.Cart())
}

func TestRemoveFromCartIdempotent(t *testing.T) {
	r := newRegistration()
	require.NoError(t, r.AddToCart("CSC313"))

	r.RemoveFromCart("CSC313")
	r.RemoveFromCart("CSC313")
	r.RemoveFromCart("NOPE")
	assert.Empty(t, r.Cart())
	assert.Equal(t, 18, r.TotalCredits())
}

func TestDropCourse(t *testing.T) {
	r := newRegistration()

	r.DropCourse("CSC301")
	assert.False(t, r.IsRegistered("CSC301"))
	assert.Equal(t, 15, r.TotalCredits())

	r.DropCourse("CSC301")
	r.DropCourse("CSC313")
	assert.Equal(t, 15, r.TotalCredits())
}

func TestDropFreesCreditsForCart(t *testing.T) {
	r := newRegistration()
	for _, c := range []string{"CSC313", "CSC315", "CSC317"} {
		require.NoError(t, r.AddToCart(c))
	}
	require.ErrorIs(t, r.AddToCart("GST301"), ErrCreditLimitExceeded)

	r.DropCourse("CSC311")
	require.NoError(t, r.AddToCart("GST301"))
	assert.Equal(t, 23, r.TotalCredits())
}

func TestCommitRegistration(t *testing.T) {
	r := newRegistration()
	require.NoError(t, r.AddToCart("CSC313"))
	require.NoError(t, r.AddToCart("GST301"))

	r.CommitRegistration()
	assert.Empty(t, r.Cart())
	assert.True(t, r.IsRegistered("CSC313"))
	assert.True(t, r.IsRegistered("GST301"))
	assert.Equal(t, 22, r.RegisteredCredits())

	after := r.Summary()
	r.CommitRegistration()
	assert.Equal(t, after, r.Summary(), "second commit must be a no-op")
}

func TestRegisteredAndCartKeepCatalogOrder(t *testing.T) {
	r := newRegistration()
	require.NoError(t, r.AddToCart("GST301"))
	require.NoError(t, r.AddToCart("CSC313"))

	assert.Equal(t, []string{"CSC313", "GST301"}, codes(r.Cart()))
}

func TestNewRegistrationSkipsBadInitialCodes(t *testing.T) {
	r := NewRegistration(fixture.Courses(), []string{"CSC301", "BAD100", "CSC301"})
	assert.Equal(t, []string{"CSC301"}, codes(r.Registered()))
	assert.Equal(t, 3, r.TotalCredits())
}

func TestNewRegistrationEnforcesCeiling(t *testing.T) {
	all := make([]string, 0)
	for _, c := range fixture.Courses() {
		all = append(all, c.Code)
	}
	r := NewRegistration(fixture.Courses(), all)
	assert.LessOrEqual(t, r.TotalCredits(), MaxCredits)
}

func TestCatalogStates(t *testing.T) {
	r := newRegistration()
	require.NoError(t, r.AddToCart("CSC315"))

	states := map[string]model.CourseState{}
	for _, v := range r.Catalog() {
		states[v.Code] = v.State
	}
	assert.Equal(t, model.CourseStateRegistered, states["CSC301"])
	assert.Equal(t, model.CourseStateInCart, states["CSC315"])
	assert.Equal(t, model.CourseStateAvailable, states["GST301"])
	assert.Len(t, states, len(fixture.Courses()))
}
