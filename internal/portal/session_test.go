package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLogin(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		credential string
		want       bool
	}{
		{"both present", "2023/12914", "anything", true},
		{"empty identifier", "", "x", false},
		{"empty credential", "2023/12914", "", false},
		{"both empty", "", "", false},
		{"whitespace is not empty", " ", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(fixtureSource{})
			assert.Equal(t, tt.want, s.Login(tt.identifier, tt.credential))
			assert.Equal(t, tt.want, s.IsAuthenticated())
			assert.Equal(t, s.IsAuthenticated(), s.CurrentProfile().IsSome())
		})
	}
}

func TestSessionLoginPopulatesProfile(t *testing.T) {
	s := NewSession(fixtureSource{})
	require.True(t, s.Login("2023/12914", "anything"))

	p, ok := s.CurrentProfile().Get()
	require.True(t, ok)
	assert.Equal(t, "2023/12914", p.MatricNumber)
	assert.Equal(t, "Temitayo Job", p.FullName)
}

func TestSessionLoginUsesIdentifierAsMatricNumber(t *testing.T) {
	s := NewSession(fixtureSource{})
	require.True(t, s.Login("2024/00001", "pw"))

	p, ok := s.CurrentProfile().Get()
	require.True(t, ok)
	assert.Equal(t, "2024/00001", p.MatricNumber)
	assert.Equal(t, "Temitayo Job", p.FullName)

	assert.Equal(t, "2023/12914", fixtureSource{}.Student().MatricNumber)
}

func TestSessionFailedLoginKeepsState(t *testing.T) {
	s := NewSession(fixtureSource{})
	require.True(t, s.Login("2023/12914", "pw"))

	assert.False(t, s.Login("", "x"))
	assert.True(t, s.IsAuthenticated(), "a failed login must not log the student out")
}

func TestSessionLogoutIdempotent(t *testing.T) {
	s := NewSession(fixtureSource{})
	s.Logout()
	assert.False(t, s.IsAuthenticated())

	require.True(t, s.Login("a", "b"))
	s.Logout()
	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.CurrentProfile().IsSome())
}
