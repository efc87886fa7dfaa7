package portal

import "github.com/temitayo1239/student-information-portal-main/internal/model"

// ProfileSource supplies the profile attached to a successful login.
type ProfileSource interface {
	Student() model.Profile
}

// Session tracks whether a student is logged in and who they are.
//
// Authentication is derived from the presence of a profile, so the two can
// never disagree.
type Session struct {
	source  ProfileSource
	profile Option[model.Profile]
}

// NewSession returns an unauthenticated session.
func NewSession(source ProfileSource) *Session {
	return &Session{source: source}
}

// Login accepts any pair of non-empty strings. There is no credential check:
// this is a stand-in for a real identity provider and must stay that way.
// The profile comes from the source with its matric number set to
// identifier. On failure the session is left untouched.
func (s *Session) Login(identifier, credential string) bool {
	if identifier == "" || credential == "" {
		return false
	}
	p := s.source.Student()
	p.MatricNumber = identifier
	s.profile = Some(p)
	return true
}

// Logout clears the session. Safe to call repeatedly.
func (s *Session) Logout() {
	s.profile = None[model.Profile]()
}

// IsAuthenticated reports whether a student is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.profile.IsSome()
}

// CurrentProfile returns the logged-in student's profile, if any.
func (s *Session) CurrentProfile() Option[model.Profile] {
	return s.profile
}
