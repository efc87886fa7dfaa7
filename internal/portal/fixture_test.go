package portal

import (
	"github.com/temitayo1239/student-information-portal-main/internal/fixture"
	"github.com/temitayo1239/student-information-portal-main/internal/model"
)

type fixtureSource struct{}

func (fixtureSource) Student() model.Profile              { return fixture.Student() }
func (fixtureSource) Courses() []model.Course             { return fixture.Courses() }
func (fixtureSource) RegisteredCodes() []string           { return fixture.RegisteredCodes() }
func (fixtureSource) Notifications() []model.Notification { return fixture.Notifications() }

func loggedIn() *State {
	s := NewState(fixtureSource{})
	s.Session().Login("2023/12914", "secret")
	return s
}
