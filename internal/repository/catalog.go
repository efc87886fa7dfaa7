package repository

import (
	"slices"

	"github.com/temitayo1239/student-information-portal-main/internal/fixture"
	"github.com/temitayo1239/student-information-portal-main/internal/model"
	"github.com/temitayo1239/student-information-portal-main/internal/portal"
)

// Catalog is the read-only academic data behind the portal.
type Catalog interface {
	portal.Source
	Results() []model.SemesterResult
	Timetable() []model.TimetableSlot
	Fees() model.FeesStatement
}

// StaticCatalog serves a fixed data set held in memory. Accessors return
// copies, so it is safe for concurrent use.
type StaticCatalog struct {
	student       model.Profile
	courses       []model.Course
	registered    []string
	notifications []model.Notification
	results       []model.SemesterResult
	timetable     []model.TimetableSlot
	fees          model.FeesStatement
}

// NewFixtureCatalog serves the built-in fixture data.
func NewFixtureCatalog() *StaticCatalog {
	return &StaticCatalog{
		student:       fixture.Student(),
		courses:       fixture.Courses(),
		registered:    fixture.RegisteredCodes(),
		notifications: fixture.Notifications(),
		results:       fixture.Results(),
		timetable:     fixture.Timetable(),
		fees:          fixture.Fees(),
	}
}

func (c *StaticCatalog) Student() model.Profile {
	p := c.student
	if p.Avatar != nil {
		avatar := *p.Avatar
		p.Avatar = &avatar
	}
	return p
}

func (c *StaticCatalog) Courses() []model.Course {
	return slices.Clone(c.courses)
}

func (c *StaticCatalog) RegisteredCodes() []string {
	return slices.Clone(c.registered)
}

func (c *StaticCatalog) Notifications() []model.Notification {
	return slices.Clone(c.notifications)
}

func (c *StaticCatalog) Results() []model.SemesterResult {
	out := make([]model.SemesterResult, len(c.results))
	for i, r := range c.results {
		r.Courses = slices.Clone(r.Courses)
		out[i] = r
	}
	return out
}

func (c *StaticCatalog) Timetable() []model.TimetableSlot {
	return slices.Clone(c.timetable)
}

func (c *StaticCatalog) Fees() model.FeesStatement {
	f := c.fees
	f.Payments = slices.Clone(f.Payments)
	f.Breakdown = slices.Clone(f.Breakdown)
	return f
}

// Course looks up a catalog course by code.
func (c *StaticCatalog) Course(code string) (model.Course, bool) {
	i := slices.IndexFunc(c.courses, func(course model.Course) bool {
		return course.Code == code
	})
	if i < 0 {
		return model.Course{}, false
	}
	return c.courses[i], true
}
