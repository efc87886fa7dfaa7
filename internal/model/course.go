package model

// CourseStatus tags how a course relates to the student's programme.
type CourseStatus string

const (
	CourseStatusCompulsory CourseStatus = "compulsory"
	CourseStatusElective   CourseStatus = "elective"
	CourseStatusRequired   CourseStatus = "required"
)

// Valid reports whether s is one of the known statuses.
func (s CourseStatus) Valid() bool {
	switch s {
	case CourseStatusCompulsory, CourseStatusElective, CourseStatusRequired:
		return true
	}
	return false
}

// Course is a read-only entry of the course catalog.
type Course struct {
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Credits  int          `json:"credits"`
	Lecturer string       `json:"lecturer"`
	Status   CourseStatus `json:"status"`
}

// CourseState describes where a catalog course sits for the current student.
type CourseState string

const (
	CourseStateAvailable  CourseState = "available"
	CourseStateInCart     CourseState = "in_cart"
	CourseStateRegistered CourseState = "registered"
)

// CourseView pairs a catalog course with its registration state.
type CourseView struct {
	Course
	State CourseState `json:"state"`
}

// RegistrationSummary is the registration workflow as rendered to a client.
type RegistrationSummary struct {
	Registered        []Course `json:"registered"`
	Cart              []Course `json:"cart"`
	RegisteredCredits int      `json:"registered_credits"`
	TotalCredits      int      `json:"total_credits"`
	MaxCredits        int      `json:"max_credits"`
}

// AddToCartRequest is the payload for staging a course.
type AddToCartRequest struct {
	Code string `json:"code" binding:"required,course_code"`
}
