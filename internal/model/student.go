package model

// Profile is the identity of the student behind a login. It is immutable for
// the lifetime of a session; edits made in the UI are local form state.
type Profile struct {
	ID           string  `json:"id"`
	MatricNumber string  `json:"matric_number"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Department   string  `json:"department"`
	College      string  `json:"college"`
	Level        string  `json:"level"`
	Session      string  `json:"session"`
	Semester     string  `json:"semester"`
	CGPA         float64 `json:"cgpa"`
	Avatar       *string `json:"avatar"`
}

// StudentLoginRequest is the payload for student authentication.
type StudentLoginRequest struct {
	MatricNumber string `json:"matric_number" binding:"required,max=32"`
	Password     string `json:"password" binding:"required,max=128"`
}

// StudentLoginResponse is returned after a successful student login.
type StudentLoginResponse struct {
	Token   string  `json:"token"`
	Student Profile `json:"student"`
}
