package model

// CourseResult is a graded course inside a semester result.
type CourseResult struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Credits int    `json:"credits"`
	Score   int    `json:"score"`
	Grade   string `json:"grade"`
}

// SemesterResult is one semester of the student's academic record.
type SemesterResult struct {
	Semester string         `json:"semester"`
	Session  string         `json:"session"`
	Level    string         `json:"level"`
	GPA      float64        `json:"gpa"`
	Courses  []CourseResult `json:"courses"`
}

// TotalCredits sums the credit units taken in the semester.
func (r SemesterResult) TotalCredits() int {
	total := 0
	for _, c := range r.Courses {
		total += c.Credits
	}
	return total
}

// TimetableSlot is a single weekly lecture.
type TimetableSlot struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Course   string `json:"course"`
	Venue    string `json:"venue"`
	Lecturer string `json:"lecturer"`
}

// TimetableQuery holds the optional day filter.
type TimetableQuery struct {
	Day string `form:"day" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday"`
}

// Payment is a fee payment already made.
type Payment struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// FeeItem is a line of the fee breakdown.
type FeeItem struct {
	Item   string `json:"item"`
	Amount int64  `json:"amount"`
}

// FeesStatement is the student's fee position for a session. Amounts are in
// naira.
type FeesStatement struct {
	Session    string    `json:"session"`
	TotalFees  int64     `json:"total_fees"`
	AmountPaid int64     `json:"amount_paid"`
	Balance    int64     `json:"balance"`
	DueDate    string    `json:"due_date"`
	Payments   []Payment `json:"payments"`
	Breakdown  []FeeItem `json:"breakdown"`
}

// PaidPercentage is the share of the total already paid, 0..100.
func (f FeesStatement) PaidPercentage() float64 {
	if f.TotalFees <= 0 {
		return 0
	}
	return float64(f.AmountPaid) / float64(f.TotalFees) * 100
}

// Dashboard is the landing summary for a logged-in student.
type Dashboard struct {
	Student           Profile         `json:"student"`
	CGPA              float64         `json:"cgpa"`
	RegisteredCourses int             `json:"registered_courses"`
	RegisteredCredits int             `json:"registered_credits"`
	UnreadCount       int             `json:"unread_count"`
	FeeBalance        int64           `json:"fee_balance"`
	TodayClasses      []TimetableSlot `json:"today_classes"`
}
