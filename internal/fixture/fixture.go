// Package fixture holds the static academic data served by the portal.
//
// Every accessor returns a fresh copy so callers may mutate the result
// without affecting other sessions.
package fixture

import (
	"time"

	"github.com/temitayo1239/student-information-portal-main/internal/model"
)

// Student returns the profile attached to every successful login.
func Student() model.Profile {
	return model.Profile{
		ID:           "STU/2023/12914",
		MatricNumber: "2023/12914",
		FirstName:    "Temitayo",
		LastName:     "Job",
		FullName:     "Temitayo Job",
		Email:        "temitayo.job@bellsuniversity.edu.ng",
		Phone:        "+234 812 345 6789",
		Department:   "Computer Science",
		College:      "COLNAS",
		Level:        "300L",
		Session:      "2024/2025",
		Semester:     "First Semester",
		CGPA:         3.72,
	}
}

// Courses returns the course catalog for the current semester.
func Courses() []model.Course {
	return []model.Course{
		{Code: "CSC301", Title: "Algorithm Design & Analysis", Credits: 3, Lecturer: "Dr. Adekunle", Status: model.CourseStatusCompulsory},
		{Code: "CSC303", Title: "Software Engineering I", Credits: 3, Lecturer: "Prof. Okafor", Status: model.CourseStatusCompulsory},
		{Code: "CSC305", Title: "Computer Networks", Credits: 3, Lecturer: "Dr. Ibrahim", Status: model.CourseStatusCompulsory},
		{Code: "CSC307", Title: "Artificial Intelligence", Credits: 3, Lecturer: "Dr. Adesanya", Status: model.CourseStatusCompulsory},
		{Code: "CSC309", Title: "Operating Systems II", Credits: 3, Lecturer: "Dr. Bello", Status: model.CourseStatusCompulsory},
		{Code: "CSC311", Title: "Systems Programming", Credits: 3, Lecturer: "Dr. Chukwu", Status: model.CourseStatusCompulsory},
		{Code: "CSC313", Title: "Human Computer Interaction", Credits: 2, Lecturer: "Dr. Fadeyi", Status: model.CourseStatusElective},
		{Code: "CSC315", Title: "Mobile App Development", Credits: 2, Lecturer: "Mr. Ganiyu", Status: model.CourseStatusElective},
		{Code: "CSC317", Title: "Cloud Computing", Credits: 2, Lecturer: "Dr. Hassan", Status: model.CourseStatusElective},
		{Code: "GST301", Title: "Entrepreneurship", Credits: 2, Lecturer: "Dr. Ijeoma", Status: model.CourseStatusRequired},
	}
}

// RegisteredCodes returns the courses a student starts the session with
// (18 credit units).
func RegisteredCodes() []string {
	return []string{"CSC301", "CSC303", "CSC305", "CSC307", "CSC309", "CSC311"}
}

// Notifications returns the inbox a session starts with.
func Notifications() []model.Notification {
	return []model.Notification{
		{
			ID:        1,
			Title:     "Mid-Semester Examination Timetable Released",
			Message:   "The mid-semester examination timetable for the 2024/2025 session has been released. Please check your department notice board for details.",
			Timestamp: at("2025-01-02T09:30:00"),
			Category:  model.CategoryExam,
		},
		{
			ID:        2,
			Title:     "Course Registration Deadline Extended",
			Message:   "The deadline for course registration has been extended to January 15, 2025. Students who have not registered are advised to do so immediately.",
			Timestamp: at("2024-12-28T14:00:00"),
			Category:  model.CategoryAcademic,
		},
		{
			ID:        3,
			Title:     "Assignment Submission Reminder",
			Message:   "Your CSC301 assignment is due tomorrow. Please ensure you submit before 11:59 PM.",
			Timestamp: at("2024-12-27T08:00:00"),
			Category:  model.CategoryDeadline,
		},
		{
			ID:        4,
			Title:     "School Fees Payment Reminder",
			Message:   "This is to remind you that your school fees balance of ₦75,000 is due by January 31, 2025.",
			Timestamp: at("2024-12-25T10:00:00"),
			Category:  model.CategoryFinance,
			IsRead:    true,
		},
		{
			ID:        5,
			Title:     "Career Fair 2025",
			Message:   "The annual career fair will hold on February 10, 2025 at the main auditorium. Top companies including Google, Microsoft, and MTN will be present.",
			Timestamp: at("2024-12-20T11:30:00"),
			Category:  model.CategoryEvent,
			IsRead:    true,
		},
		{
			ID:        6,
			Title:     "Library Extended Hours",
			Message:   "The library will now operate from 7am to 10pm on weekdays during the examination period.",
			Timestamp: at("2024-12-18T09:00:00"),
			Category:  model.CategoryGeneral,
			IsRead:    true,
		},
		{
			ID:        7,
			Title:     "New Course Material Available",
			Message:   "Prof. Okafor has uploaded new course material for CSC303 Software Engineering. Please download from the portal.",
			Timestamp: at("2024-12-15T16:45:00"),
			Category:  model.CategoryAcademic,
			IsRead:    true,
		},
	}
}

// Results returns the student's semester results, oldest first.
func Results() []model.SemesterResult {
	return []model.SemesterResult{
		{
			Semester: "First Semester", Session: "2022/2023", Level: "100L", GPA: 3.45,
			Courses: []model.CourseResult{
				{Code: "CSC101", Title: "Introduction to Computer Science", Credits: 3, Score: 72, Grade: "B"},
				{Code: "MTH101", Title: "General Mathematics I", Credits: 3, Score: 68, Grade: "B"},
				{Code: "PHY101", Title: "General Physics I", Credits: 3, Score: 75, Grade: "A"},
				{Code: "GST101", Title: "Use of English I", Credits: 2, Score: 65, Grade: "B"},
				{Code: "GST103", Title: "Nigerian Peoples and Culture", Credits: 2, Score: 58, Grade: "C"},
			},
		},
		{
			Semester: "Second Semester", Session: "2022/2023", Level: "100L", GPA: 3.58,
			Courses: []model.CourseResult{
				{Code: "CSC102", Title: "Introduction to Programming", Credits: 3, Score: 78, Grade: "A"},
				{Code: "MTH102", Title: "General Mathematics II", Credits: 3, Score: 70, Grade: "B"},
				{Code: "PHY102", Title: "General Physics II", Credits: 3, Score: 72, Grade: "B"},
				{Code: "GST102", Title: "Use of English II", Credits: 2, Score: 68, Grade: "B"},
				{Code: "CSC104", Title: "Computer Hardware", Credits: 3, Score: 82, Grade: "A"},
			},
		},
		{
			Semester: "First Semester", Session: "2023/2024", Level: "200L", GPA: 3.72,
			Courses: []model.CourseResult{
				{Code: "CSC201", Title: "Computer Programming I", Credits: 3, Score: 85, Grade: "A"},
				{Code: "CSC203", Title: "Discrete Mathematics", Credits: 3, Score: 78, Grade: "A"},
				{Code: "CSC205", Title: "Data Structures", Credits: 3, Score: 72, Grade: "B"},
				{Code: "MTH201", Title: "Mathematical Methods I", Credits: 3, Score: 68, Grade: "B"},
				{Code: "STA201", Title: "Statistics for Science", Credits: 3, Score: 75, Grade: "A"},
			},
		},
		{
			Semester: "Second Semester", Session: "2023/2024", Level: "200L", GPA: 3.85,
			Courses: []model.CourseResult{
				{Code: "CSC202", Title: "Computer Programming II", Credits: 3, Score: 88, Grade: "A"},
				{Code: "CSC204", Title: "Database Management Systems", Credits: 3, Score: 82, Grade: "A"},
				{Code: "CSC206", Title: "Operating Systems I", Credits: 3, Score: 75, Grade: "A"},
				{Code: "MTH202", Title: "Mathematical Methods II", Credits: 3, Score: 70, Grade: "B"},
				{Code: "CSC208", Title: "Web Development", Credits: 3, Score: 90, Grade: "A"},
			},
		},
		{
			Semester: "First Semester", Session: "2024/2025", Level: "300L", GPA: 3.72,
			Courses: []model.CourseResult{
				{Code: "CSC301", Title: "Algorithm Design & Analysis", Credits: 3, Score: 78, Grade: "A"},
				{Code: "CSC303", Title: "Software Engineering I", Credits: 3, Score: 75, Grade: "A"},
				{Code: "CSC305", Title: "Computer Networks", Credits: 3, Score: 72, Grade: "B"},
				{Code: "CSC307", Title: "Artificial Intelligence", Credits: 3, Score: 80, Grade: "A"},
				{Code: "CSC309", Title: "Operating Systems II", Credits: 3, Score: 68, Grade: "B"},
				{Code: "CSC311", Title: "Systems Programming", Credits: 3, Score: 70, Grade: "B"},
			},
		},
	}
}

// Timetable returns the weekly lecture schedule.
func Timetable() []model.TimetableSlot {
	return []model.TimetableSlot{
		{Day: "Monday", Time: "08:00 - 10:00", Course: "CSC301", Venue: "LT 101", Lecturer: "Dr. Adekunle"},
		{Day: "Monday", Time: "10:00 - 12:00", Course: "CSC303", Venue: "Lab 2", Lecturer: "Prof. Okafor"},
		{Day: "Monday", Time: "14:00 - 16:00", Course: "CSC305", Venue: "LT 203", Lecturer: "Dr. Ibrahim"},
		{Day: "Tuesday", Time: "08:00 - 10:00", Course: "CSC307", Venue: "Lab 1", Lecturer: "Dr. Adesanya"},
		{Day: "Tuesday", Time: "12:00 - 14:00", Course: "CSC309", Venue: "LT 102", Lecturer: "Dr. Bello"},
		{Day: "Wednesday", Time: "08:00 - 10:00", Course: "CSC311", Venue: "Lab 3", Lecturer: "Dr. Chukwu"},
		{Day: "Wednesday", Time: "10:00 - 12:00", Course: "CSC301", Venue: "LT 101", Lecturer: "Dr. Adekunle"},
		{Day: "Wednesday", Time: "14:00 - 16:00", Course: "CSC303", Venue: "LT 205", Lecturer: "Prof. Okafor"},
		{Day: "Thursday", Time: "08:00 - 10:00", Course: "CSC305", Venue: "Lab 2", Lecturer: "Dr. Ibrahim"},
		{Day: "Thursday", Time: "10:00 - 12:00", Course: "CSC307", Venue: "LT 103", Lecturer: "Dr. Adesanya"},
		{Day: "Friday", Time: "08:00 - 10:00", Course: "CSC309", Venue: "LT 201", Lecturer: "Dr. Bello"},
		{Day: "Friday", Time: "10:00 - 12:00", Course: "CSC311", Venue: "Lab 1", Lecturer: "Dr. Chukwu"},
	}
}

// Fees returns the fee statement for the current session.
func Fees() model.FeesStatement {
	return model.FeesStatement{
		Session:    "2024/2025",
		TotalFees:  175000,
		AmountPaid: 100000,
		Balance:    75000,
		DueDate:    "2025-01-31",
		Payments: []model.Payment{
			{ID: 1, Date: "2024-09-15", Amount: 50000, Reference: "PAY/2024/001234", Status: "confirmed"},
			{ID: 2, Date: "2024-11-20", Amount: 50000, Reference: "PAY/2024/005678", Status: "confirmed"},
		},
		Breakdown: []model.FeeItem{
			{Item: "Tuition Fee", Amount: 100000},
			{Item: "Laboratory Fee", Amount: 25000},
			{Item: "Library Fee", Amount: 15000},
			{Item: "ICT Fee", Amount: 20000},
			{Item: "Examination Fee", Amount: 10000},
			{Item: "Student Union Dues", Amount: 5000},
		},
	}
}

// campus is the portal's local time zone (WAT, no DST).
var campus = time.FixedZone("WAT", 60*60)

func at(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, campus)
	if err != nil {
		panic("fixture: bad timestamp " + s)
	}
	return t
}
