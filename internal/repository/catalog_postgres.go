package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/temitayo1239/student-information-portal-main/internal/model"
)

// ErrNoStudent is returned when the students table is empty.
var ErrNoStudent = errors.New("catalog has no student profile")

// CatalogRepository reads and seeds the catalog tables in PostgreSQL.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Load reads every catalog table into a StaticCatalog. The portal only
// reads the catalog at startup; sessions never query the database.
func (r *CatalogRepository) Load(ctx context.Context) (*StaticCatalog, error) {
	c := &StaticCatalog{}
	var err error

	if c.student, err = r.student(ctx); err != nil {
		return nil, fmt.Errorf("load student: %w", err)
	}
	if c.courses, err = r.courses(ctx); err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	if c.registered, err = r.registeredCodes(ctx); err != nil {
		return nil, fmt.Errorf("load registered courses: %w", err)
	}
	if c.notifications, err = r.notifications(ctx); err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	if c.results, err = r.results(ctx); err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	if c.timetable, err = r.timetable(ctx); err != nil {
		return nil, fmt.Errorf("load timetable: %w", err)
	}
	if c.fees, err = r.fees(ctx, c.student.Session); err != nil {
		return nil, fmt.Errorf("load fees: %w", err)
	}
	return c, nil
}

func (r *CatalogRepository) student(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	err := r.pool.QueryRow(ctx,
		`SELECT id, matric_number, first_name, last_name, full_name, email, phone,
		        department, college, level, session, semester, cgpa, avatar
		 FROM students ORDER BY id LIMIT 1`,
	).Scan(&p.ID, &p.MatricNumber, &p.FirstName, &p.LastName, &p.FullName, &p.Email, &p.Phone,
		&p.Department, &p.College, &p.Level, &p.Session, &p.Semester, &p.CGPA, &p.Avatar)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, ErrNoStudent
	}
	return p, err
}

func (r *CatalogRepository) courses(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT code, title, credits, lecturer, status FROM courses ORDER BY position, code`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Course, error) {
		var c model.Course
		err := row.Scan(&c.Code, &c.Title, &c.Credits, &c.Lecturer, &c.Status)
		return c, err
	})
}

func (r *CatalogRepository) registeredCodes(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT rc.course_code FROM registered_courses rc
		 JOIN courses c ON c.code = rc.course_code
		 ORDER BY c.position, c.code`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (r *CatalogRepository) notifications(ctx context.Context) ([]model.Notification, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, message, created_at, category, is_read
		 FROM notifications ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Notification, error) {
		var n model.Notification
		err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Timestamp, &n.Category, &n.IsRead)
		return n, err
	})
}

func (r *CatalogRepository) results(ctx context.Context) ([]model.SemesterResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT sr.id, sr.semester, sr.session, sr.level, sr.gpa,
		        cr.code, cr.title, cr.credits, cr.score, cr.grade
		 FROM semester_results sr
		 JOIN course_results cr ON cr.result_id = sr.id
		 ORDER BY sr.position, cr.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		results []model.SemesterResult
		lastID  = -1
	)
	for rows.Next() {
		var (
			id int
			sr model.SemesterResult
			cr model.CourseResult
		)
		if err := rows.Scan(&id, &sr.Semester, &sr.Session, &sr.Level, &sr.GPA,
			&cr.Code, &cr.Title, &cr.Credits, &cr.Score, &cr.Grade); err != nil {
			return nil, err
		}
		if id != lastID {
			results = append(results, sr)
			lastID = id
		}
		last := &results[len(results)-1]
		last.Courses = append(last.Courses, cr)
	}
	return results, rows.Err()
}

func (r *CatalogRepository) timetable(ctx context.Context) ([]model.TimetableSlot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT day, time_range, course_code, venue, lecturer FROM timetable_slots ORDER BY position`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.TimetableSlot, error) {
		var s model.TimetableSlot
		err := row.Scan(&s.Day, &s.Time, &s.Course, &s.Venue, &s.Lecturer)
		return s, err
	})
}

func (r *CatalogRepository) fees(ctx context.Context, session string) (model.FeesStatement, error) {
	f := model.FeesStatement{Session: session}
	var due time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT total_fees, amount_paid, balance, due_date FROM fee_statements WHERE session = $1`, session,
	).Scan(&f.TotalFees, &f.AmountPaid, &f.Balance, &due)
	if err != nil {
		return f, err
	}
	f.DueDate = due.Format(time.DateOnly)

	rows, err := r.pool.Query(ctx,
		`SELECT id, paid_on, amount, reference, status FROM fee_payments WHERE session = $1 ORDER BY paid_on, id`, session)
	if err != nil {
		return f, err
	}
	f.Payments, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Payment, error) {
		var (
			p      model.Payment
			paidOn time.Time
		)
		err := row.Scan(&p.ID, &paidOn, &p.Amount, &p.Reference, &p.Status)
		p.Date = paidOn.Format(time.DateOnly)
		return p, err
	})
	if err != nil {
		return f, err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT item, amount FROM fee_items WHERE session = $1 ORDER BY position`, session)
	if err != nil {
		return f, err
	}
	f.Breakdown, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.FeeItem, error) {
		var item model.FeeItem
		err := row.Scan(&item.Item, &item.Amount)
		return item, err
	})
	return f, err
}

// Seed replaces the contents of every catalog table with c in one
// transaction.
func (r *CatalogRepository) Seed(ctx context.Context, c Catalog) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, table := range []string{
			"fee_items", "fee_payments", "fee_statements", "timetable_slots",
			"course_results", "semester_results", "notifications",
			"registered_courses", "courses", "students",
		} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		p := c.Student()
		if _, err := tx.Exec(ctx,
			`INSERT INTO students (id, matric_number, first_name, last_name, full_name, email, phone,
			                       department, college, level, session, semester, cgpa, avatar)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			p.ID, p.MatricNumber, p.FirstName, p.LastName, p.FullName, p.Email, p.Phone,
			p.Department, p.College, p.Level, p.Session, p.Semester, p.CGPA, p.Avatar,
		); err != nil {
			return fmt.Errorf("insert student: %w", err)
		}

		batch := &pgx.Batch{}
		for i, course := range c.Courses() {
			batch.Queue(`INSERT INTO courses (code, title, credits, lecturer, status, position) VALUES ($1, $2, $3, $4, $5, $6)`,
				course.Code, course.Title, course.Credits, course.Lecturer, string(course.Status), i)
		}
		for _, code := range c.RegisteredCodes() {
			batch.Queue(`INSERT INTO registered_courses (course_code) VALUES ($1)`, code)
		}
		for _, n := range c.Notifications() {
			batch.Queue(`INSERT INTO notifications (id, title, message, created_at, category, is_read) VALUES ($1, $2, $3, $4, $5, $6)`,
				n.ID, n.Title, n.Message, n.Timestamp, string(n.Category), n.IsRead)
		}
		for i, sr := range c.Results() {
			batch.Queue(`INSERT INTO semester_results (id, semester, session, level, gpa, position) VALUES ($1, $2, $3, $4, $5, $6)`,
				i+1, sr.Semester, sr.Session, sr.Level, sr.GPA, i)
			for j, cr := range sr.Courses {
				batch.Queue(`INSERT INTO course_results (result_id, code, title, credits, score, grade, position) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
					i+1, cr.Code, cr.Title, cr.Credits, cr.Score, cr.Grade, j)
			}
		}
		for i, s := range c.Timetable() {
			batch.Queue(`INSERT INTO timetable_slots (day, time_range, course_code, venue, lecturer, position) VALUES ($1, $2, $3, $4, $5, $6)`,
				s.Day, s.Time, s.Course, s.Venue, s.Lecturer, i)
		}

		f := c.Fees()
		batch.Queue(`INSERT INTO fee_statements (session, total_fees, amount_paid, balance, due_date) VALUES ($1, $2, $3, $4, $5)`,
			f.Session, f.TotalFees, f.AmountPaid, f.Balance, f.DueDate)
		for _, pay := range f.Payments {
			batch.Queue(`INSERT INTO fee_payments (id, session, paid_on, amount, reference, status) VALUES ($1, $2, $3, $4, $5, $6)`,
				pay.ID, f.Session, pay.Date, pay.Amount, pay.Reference, pay.Status)
		}
		for i, item := range f.Breakdown {
			batch.Queue(`INSERT INTO fee_items (session, item, amount, position) VALUES ($1, $2, $3, $4)`,
				f.Session, item.Item, item.Amount, i)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert catalog rows: %w", err)
		}
		return nil
	})
}
