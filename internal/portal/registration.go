package portal

import (
	"errors"

	"github.com/temitayo1239/student-information-portal-main/internal/model"
)

// MaxCredits is the credit-unit ceiling for registered plus staged courses.
const MaxCredits = 24

// Outcomes of AddToCart. None of them mutate state.
var (
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")
	ErrAlreadyRegistered   = errors.New("course already registered")
	ErrAlreadyInCart       = errors.New("course already in cart")
	ErrUnknownCourse       = errors.New("unknown course")
)

type codeSet map[string]struct{}

func (s codeSet) has(code string) bool {
	_, ok := s[code]
	return ok
}

// Registration is the course registration workflow: a committed set of
// courses and a cart of courses staged for the next commit.
//
// Invariants: the cart and the registered set are disjoint, and the credit
// total of their union never exceeds MaxCredits.
type Registration struct {
	catalog    []model.Course
	byCode     map[string]model.Course
	registered codeSet
	cart       codeSet
}

// NewRegistration builds the workflow over a catalog. Initial registrations
// that are unknown, duplicated, or would break the credit ceiling are
// skipped.
func NewRegistration(catalog []model.Course, registered []string) *Registration {
	r := &Registration{
		catalog:    make([]model.Course, 0, len(catalog)),
		byCode:     make(map[string]model.Course, len(catalog)),
		registered: codeSet{},
		cart:       codeSet{},
	}
	for _, c := range catalog {
		if _, dup := r.byCode[c.Code]; dup || c.Credits <= 0 {
			continue
		}
		r.catalog = append(r.catalog, c)
		r.byCode[c.Code] = c
	}
	for _, code := range registered {
		c, ok := r.byCode[code]
		if !ok || r.registered.has(code) {
			continue
		}
		if r.creditsOf(r.registered)+c.Credits > MaxCredits {
			continue
		}
		r.registered[code] = struct{}{}
	}
	return r
}

// AddToCart stages a course. The credit check runs against the prospective
// union of registered, cart and the candidate before anything changes.
func (r *Registration) AddToCart(code string) error {
	if _, ok := r.byCode[code]; !ok {
		return ErrUnknownCourse
	}
	if r.registered.has(code) {
		return ErrAlreadyRegistered
	}
	if r.cart.has(code) {
		return ErrAlreadyInCart
	}
	if r.creditsOf(r.registered, r.cart, codeSet{code: {}}) > MaxCredits {
		return ErrCreditLimitExceeded
	}
	r.cart[code] = struct{}{}
	return nil
}

// RemoveFromCart un-stages a course. Absent codes are ignored.
func (r *Registration) RemoveFromCart(code string) {
	delete(r.cart, code)
}

// DropCourse removes a committed course. Absent codes are ignored.
func (r *Registration) DropCourse(code string) {
	delete(r.registered, code)
}

// CommitRegistration moves the whole cart into the registered set.
func (r *Registration) CommitRegistration() {
	for code := range r.cart {
		r.registered[code] = struct{}{}
	}
	r.cart = codeSet{}
}

// TotalCredits is the credit total of registered and staged courses,
// recomputed from the catalog on every call.
func (r *Registration) TotalCredits() int {
	return r.creditsOf(r.registered, r.cart)
}

// RegisteredCredits is the credit total of committed courses only.
func (r *Registration) RegisteredCredits() int {
	return r.creditsOf(r.registered)
}

// Registered lists committed courses in catalog order.
func (r *Registration) Registered() []model.Course {
	return r.coursesIn(r.registered)
}

// Cart lists staged courses in catalog order.
func (r *Registration) Cart() []model.Course {
	return r.coursesIn(r.cart)
}

// IsRegistered reports whether code is committed.
func (r *Registration) IsRegistered(code string) bool {
	return r.registered.has(code)
}

// InCart reports whether code is staged.
func (r *Registration) InCart(code string) bool {
	return r.cart.has(code)
}

// Catalog lists every course with its state for this student.
func (r *Registration) Catalog() []model.CourseView {
	views := make([]model.CourseView, 0, len(r.catalog))
	for _, c := range r.catalog {
		state := model.CourseStateAvailable
		switch {
		case r.registered.has(c.Code):
			state = model.CourseStateRegistered
		case r.cart.has(c.Code):
			state = model.CourseStateInCart
		}
		views = append(views, model.CourseView{Course: c, State: state})
	}
	return views
}

// Summary renders the workflow for a client.
func (r *Registration) Summary() model.RegistrationSummary {
	return model.RegistrationSummary{
		Registered:        r.Registered(),
		Cart:              r.Cart(),
		RegisteredCredits: r.RegisteredCredits(),
		TotalCredits:      r.TotalCredits(),
		MaxCredits:        MaxCredits,
	}
}

func (r *Registration) creditsOf(sets ...codeSet) int {
	total := 0
	for _, c := range r.catalog {
		for _, s := range sets {
			if s.has(c.Code) {
				total += c.Credits
				break
			}
		}
	}
	return total
}

func (r *Registration) coursesIn(s codeSet) []model.Course {
	out := make([]model.Course, 0, len(s))
	for _, c := range r.catalog {
		if s.has(c.Code) {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registration) codesIn(s codeSet) []string {
	out := make([]string, 0, len(s))
	for _, c := range r.catalog {
		if s.has(c.Code) {
			out = append(out, c.Code)
		}
	}
	return out
}
