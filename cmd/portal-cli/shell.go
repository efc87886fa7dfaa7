package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/temitayo1239/student-information-portal-main/internal/portal"
	"github.com/temitayo1239/student-information-portal-main/internal/repository"
)

type outcome int

const (
	stay outcome = iota
	loggedOut
	quit
)

// shell runs REPL commands against one portal state.
type shell struct {
	state   *portal.State
	catalog repository.Catalog
	out     io.Writer
}

func newShell(catalog repository.Catalog, out io.Writer) *shell {
	return &shell{state: portal.NewState(catalog), catalog: catalog, out: out}
}

func (s *shell) login(matric, password string) bool {
	if !s.state.Session().Login(matric, password) {
		return false
	}
	p, _ := s.state.Session().CurrentProfile().Get()
	fmt.Fprintf(s.out, "Welcome, %s (%s, %s)\n", p.FullName, p.MatricNumber, p.Level)
	return true
}

func (s *shell) exec(line string) outcome {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return stay
	}
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "help":
		s.help()
	case "courses":
		err = s.courses()
	case "cart":
		err = s.cart()
	case "add", "remove", "drop":
		err = s.withCode(cmd, args)
	case "commit":
		err = s.commit()
	case "inbox":
		err = s.inbox(args)
	case "read":
		err = s.read(args)
	case "readall":
		err = s.readAll()
	case "results":
		s.results()
	case "timetable":
		s.timetable(args)
	case "fees":
		s.fees()
	case "logout":
		s.state.Logout()
		fmt.Fprintln(s.out, "Logged out. Unsaved changes were discarded.")
		return loggedOut
	case "quit", "exit":
		return quit
	default:
		fmt.Fprintf(s.out, "unknown command %q, try help\n", cmd)
	}
	if err != nil {
		fmt.Fprintln(s.out, "error:", describe(err))
	}
	return stay
}

func (s *shell) help() {
	fmt.Fprintln(s.out, `commands:
  courses              catalog with registration state
  cart                 registered courses, cart and credits
  add <code>           stage a course
  remove <code>        unstage a course
  drop <code>          drop a registered course
  commit               register everything in the cart
  inbox [filter]       notifications (all, unread or a category)
  read <id>            mark a notification as read
  readall              mark every notification as read
  results              semester results
  timetable [day]      weekly timetable
  fees                 fees statement
  logout, quit`)
}

func (s *shell) courses() error {
	reg, err := s.state.Registration()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tTITLE\tCU\tSTATUS\tSTATE")
	for _, c := range reg.Catalog() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", c.Code, c.Title, c.Credits, c.Status, c.State)
	}
	return tw.Flush()
}

func (s *shell) cart() error {
	reg, err := s.state.Registration()
	if err != nil {
		return err
	}
	sum := reg.Summary()
	fmt.Fprintf(s.out, "registered (%d CU):", sum.RegisteredCredits)
	for _, c := range sum.Registered {
		fmt.Fprintf(s.out, " %s", c.Code)
	}
	fmt.Fprintf(s.out, "\ncart:")
	for _, c := range sum.Cart {
		fmt.Fprintf(s.out, " %s", c.Code)
	}
	fmt.Fprintf(s.out, "\ntotal: %d/%d CU\n", sum.TotalCredits, sum.MaxCredits)
	return nil
}

func (s *shell) withCode(cmd string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <code>", cmd)
	}
	reg, err := s.state.Registration()
	if err != nil {
		return err
	}
	code := strings.ToUpper(args[0])
	switch cmd {
	case "add":
		if err := reg.AddToCart(code); err != nil {
			return err
		}
	case "remove":
		reg.RemoveFromCart(code)
	case "drop":
		reg.DropCourse(code)
	}
	fmt.Fprintf(s.out, "total: %d/%d CU\n", reg.TotalCredits(), portal.MaxCredits)
	return nil
}

func (s *shell) commit() error {
	reg, err := s.state.Registration()
	if err != nil {
		return err
	}
	reg.CommitRegistration()
	fmt.Fprintf(s.out, "registered %d courses, %d CU\n", len(reg.Registered()), reg.RegisteredCredits())
	return nil
}

func (s *shell) inbox(args []string) error {
	in, err := s.state.Inbox()
	if err != nil {
		return err
	}
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	}
	filter, err := portal.ParseFilter(raw)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t \tCATEGORY\tWHEN\tTITLE")
	for n := range in.FilterBy(filter) {
		mark := " "
		if !n.IsRead {
			mark = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", n.ID, mark, n.Category, n.Timestamp.Format("02 Jan 15:04"), n.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d unread\n", in.UnreadCount())
	return nil
}

func (s *shell) read(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: read <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}
	in, err := s.state.Inbox()
	if err != nil {
		return err
	}
	if _, err := in.MarkRead(id); err != nil {
		return err
	}
	n, _ := in.Get(id)
	fmt.Fprintf(s.out, "%s\n%s\n", n.Title, n.Message)
	return nil
}

func (s *shell) readAll() error {
	in, err := s.state.Inbox()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "marked %d as read\n", in.MarkAllRead())
	return nil
}

func (s *shell) results() {
	for _, r := range s.catalog.Results() {
		fmt.Fprintf(s.out, "%s %s (%s) GPA %.2f, %d CU\n", r.Session, r.Semester, r.Level, r.GPA, r.TotalCredits())
		for _, c := range r.Courses {
			fmt.Fprintf(s.out, "  %s  %-36s %d  %3d  %s\n", c.Code, c.Title, c.Credits, c.Score, c.Grade)
		}
	}
}

func (s *shell) timetable(args []string) {
	day := ""
	if len(args) > 0 {
		day = strings.ToUpper(args[0][:1]) + strings.ToLower(args[0][1:])
	}
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, slot := range s.catalog.Timetable() {
		if day != "" && slot.Day != day {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", slot.Day, slot.Time, slot.Course, slot.Venue, slot.Lecturer)
	}
	_ = tw.Flush()
}

func (s *shell) fees() {
	f := s.catalog.Fees()
	fmt.Fprintf(s.out, "%s: paid N%d of N%d (%.0f%%), balance N%d due %s\n",
		f.Session, f.AmountPaid, f.TotalFees, f.PaidPercentage(), f.Balance, f.DueDate)
	for _, item := range f.Breakdown {
		fmt.Fprintf(s.out, "  %-20s N%d\n", item.Item, item.Amount)
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, portal.ErrNotAuthenticated):
		return "not logged in"
	case errors.Is(err, portal.ErrCreditLimitExceeded):
		return fmt.Sprintf("that would exceed %d credit units", portal.MaxCredits)
	case errors.Is(err, portal.ErrAlreadyRegistered):
		return "already registered"
	case errors.Is(err, portal.ErrAlreadyInCart):
		return "already in the cart"
	case errors.Is(err, portal.ErrUnknownCourse):
		return "no such course"
	case errors.Is(err, portal.ErrNotificationNotFound):
		return "no such notification"
	default:
		return err.Error()
	}
}
