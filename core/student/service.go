package student

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jmstudio/fitmanage/core"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

type (
	Repository interface {
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// UpdateStudent replaces the stored record whose id matches.
		// ErrNotFound is returned when no record matches.
		UpdateStudent(s Student) (Student, error)
		// DeleteStudentsByID is idempotent over absent ids.
		DeleteStudentsByID(ids ...string) error
		// ReplaceAllStudents swaps the whole collection (backup import).
		ReplaceAllStudents(students []Student) error
	}

	Service struct {
		repo    Repository
		planGen core.PlanGenerator
	}
)

func NewService(repo Repository, planGen core.PlanGenerator) *Service {
	return &Service{repo: repo, planGen: planGen}
}

func (svc *Service) Create(ns NewStudent, now time.Time) (Student, error) {
	status := ns.Status
	if status == "" {
		status = StatusPending
	}
	joinDate := ns.JoinDate
	if joinDate.IsZero() {
		joinDate = now
	}
	s := Student{
		ID:           uuid.New().String(),
		Name:         ns.Name,
		Phone:        ns.Phone,
		NationalID:   ns.NationalID,
		BirthDate:    ns.BirthDate,
		MonthlyFee:   ns.MonthlyFee,
		BillingDay:   ns.BillingDay,
		ClassTime:    ns.ClassTime,
		JoinDate:     joinDate,
		Status:       status,
		Observations: ns.Observations,
	}
	return svc.repo.CreateStudent(s)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	s, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	s.Name = us.Name
	s.Phone = us.Phone
	s.NationalID = us.NationalID
	s.BirthDate = us.BirthDate
	s.MonthlyFee = us.MonthlyFee
	s.BillingDay = us.BillingDay
	s.ClassTime = us.ClassTime
	s.Status = us.Status
	s.Observations = us.Observations
	return svc.repo.UpdateStudent(s)
}

// Unassign removes the student from their class hour and flags them pending
// until a new hour is chosen.
func (svc *Service) Unassign(id string) (Student, error) {
	s, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	s.ClassTime = ""
	s.Status = StatusPending
	return svc.repo.UpdateStudent(s)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteStudentsByID(ids...)
}

func (svc *Service) ReplaceAll(students []Student) error {
	return svc.repo.ReplaceAllStudents(students)
}

// TogglePayment flips the (month, year) cycle of the student.
//
// Marking a cycle paid upserts a single record for it and promotes a
// non-active student to active. Unmarking removes every record for the cycle
// and never demotes the status; reversal is a bookkeeping correction, not a
// statement about the student's standing.
func (svc *Service) TogglePayment(id string, month time.Month, year int) (Student, error) {
	s, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	if s.PaidForCycle(month, year) {
		s.Payments = removeCycle(s.Payments, month, year)
	} else {
		s.Payments = upsertCycle(s.Payments, PaymentRecord{Month: month, Year: year, Status: PaymentPaid})
		if s.Status != StatusActive {
			s.Status = StatusActive
		}
	}
	return svc.repo.UpdateStudent(s)
}

// AttachReceipt stores an opaque receipt payload on the (month, year) cycle
// record, creating a paid record if the cycle has none yet.
func (svc *Service) AttachReceipt(id string, month time.Month, year int, receipt string) (Student, error) {
	s, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	rec := PaymentRecord{Month: month, Year: year, Status: PaymentPaid, Receipt: receipt}
	if i := cycleIndex(s.Payments, month, year); i >= 0 {
		rec.Status = s.Payments[i].Status
	}
	s.Payments = upsertCycle(s.Payments, rec)
	return svc.repo.UpdateStudent(s)
}

// GenerateWorkout asks the plan generator for a Markdown plan and appends it
// to the student's workout history. A generator failure is not an error: the
// fallback text is returned as the plan and nothing is stored.
func (svc *Service) GenerateWorkout(ctx context.Context, id, goal string, now time.Time) (WorkoutPlan, error) {
	s, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return WorkoutPlan{}, err
	}

	text, err := svc.planGen.GeneratePlan(ctx, s.Name, goal)
	if err != nil {
		return WorkoutPlan{Date: now, Goal: goal, Plan: core.PlanGeneratorFallback}, nil
	}

	plan := WorkoutPlan{
		ID:   uuid.New().String(),
		Date: now,
		Goal: goal,
		Plan: text,
	}
	s.Workouts = append(s.Workouts, plan)
	if _, err := svc.repo.UpdateStudent(s); err != nil {
		return WorkoutPlan{}, err
	}
	return plan, nil
}

func cycleIndex(payments []PaymentRecord, month time.Month, year int) int {
	for i, p := range payments {
		if p.Month == month && p.Year == year {
			return i
		}
	}
	return -1
}

// removeCycle and upsertCycle never write into the slice they are given:
// repository reads share the backing array with the stored record, so an
// in-place edit would leak into it before UpdateStudent commits.

func removeCycle(payments []PaymentRecord, month time.Month, year int) []PaymentRecord {
	kept := make([]PaymentRecord, 0, len(payments))
	for _, p := range payments {
		if !(p.Month == month && p.Year == year) {
			kept = append(kept, p)
		}
	}
	return kept
}

func upsertCycle(payments []PaymentRecord, rec PaymentRecord) []PaymentRecord {
	out := make([]PaymentRecord, len(payments), len(payments)+1)
	copy(out, payments)
	if i := cycleIndex(out, rec.Month, rec.Year); i >= 0 {
		out[i] = rec
		return out
	}
	return append(out, rec)
}
