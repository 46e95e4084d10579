package student

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jmstudio/fitmanage/core"
)

// Status is a student's enrollment standing.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// PaymentStatus is the state of a single billing cycle record.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// PaymentRecord marks one (month, year) billing cycle of a Student. It is a
// monthly flag, not a timestamped transaction; at most one record exists per
// cycle.
type PaymentRecord struct {
	Month   time.Month    `json:"month"`
	Year    int           `json:"year"`
	Status  PaymentStatus `json:"status"`
	Receipt string        `json:"receipt,omitempty"` // opaque embedded image payload
}

// WorkoutPlan is a generated weekly workout prescription kept on the
// student's record.
type WorkoutPlan struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Goal string    `json:"goal"`
	Plan string    `json:"plan"` // Markdown
}

type Student struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	NationalID   string          `json:"national_id,omitempty"`
	BirthDate    time.Time       `json:"birth_date"` // only month and day are meaningful
	MonthlyFee   float64         `json:"monthly_fee"`
	BillingDay   int             `json:"billing_day"` // day-of-month the fee is due
	ClassTime    string          `json:"class_time"`  // empty = unassigned
	JoinDate     time.Time       `json:"join_date"`
	Status       Status          `json:"status"`
	Observations string          `json:"observations,omitempty"`
	Payments     []PaymentRecord `json:"payments,omitempty"`
	Workouts     []WorkoutPlan   `json:"workouts,omitempty"`
}

func (s Student) IsActive() bool   { return s.Status == StatusActive }
func (s Student) IsAssigned() bool { return s.ClassTime != "" }

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	Name         string    `json:"name" validate:"required"`
	Phone        string    `json:"phone" validate:"required"`
	NationalID   string    `json:"national_id"`
	BirthDate    time.Time `json:"birth_date"`
	MonthlyFee   float64   `json:"monthly_fee" validate:"gte=0"`
	BillingDay   int       `json:"billing_day" validate:"required,min=1,max=31"`
	ClassTime    string    `json:"class_time" validate:"omitempty,classhour"`
	JoinDate     time.Time `json:"join_date"`
	Status       Status    `json:"status" validate:"omitempty,oneof=active inactive pending"`
	Observations string    `json:"observations"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Phone = core.CleanString(ns.Phone)
	ns.ClassTime = core.CleanString(ns.ClassTime)
	ns.Observations = core.CleanString(ns.Observations)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. Payment and workout history are managed through their own
// operations and are never replaced by an edit.
type UpdateStudent struct {
	Name         string    `json:"name" validate:"required"`
	Phone        string    `json:"phone" validate:"required"`
	NationalID   string    `json:"national_id"`
	BirthDate    time.Time `json:"birth_date"`
	MonthlyFee   float64   `json:"monthly_fee" validate:"gte=0"`
	BillingDay   int       `json:"billing_day" validate:"required,min=1,max=31"`
	ClassTime    string    `json:"class_time" validate:"omitempty,classhour"`
	Status       Status    `json:"status" validate:"required,oneof=active inactive pending"`
	Observations string    `json:"observations"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	us.Phone = core.CleanString(us.Phone)
	us.ClassTime = core.CleanString(us.ClassTime)
	us.Observations = core.CleanString(us.Observations)
	return validate.Struct(us)
}
