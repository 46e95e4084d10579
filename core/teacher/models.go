package teacher

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jmstudio/fitmanage/core"
)

// Teacher is a roster entry for gym staff giving classes. Teachers are not
// bound to specific class hours.
type Teacher struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Salary    float64   `json:"salary"`
	HireDate  time.Time `json:"hire_date"`
}

// NewTeacher contains information needed to add a Teacher to the roster.
type NewTeacher struct {
	Name      string    `json:"name" validate:"required"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone" validate:"required"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Salary    float64   `json:"salary" validate:"gte=0"`
	HireDate  time.Time `json:"hire_date"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Phone = core.CleanString(nt.Phone)
	nt.Specialty = core.CleanString(nt.Specialty)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	return validate.Struct(nt)
}

// UpdateTeacher defines what information may be provided to modify an
// existing Teacher.
type UpdateTeacher struct {
	Name      string    `json:"name" validate:"required"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone" validate:"required"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Salary    float64   `json:"salary" validate:"gte=0"`
	HireDate  time.Time `json:"hire_date"`
}

func (ut *UpdateTeacher) Validate(validate *validator.Validate) error {
	ut.Name = core.CleanString(ut.Name)
	ut.Phone = core.CleanString(ut.Phone)
	ut.Specialty = core.CleanString(ut.Specialty)
	ut.Email = core.CleanString(ut.Email, true /* lower */)
	return validate.Struct(ut)
}
