package expense

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jmstudio/fitmanage/core"
)

// Category is the closed set of expense classifications.
type Category string

const (
	CategoryRent        Category = "rent"
	CategoryPower       Category = "power"
	CategoryMaintenance Category = "maintenance"
	CategoryMarketing   Category = "marketing"
	CategoryOther       Category = "other"
)

// Expense is one financial ledger entry, independent of the student and
// teacher rosters.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    Category  `json:"category"`
}

// NewExpense contains information needed to record an Expense.
type NewExpense struct {
	Description string    `json:"description" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	Date        time.Time `json:"date"`
	Category    Category  `json:"category" validate:"required,oneof=rent power maintenance marketing other"`
}

func (ne *NewExpense) Validate(validate *validator.Validate) error {
	ne.Description = core.CleanString(ne.Description)
	return validate.Struct(ne)
}

// UpdateExpense defines what information may be provided to modify an
// existing Expense.
type UpdateExpense struct {
	Description string    `json:"description" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	Date        time.Time `json:"date"`
	Category    Category  `json:"category" validate:"required,oneof=rent power maintenance marketing other"`
}

func (ue *UpdateExpense) Validate(validate *validator.Validate) error {
	ue.Description = core.CleanString(ue.Description)
	return validate.Struct(ue)
}
