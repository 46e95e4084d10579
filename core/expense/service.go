package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound = errors.New("expense not found")
)

type (
	Repository interface {
		CreateExpense(e Expense) (Expense, error)
		QueryAllExpenses() ([]Expense, error)
		GetExpenseByID(id string) (Expense, error)
		UpdateExpense(e Expense) (Expense, error)
		DeleteExpensesByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ne NewExpense, now time.Time) (Expense, error) {
	date := ne.Date
	if date.IsZero() {
		date = now
	}
	e := Expense{
		ID:          uuid.New().String(),
		Description: ne.Description,
		Amount:      ne.Amount,
		Date:        date,
		Category:    ne.Category,
	}
	return svc.repo.CreateExpense(e)
}

func (svc *Service) QueryAll() ([]Expense, error) {
	return svc.repo.QueryAllExpenses()
}

func (svc *Service) GetByID(id string) (Expense, error) {
	return svc.repo.GetExpenseByID(id)
}

func (svc *Service) Update(id string, ue UpdateExpense) (Expense, error) {
	e, err := svc.repo.GetExpenseByID(id)
	if err != nil {
		return Expense{}, err
	}
	e.Description = ue.Description
	e.Amount = ue.Amount
	e.Category = ue.Category
	if !ue.Date.IsZero() {
		e.Date = ue.Date
	}
	return svc.repo.UpdateExpense(e)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteExpensesByID(ids...)
}

// MonthTotal sums the ledger entries dated inside the (month, year) cycle.
func MonthTotal(expenses []Expense, month time.Month, year int) float64 {
	var total float64
	for _, e := range expenses {
		if e.Date.Month() == month && e.Date.Year() == year {
			total += e.Amount
		}
	}
	return total
}
