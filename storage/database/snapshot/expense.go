package snapshotdb

import (
	"sort"

	"github.com/jmstudio/fitmanage/core/expense"
)

type expenseRepository struct {
	db *DB
}

func NewExpenseRepository(db *DB) expense.Repository {
	return &expenseRepository{db: db}
}

func (repo *expenseRepository) snapshot() []expense.Expense {
	expenses := make([]expense.Expense, 0, len(repo.db.expense.table))
	for _, e := range repo.db.expense.table {
		expenses = append(expenses, *e)
	}
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.Before(expenses[j].Date)
		}
		return expenses[i].ID < expenses[j].ID
	})
	return expenses
}

func (repo *expenseRepository) flush() error {
	return repo.db.flush(expensesFile, repo.snapshot())
}

func (repo *expenseRepository) CreateExpense(e expense.Expense) (expense.Expense, error) {
	repo.db.expense.Lock()
	defer repo.db.expense.Unlock()

	repo.db.expense.table[e.ID] = &e
	return e, repo.flush()
}

func (repo *expenseRepository) QueryAllExpenses() ([]expense.Expense, error) {
	repo.db.expense.RLock()
	defer repo.db.expense.RUnlock()
	return repo.snapshot(), nil
}

func (repo *expenseRepository) GetExpenseByID(id string) (expense.Expense, error) {
	repo.db.expense.RLock()
	defer repo.db.expense.RUnlock()

	if e, ok := repo.db.expense.table[id]; ok {
		return *e, nil
	}
	return expense.Expense{}, expense.ErrNotFound
}

func (repo *expenseRepository) UpdateExpense(e expense.Expense) (expense.Expense, error) {
	repo.db.expense.Lock()
	defer repo.db.expense.Unlock()

	if _, ok := repo.db.expense.table[e.ID]; !ok {
		return expense.Expense{}, expense.ErrNotFound
	}
	repo.db.expense.table[e.ID] = &e
	return e, repo.flush()
}

func (repo *expenseRepository) DeleteExpensesByID(ids ...string) error {
	repo.db.expense.Lock()
	defer repo.db.expense.Unlock()

	for _, id := range ids {
		delete(repo.db.expense.table, id)
	}
	return repo.flush()
}
