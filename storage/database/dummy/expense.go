package dummydb

import (
	"github.com/jmstudio/fitmanage/core/expense"
)

type expenseRepository struct {
	db *expenseTable
}

func NewExpenseRepository(db *DB) expense.Repository {
	return &expenseRepository{db: db.expense}
}

func (repo *expenseRepository) CreateExpense(e expense.Expense) (expense.Expense, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[e.ID] = &e
	return e, nil
}

func (repo *expenseRepository) QueryAllExpenses() ([]expense.Expense, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	expenses := make([]expense.Expense, 0, len(repo.db.table))
	for _, e := range repo.db.table {
		expenses = append(expenses, *e)
	}
	return expenses, nil
}

func (repo *expenseRepository) GetExpenseByID(id string) (expense.Expense, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if e, ok := repo.db.table[id]; ok {
		return *e, nil
	}
	return expense.Expense{}, expense.ErrNotFound
}

func (repo *expenseRepository) UpdateExpense(e expense.Expense) (expense.Expense, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[e.ID]; !ok {
		return expense.Expense{}, expense.ErrNotFound
	}
	repo.db.table[e.ID] = &e
	return e, nil
}

func (repo *expenseRepository) DeleteExpensesByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
