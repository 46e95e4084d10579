package dummydb

import (
	"sync"

	"github.com/jmstudio/fitmanage/core/company"
	"github.com/jmstudio/fitmanage/core/expense"
	"github.com/jmstudio/fitmanage/core/staff"
	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
)

// DB is a purely in-memory record store used in tests; nothing is persisted.
type (
	DB struct {
		student *studentTable
		teacher *teacherTable
		expense *expenseTable
		staff   *staffTable
		company *companyTable
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*student.Student
	}

	teacherTable struct {
		sync.RWMutex
		table map[string]*teacher.Teacher
	}

	expenseTable struct {
		sync.RWMutex
		table map[string]*expense.Expense
	}

	staffTable struct {
		sync.RWMutex
		table map[string]*staff.Account
	}

	companyTable struct {
		sync.RWMutex
		profile *company.Profile
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{table: make(map[string]*student.Student)},
		teacher: &teacherTable{table: make(map[string]*teacher.Teacher)},
		expense: &expenseTable{table: make(map[string]*expense.Expense)},
		staff:   &staffTable{table: make(map[string]*staff.Account)},
		company: &companyTable{},
	}
	return db, nil
}
