// Package snapshotdb is the persistence mirror: an in-memory record store
// whose collections are rewritten in full to one JSON file each after every
// mutation, and loaded once at open.
//
// The policy is full-snapshot, last-writer-wins. There is no merge, no
// optimistic concurrency check and no versioning: if two processes share a
// data directory, the last write physically committed wins. This is an
// accepted constraint of the single-operator deployment, not a bug.
package snapshotdb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/company"
	"github.com/jmstudio/fitmanage/core/expense"
	"github.com/jmstudio/fitmanage/core/staff"
	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
)

// collection file names, the "keys" of the store
const (
	studentsFile = "students.json"
	teachersFile = "teachers.json"
	expensesFile = "expenses.json"
	staffFile    = "staff.json"
	companyFile  = "company.json"
)

type (
	DB struct {
		dir    string
		logger core.Logger

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

// Open loads every collection from dir. An absent or malformed snapshot is
// not an error: the collection starts empty and a diagnostic is logged.
func Open(dir string, logger core.Logger) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data dir %s", dir)
	}

	db := &DB{
		dir:     dir,
		logger:  logger,
		student: &studentTable{table: make(map[string]*student.Student)},
		teacher: &teacherTable{table: make(map[string]*teacher.Teacher)},
		expense: &expenseTable{table: make(map[string]*expense.Expense)},
		staff:   &staffTable{table: make(map[string]*staff.Account)},
		company: &companyTable{},
	}
	db.load()
	return db, nil
}

func (db *DB) load() {
	var students []student.Student
	if db.loadInto(studentsFile, &students) {
		for i := range students {
			s := students[i]
			db.student.table[s.ID] = &s
		}
	}

	var teachers []teacher.Teacher
	if db.loadInto(teachersFile, &teachers) {
		for i := range teachers {
			t := teachers[i]
			db.teacher.table[t.ID] = &t
		}
	}

	var expenses []expense.Expense
	if db.loadInto(expensesFile, &expenses) {
		for i := range expenses {
			e := expenses[i]
			db.expense.table[e.ID] = &e
		}
	}

	var accounts []persistedAccount
	if db.loadInto(staffFile, &accounts) {
		for i := range accounts {
			a := accounts[i].Account
			a.PasswordHash = accounts[i].PasswordHash
			db.staff.table[a.ID] = &a
		}
	}

	var profile company.Profile
	if db.loadInto(companyFile, &profile) {
		db.company.profile = &profile
	}
}

// loadInto reads one snapshot file into v. Returns false when the file is
// absent or its payload does not parse into v's shape.
func (db *DB) loadInto(name string, v interface{}) bool {
	data, err := os.ReadFile(filepath.Join(db.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			db.logger.Warn("snapshot: cannot read "+name+", starting empty", err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		db.logger.Warn("snapshot: discarding malformed "+name, err)
		return false
	}
	return true
}

// flush rewrites the whole collection under name. The temp-file + rename
// dance keeps a snapshot from ever being observed half-written.
func (db *DB) flush(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing "+name)
	}
	path := filepath.Join(db.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "writing "+name)
	}
	return errors.Wrap(os.Rename(tmp, path), "committing "+name)
}
