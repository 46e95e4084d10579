package dummydb

import (
	"github.com/jmstudio/fitmanage/core/student"
)

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		students = append(students, *s)
	}
	return students
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(s student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[s.ID]; !ok {
		return student.Student{}, student.ErrNotFound
	}
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *studentRepository) DeleteStudentsByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

func (repo *studentRepository) ReplaceAllStudents(students []student.Student) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = make(map[string]*student.Student, len(students))
	for i := range students {
		s := students[i]
		repo.db.table[s.ID] = &s
	}
	return nil
}
