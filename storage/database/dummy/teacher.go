package dummydb

import (
	"github.com/jmstudio/fitmanage/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teacher}
}

func (repo *teacherRepository) query() []teacher.Teacher {
	teachers := make([]teacher.Teacher, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		teachers = append(teachers, *t)
	}
	return teachers
}

func (repo *teacherRepository) CreateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *teacherRepository) GetTeacherByID(id string) (teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) UpdateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[t.ID]; !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *teacherRepository) DeleteTeachersByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

func (repo *teacherRepository) ReplaceAllTeachers(teachers []teacher.Teacher) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = make(map[string]*teacher.Teacher, len(teachers))
	for i := range teachers {
		t := teachers[i]
		repo.db.table[t.ID] = &t
	}
	return nil
}
