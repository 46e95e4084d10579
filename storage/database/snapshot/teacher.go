package snapshotdb

import (
	"sort"

	"github.com/jmstudio/fitmanage/core/teacher"
)

type teacherRepository struct {
	db *DB
}

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) snapshot() []teacher.Teacher {
	teachers := make([]teacher.Teacher, 0, len(repo.db.teacher.table))
	for _, t := range repo.db.teacher.table {
		teachers = append(teachers, *t)
	}
	sort.Slice(teachers, func(i, j int) bool {
		if teachers[i].Name != teachers[j].Name {
			return teachers[i].Name < teachers[j].Name
		}
		return teachers[i].ID < teachers[j].ID
	})
	return teachers
}

func (repo *teacherRepository) flush() error {
	return repo.db.flush(teachersFile, repo.snapshot())
}

func (repo *teacherRepository) CreateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.teacher.Lock()
	defer repo.db.teacher.Unlock()

	repo.db.teacher.table[t.ID] = &t
	return t, repo.flush()
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	repo.db.teacher.RLock()
	defer repo.db.teacher.RUnlock()
	return repo.snapshot(), nil
}

func (repo *teacherRepository) GetTeacherByID(id string) (teacher.Teacher, error) {
	repo.db.teacher.RLock()
	defer repo.db.teacher.RUnlock()

	if t, ok := repo.db.teacher.table[id]; ok {
		return *t, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) UpdateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.teacher.Lock()
	defer repo.db.teacher.Unlock()

	if _, ok := repo.db.teacher.table[t.ID]; !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	repo.db.teacher.table[t.ID] = &t
	return t, repo.flush()
}

func (repo *teacherRepository) DeleteTeachersByID(ids ...string) error {
	repo.db.teacher.Lock()
	defer repo.db.teacher.Unlock()

	for _, id := range ids {
		delete(repo.db.teacher.table, id)
	}
	return repo.flush()
}

func (repo *teacherRepository) ReplaceAllTeachers(teachers []teacher.Teacher) error {
	repo.db.teacher.Lock()
	defer repo.db.teacher.Unlock()

	repo.db.teacher.table = make(map[string]*teacher.Teacher, len(teachers))
	for i := range teachers {
		t := teachers[i]
		repo.db.teacher.table[t.ID] = &t
	}
	return repo.flush()
}
