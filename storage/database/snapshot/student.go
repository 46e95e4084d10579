package snapshotdb

import (
	"sort"

	"github.com/jmstudio/fitmanage/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

// snapshot returns the collection sorted by name for stable snapshot files.
// Callers must hold at least a read lock.
func (repo *studentRepository) snapshot() []student.Student {
	students := make([]student.Student, 0, len(repo.db.student.table))
	for _, s := range repo.db.student.table {
		students = append(students, *s)
	}
	sort.Slice(students, func(i, j int) bool {
		if students[i].Name != students[j].Name {
			return students[i].Name < students[j].Name
		}
		return students[i].ID < students[j].ID
	})
	return students
}

func (repo *studentRepository) flush() error {
	return repo.db.flush(studentsFile, repo.snapshot())
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()

	repo.db.student.table[s.ID] = &s
	return s, repo.flush()
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()
	return repo.snapshot(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()

	if s, ok := repo.db.student.table[id]; ok {
		return *s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(s student.Student) (student.Student, error) {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()

	if _, ok := repo.db.student.table[s.ID]; !ok {
		return student.Student{}, student.ErrNotFound
	}
	repo.db.student.table[s.ID] = &s
	return s, repo.flush()
}

func (repo *studentRepository) DeleteStudentsByID(ids ...string) error {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()

	for _, id := range ids {
		delete(repo.db.student.table, id)
	}
	return repo.flush()
}

func (repo *studentRepository) ReplaceAllStudents(students []student.Student) error {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()

	repo.db.student.table = make(map[string]*student.Student, len(students))
	for i := range students {
		s := students[i]
		repo.db.student.table[s.ID] = &s
	}
	return repo.flush()
}
