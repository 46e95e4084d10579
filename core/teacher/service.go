package teacher

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound = errors.New("teacher not found")
)

type (
	Repository interface {
		CreateTeacher(t Teacher) (Teacher, error)
		QueryAllTeachers() ([]Teacher, error)
		GetTeacherByID(id string) (Teacher, error)
		UpdateTeacher(t Teacher) (Teacher, error)
		DeleteTeachersByID(ids ...string) error
		ReplaceAllTeachers(teachers []Teacher) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nt NewTeacher, now time.Time) (Teacher, error) {
	hireDate := nt.HireDate
	if hireDate.IsZero() {
		hireDate = now
	}
	t := Teacher{
		ID:        uuid.New().String(),
		Name:      nt.Name,
		Specialty: nt.Specialty,
		Phone:     nt.Phone,
		Email:     nt.Email,
		Salary:    nt.Salary,
		HireDate:  hireDate,
	}
	return svc.repo.CreateTeacher(t)
}

func (svc *Service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

func (svc *Service) GetByID(id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(id)
}

func (svc *Service) Update(id string, ut UpdateTeacher) (Teacher, error) {
	t, err := svc.repo.GetTeacherByID(id)
	if err != nil {
		return Teacher{}, err
	}
	t.Name = ut.Name
	t.Specialty = ut.Specialty
	t.Phone = ut.Phone
	t.Email = ut.Email
	t.Salary = ut.Salary
	if !ut.HireDate.IsZero() {
		t.HireDate = ut.HireDate
	}
	return svc.repo.UpdateTeacher(t)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteTeachersByID(ids...)
}

func (svc *Service) ReplaceAll(teachers []Teacher) error {
	return svc.repo.ReplaceAllTeachers(teachers)
}
