package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jmstudio/fitmanage/core/staff"
	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
)

func CreateStaff(
	t *testing.T,
	repo staff.Repository,
	name, uname, email, pwd string,
	isActive bool,
	createdAt ...time.Time,
) staff.Account {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	acct := staff.Account{
		ID:        uuid.New().String(),
		Name:      name,
		Username:  uname,
		Email:     email,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := acct.SetPassword(pwd); err != nil {
			t.Fatalf("CreateStaff() failed: %v", err)
		}
	}
	acct, err := repo.CreateAccount(acct)
	if err != nil {
		t.Fatalf("CreateStaff() failed: %v", err)
	}
	return acct
}

func CreateStudent(
	t *testing.T,
	repo student.Repository,
	name, phone, classTime string,
	fee float64,
	billingDay int,
	status student.Status,
) student.Student {
	s := student.Student{
		ID:         uuid.New().String(),
		Name:       name,
		Phone:      phone,
		MonthlyFee: fee,
		BillingDay: billingDay,
		ClassTime:  classTime,
		JoinDate:   time.Now(),
		Status:     status,
	}
	s, err := repo.CreateStudent(s)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}

func CreateTeacher(
	t *testing.T,
	repo teacher.Repository,
	name, specialty, phone string,
	salary float64,
) teacher.Teacher {
	tch := teacher.Teacher{
		ID:        uuid.New().String(),
		Name:      name,
		Specialty: specialty,
		Phone:     phone,
		Salary:    salary,
		HireDate:  time.Now(),
	}
	tch, err := repo.CreateTeacher(tch)
	if err != nil {
		t.Fatalf("CreateTeacher() failed: %v", err)
	}
	return tch
}
