package company

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jmstudio/fitmanage/core"
)

var (
	// errors
	ErrNotRegistered = errors.New("company profile not registered")
)

// Profile is the studio's own registration data, shown on reports and used
// as the sender identity.
type Profile struct {
	Name         string    `json:"name"`
	Document     string    `json:"document"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PrimaryColor string    `json:"primary_color"`
	RegisteredAt time.Time `json:"registered_at"`
}

// UpdateProfile defines the editable profile fields.
type UpdateProfile struct {
	Name         string `json:"name" validate:"required"`
	Document     string `json:"document"`
	Address      string `json:"address"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	PrimaryColor string `json:"primary_color" validate:"omitempty,hexcolor"`
}

func (up *UpdateProfile) Validate(validate *validator.Validate) error {
	up.Name = core.CleanString(up.Name)
	up.Phone = core.CleanString(up.Phone)
	up.Email = core.CleanString(up.Email, true /* lower */)
	return validate.Struct(up)
}

type (
	Repository interface {
		GetProfile() (Profile, error)
		SaveProfile(p Profile) (Profile, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get() (Profile, error) {
	return svc.repo.GetProfile()
}

func (svc *Service) Update(up UpdateProfile, now time.Time) (Profile, error) {
	p, err := svc.repo.GetProfile()
	if err != nil && err != ErrNotRegistered {
		return Profile{}, err
	}
	if err == ErrNotRegistered {
		p.RegisteredAt = now
	}
	p.Name = up.Name
	p.Document = up.Document
	p.Address = up.Address
	p.Phone = up.Phone
	p.Email = up.Email
	p.PrimaryColor = up.PrimaryColor
	return svc.repo.SaveProfile(p)
}
