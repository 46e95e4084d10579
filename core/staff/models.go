package staff

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmstudio/fitmanage/core"
)

// Account is a gym operator login. Every account has full access; there is
// no role hierarchy in a single-tenant studio.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
	LastLogin    time.Time `json:"last_login"` // UTC
}

func (a *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *Account) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
}

// NewAccount contains information needed to create a new staff Account.
type NewAccount struct {
	Name            string `json:"name" validate:"required"`
	Username        string `json:"username" validate:"required,min=4,alphanum"`
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (na *NewAccount) Validate(validate *validator.Validate, svc *Service) error {
	na.Name = core.CleanString(na.Name)
	na.Username = core.CleanString(na.Username, true /* lower */)
	na.Email = core.CleanString(na.Email, true /* lower */)

	if err := validate.Struct(na); err != nil {
		return err
	}
	return svc.CheckUniqueness(na.Username, na.Email)
}
