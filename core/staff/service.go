package staff

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jmstudio/fitmanage/core"
)

var (
	// errors
	ErrNotFound       = errors.New("staff account not found")
	ErrEmailExists    = errors.New("an account with this email already exists")
	ErrUsernameExists = errors.New("an account with this username already exists")
)

type (
	Repository interface {
		CheckUsernameUniqueness(username, email string, excluded ...Account) error
		CreateAccount(a Account) (Account, error)
		QueryAllAccounts() ([]Account, error)
		GetAccountByID(id string) (Account, error)
		GetAccountByUsernameOrEmail(username string) (Account, error)
		UpdateAccount(a Account) (Account, error)
		DeleteAccountsByID(ids ...string) error
		ReplaceAllAccounts(accounts []Account) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckUniqueness(uname, email string, excluded ...Account) error {
	if err := svc.repo.CheckUsernameUniqueness(uname, email, excluded...); err != nil {
		var field string
		switch err {
		case ErrUsernameExists:
			field = "username"
		case ErrEmailExists:
			field = "email"
		default:
			return err
		}
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return nil
}

func (svc *Service) Create(na NewAccount) (Account, error) {
	now := time.Now().UTC()
	acct := Account{
		ID:        uuid.New().String(),
		Name:      na.Name,
		Username:  na.Username,
		Email:     na.Email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := acct.SetPassword(na.Password); err != nil {
		return Account{}, err
	}
	return svc.repo.CreateAccount(acct)
}

func (svc *Service) QueryAll() ([]Account, error) {
	return svc.repo.QueryAllAccounts()
}

func (svc *Service) GetByID(id string) (Account, error) {
	return svc.repo.GetAccountByID(id)
}

func (svc *Service) GetByUsernameOrEmail(uname string) (Account, error) {
	return svc.repo.GetAccountByUsernameOrEmail(core.CleanString(uname, true /* lower */))
}

func (svc *Service) SetLastLogin(acct Account) (Account, error) {
	acct.LastLogin = time.Now().UTC()
	return svc.repo.UpdateAccount(acct)
}

func (svc *Service) SetPassword(acct Account, pwd string) (Account, error) {
	if err := acct.SetPassword(pwd); err != nil {
		return Account{}, err
	}
	acct.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateAccount(acct)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteAccountsByID(ids...)
}
