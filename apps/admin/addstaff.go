package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/staff"
)

// addStaff updates or creates a staff.Account.
func (cli *commandLine) addStaff(name, uname, email, pwd string) error {
	uname = core.CleanString(uname, true /* lower */)
	email = core.CleanString(email, true /* lower */)
	now := time.Now().UTC()

	acct, err := cli.staffRepo.GetAccountByUsernameOrEmail(uname)
	if err != nil {
		if err != staff.ErrNotFound {
			return err
		}
		acct = staff.Account{
			ID:        uuid.New().String(),
			Username:  uname,
			CreatedAt: now,
		}
	}
	if name != "" {
		acct.Name = core.CleanString(name)
	}
	if email != "" {
		acct.Email = email
	}
	acct.IsActive = true
	acct.UpdatedAt = now
	if err := acct.SetPassword(pwd); err != nil {
		return err
	}

	if _, err := cli.staffRepo.UpdateAccount(acct); err != nil {
		if err != staff.ErrNotFound {
			return err
		}
		_, err = cli.staffRepo.CreateAccount(acct)
		return err
	}
	return nil
}
