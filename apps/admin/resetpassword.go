package main

import (
	"time"

	"github.com/jmstudio/fitmanage/core"
)

func (cli *commandLine) resetPassword(uname, pwd string) error {
	acct, err := cli.staffRepo.GetAccountByUsernameOrEmail(core.CleanString(uname, true /* lower */))
	if err != nil {
		return err
	}
	if err := acct.SetPassword(pwd); err != nil {
		return err
	}
	acct.UpdatedAt = time.Now().UTC()
	if _, err := cli.staffRepo.UpdateAccount(acct); err != nil {
		return err
	}
	return nil
}
