package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/jmstudio/fitmanage/core/staff"
	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	staffRepo  staff.Repository
	studentSvc *student.Service
	teacherSvc *teacher.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addstaff -username USERNAME [-name NAME] [-email EMAIL] - create or update a staff account")
	fmt.Println("  resetpassword -username USERNAME|EMAIL - reset a staff account's password")
	fmt.Println("  export -out FILE - dump the student and teacher rosters to a JSON backup")
	fmt.Println("  import -file FILE - replace the student and teacher rosters from a JSON backup")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addStaffCmd := flag.NewFlagSet("addstaff", flag.ExitOnError)
	addStaffName := addStaffCmd.String("name", "", "The account holder's display name.")
	addStaffUname := addStaffCmd.String("username", "", "The account's username. The password will be prompted next.")
	addStaffEmail := addStaffCmd.String("email", "", "The account's email address.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordUname := resetPasswordCmd.String("username", "", "The account's username or email. The password will be prompted next.")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOut := exportCmd.String("out", "", "Path of the backup file to write.")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "Path of the backup file to read.")

	switch args[1] {
	case "addstaff":
		if err := addStaffCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addStaffUname == "" {
			addStaffCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			addStaffCmd.Usage()
			return errHelp
		}
		return cli.addStaff(*addStaffName, *addStaffUname, *addStaffEmail, pwd)
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordUname == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordUname, pwd)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportOut)
	case "import":
		if err := importCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importBackup(*importFile)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
