package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
	logsvc "github.com/jmstudio/fitmanage/services/logger"
	workoutsvc "github.com/jmstudio/fitmanage/services/workout"
	snapshotdb "github.com/jmstudio/fitmanage/storage/database/snapshot"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	rollbarLogger := logsvc.NewRollbarLogger(logger, core.Conf)
	rollbarLogger.Enable(false)

	// set up DB
	db, err := snapshotdb.Open(filepath.Join(core.Conf.WorkDir, core.Conf.DataDir), rollbarLogger)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		staffRepo:  snapshotdb.NewStaffRepository(db),
		studentSvc: student.NewService(snapshotdb.NewStudentRepository(db), workoutsvc.NewDummyService()),
		teacherSvc: teacher.NewService(snapshotdb.NewTeacherRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
