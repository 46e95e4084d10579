package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/jmstudio/fitmanage/apps/api/echo"
	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/company"
	"github.com/jmstudio/fitmanage/core/expense"
	"github.com/jmstudio/fitmanage/core/staff"
	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
	emailsvc "github.com/jmstudio/fitmanage/services/email"
	logsvc "github.com/jmstudio/fitmanage/services/logger"
	workoutsvc "github.com/jmstudio/fitmanage/services/workout"
	snapshotdb "github.com/jmstudio/fitmanage/storage/database/snapshot"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		core.Conf,
	)
	logger.Enable(!core.Conf.Debug)

	// set up DB
	db, err := snapshotdb.Open(filepath.Join(core.Conf.WorkDir, core.Conf.DataDir), logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening snapshot store: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	var planGen core.PlanGenerator
	if core.Conf.Gemini.APIKey != "" {
		planGen = workoutsvc.NewGeminiService(logger)
	} else {
		planGen = workoutsvc.NewDummyService()
	}

	studentSvc := student.NewService(snapshotdb.NewStudentRepository(db), planGen)
	teacherSvc := teacher.NewService(snapshotdb.NewTeacherRepository(db))
	expenseSvc := expense.NewService(snapshotdb.NewExpenseRepository(db))
	staffSvc := staff.NewService(snapshotdb.NewStaffRepository(db))
	companySvc := company.NewService(snapshotdb.NewCompanyRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", core.Conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		core.Conf.Server.Addr,
		echoapi.ServerDeps{
			Logger:     logger,
			Validate:   validate,
			Translator: translator,
			StudentSvc: studentSvc,
			TeacherSvc: teacherSvc,
			ExpenseSvc: expenseSvc,
			StaffSvc:   staffSvc,
			CompanySvc: companySvc,
			EmailSvc:   mailSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
