package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/company"
	"github.com/jmstudio/fitmanage/core/expense"
	"github.com/jmstudio/fitmanage/core/staff"
	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
)

type (
	// ServerDeps regroups the server's dependencies.
	ServerDeps struct {
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator

		StudentSvc *student.Service
		TeacherSvc *teacher.Service
		ExpenseSvc *expense.Service
		StaffSvc   *staff.Service
		CompanySvc *company.Service
		EmailSvc   core.EmailService
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(context.Context) error
		Close() error
	}

	server struct {
		addr     string
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(addr string, deps ServerDeps) Server {
	s := &server{
		addr:     addr,
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !core.Conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = core.Conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerStaffAPI(v1, jwt, s.deps.StaffSvc, s.deps.Validate)
	registerStudentAPI(v1, jwt, s.deps.StudentSvc, s.deps.Validate)
	registerTeacherAPI(v1, jwt, s.deps.TeacherSvc, s.deps.Validate)
	registerExpenseAPI(v1, jwt, s.deps.ExpenseSvc, s.deps.Validate)
	registerScheduleAPI(v1, jwt, s.deps.StudentSvc)
	registerAgendaAPI(v1, jwt, s.deps.StudentSvc, s.deps.StaffSvc, s.deps.EmailSvc)
	registerReportAPI(v1, jwt, s.deps.StudentSvc, s.deps.ExpenseSvc)
	registerCompanyAPI(v1, jwt, s.deps.CompanySvc, s.deps.Validate)
	registerBackupAPI(v1, jwt, s.deps.StudentSvc, s.deps.TeacherSvc)
}

// signalShutdown triggers a graceful shutdown of the server.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) Start() {
	if err := s.app.Start(s.addr); err != nil {
		s.errs <- err
	}
}

func (s *server) Errors() <-chan error {
	return s.errs
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+core.Conf.AppName+" API!")
}
