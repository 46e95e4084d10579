package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/expense"
	"github.com/jmstudio/fitmanage/core/report"
	"github.com/jmstudio/fitmanage/core/student"
)

type reportApi struct {
	studentSvc *student.Service
	expenseSvc *expense.Service
}

func registerReportAPI(g *echo.Group, jwt echo.MiddlewareFunc, studentSvc *student.Service, expenseSvc *expense.Service) {
	api := reportApi{studentSvc: studentSvc, expenseSvc: expenseSvc}

	ag := g.Group("/reports", jwt)
	ag.GET("/dashboard", api.dashboard)
	ag.GET("/financial", api.financial)
	ag.GET("/payments", api.payments)
}

// Handlers

func (api *reportApi) dashboard(ctx echo.Context) error {
	students, err := api.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, report.Dashboard(students))
}

func (api *reportApi) financial(ctx echo.Context) error {
	month, year, err := bindCycle(ctx)
	if err != nil {
		return err
	}

	students, err := api.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	expenses, err := api.expenseSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying expenses")
	}
	return ctx.JSON(http.StatusOK, report.Financial(students, expenses, month, year))
}

func (api *reportApi) payments(ctx echo.Context) error {
	month, year, err := bindCycle(ctx)
	if err != nil {
		return err
	}

	students, err := api.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}

	switch status := ctx.QueryParam("status"); status {
	case "paid":
		return ctx.JSON(http.StatusOK, report.PaidForCycle(students, month, year))
	case "", "pending":
		return ctx.JSON(http.StatusOK, report.PendingForCycle(students, month, year))
	default:
		return core.NewValidationError(nil, core.FieldError{Field: "status", Error: "must be one of: paid, pending"})
	}
}

// bindCycle reads the (month, year) query params, defaulting to the current
// cycle.
func bindCycle(ctx echo.Context) (time.Month, int, error) {
	now := time.Now()
	month := now.Month()
	year := now.Year()

	if v := ctx.QueryParam("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, core.NewValidationError(nil, core.FieldError{Field: "month", Error: "must be a number between 1 and 12"})
		}
		month = time.Month(m)
	}
	if v := ctx.QueryParam("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 2000 {
			return 0, 0, core.NewValidationError(nil, core.FieldError{Field: "year", Error: "must be a valid year"})
		}
		year = y
	}
	return month, year, nil
}
