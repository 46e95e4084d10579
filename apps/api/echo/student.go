package echoapi

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *student.Service, validate *validator.Validate) {
	api := studentApi{svc: svc, validate: validate}

	ag := g.Group("/students", jwt)
	ag.POST("", api.create)
	ag.GET("", api.query)
	ag.GET("/export", api.exportCSV)

	// detail endpoints
	dg := ag.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/unassign", api.unassign)
	dg.POST("/payments/toggle", api.togglePayment)
	dg.POST("/payments/receipt", api.attachReceipt)
	dg.POST("/workouts", api.generateWorkout)
}

// Handlers

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	s, err := api.svc.Create(data, time.Now())
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *studentApi) query(ctx echo.Context) error {
	students, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	s, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding student by ID")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) update(ctx echo.Context) error {
	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	s, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "finding student by ID")
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) unassign(ctx echo.Context) error {
	s, err := api.svc.Unassign(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "unassigning student")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) togglePayment(ctx echo.Context) error {
	var data PaymentCycleRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PaymentCycleRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	s, err := api.svc.TogglePayment(ctx.Param("id"), time.Month(data.Month), data.Year)
	if err != nil {
		return errors.Wrap(err, "toggling payment")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) attachReceipt(ctx echo.Context) error {
	var data ReceiptRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ReceiptRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	s, err := api.svc.AttachReceipt(ctx.Param("id"), time.Month(data.Month), data.Year, data.Receipt)
	if err != nil {
		return errors.Wrap(err, "attaching receipt")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) generateWorkout(ctx echo.Context) error {
	var data WorkoutRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to WorkoutRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	plan, err := api.svc.GenerateWorkout(ctx.Request().Context(), ctx.Param("id"), data.Goal, time.Now())
	if err != nil {
		return errors.Wrap(err, "generating workout plan")
	}
	return ctx.JSON(http.StatusOK, plan)
}

func (api *studentApi) exportCSV(ctx echo.Context) error {
	students, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{
		"name", "phone", "national_id", "birth_date", "monthly_fee",
		"billing_day", "class_time", "join_date", "status",
	})
	for _, s := range students {
		_ = w.Write([]string{
			s.Name,
			s.Phone,
			s.NationalID,
			formatDate(s.BirthDate),
			fmt.Sprintf("%.2f", s.MonthlyFee),
			fmt.Sprintf("%d", s.BillingDay),
			s.ClassTime,
			formatDate(s.JoinDate),
			string(s.Status),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "writing students CSV")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="students.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

type (
	PaymentCycleRequest struct {
		Month int `json:"month" validate:"required,min=1,max=12"`
		Year  int `json:"year" validate:"required,min=2000"`
	}

	ReceiptRequest struct {
		Month   int    `json:"month" validate:"required,min=1,max=12"`
		Year    int    `json:"year" validate:"required,min=2000"`
		Receipt string `json:"receipt" validate:"required"`
	}

	WorkoutRequest struct {
		Goal string `json:"goal" validate:"required"`
	}
)

func (pr *PaymentCycleRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(pr)
}

func (rr *ReceiptRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(rr)
}

func (wr *WorkoutRequest) Validate(validate *validator.Validate) error {
	wr.Goal = core.CleanString(wr.Goal)
	return validate.Struct(wr)
}
