package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core/expense"
)

type expenseApi struct {
	svc      *expense.Service
	validate *validator.Validate
}

func registerExpenseAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *expense.Service, validate *validator.Validate) {
	api := expenseApi{svc: svc, validate: validate}

	ag := g.Group("/expenses", jwt)
	ag.POST("", api.create)
	ag.GET("", api.query)

	dg := ag.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *expenseApi) create(ctx echo.Context) error {
	var data expense.NewExpense
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExpense")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	e, err := api.svc.Create(data, time.Now())
	if err != nil {
		return errors.Wrap(err, "creating expense")
	}
	return ctx.JSON(http.StatusCreated, e)
}

func (api *expenseApi) query(ctx echo.Context) error {
	expenses, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying expenses")
	}
	if expenses == nil {
		expenses = []expense.Expense{}
	}
	return ctx.JSON(http.StatusOK, expenses)
}

func (api *expenseApi) retrieve(ctx echo.Context) error {
	e, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding expense by ID")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *expenseApi) update(ctx echo.Context) error {
	var data expense.UpdateExpense
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateExpense")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	e, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating expense")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *expenseApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "finding expense by ID")
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting expense")
	}
	return ctx.NoContent(http.StatusNoContent)
}
