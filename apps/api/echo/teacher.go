package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core/teacher"
)

type teacherApi struct {
	svc      *teacher.Service
	validate *validator.Validate
}

func registerTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *teacher.Service, validate *validator.Validate) {
	api := teacherApi{svc: svc, validate: validate}

	ag := g.Group("/teachers", jwt)
	ag.POST("", api.create)
	ag.GET("", api.query)

	dg := ag.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *teacherApi) create(ctx echo.Context) error {
	var data teacher.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.Create(data, time.Now())
	if err != nil {
		return errors.Wrap(err, "creating teacher")
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *teacherApi) query(ctx echo.Context) error {
	teachers, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	if teachers == nil {
		teachers = []teacher.Teacher{}
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *teacherApi) retrieve(ctx echo.Context) error {
	t, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding teacher by ID")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) update(ctx echo.Context) error {
	var data teacher.UpdateTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTeacher")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating teacher")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "finding teacher by ID")
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	return ctx.NoContent(http.StatusNoContent)
}
