package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core/company"
)

type companyApi struct {
	svc      *company.Service
	validate *validator.Validate
}

func registerCompanyAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *company.Service, validate *validator.Validate) {
	api := companyApi{svc: svc, validate: validate}

	ag := g.Group("/company", jwt)
	ag.GET("", api.retrieve)
	ag.PUT("", api.update)
}

// Handlers

func (api *companyApi) retrieve(ctx echo.Context) error {
	p, err := api.svc.Get()
	if err != nil {
		return errors.Wrap(err, "finding company profile")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *companyApi) update(ctx echo.Context) error {
	var data company.UpdateProfile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := api.svc.Update(data, time.Now())
	if err != nil {
		return errors.Wrap(err, "updating company profile")
	}
	return ctx.JSON(http.StatusOK, p)
}
