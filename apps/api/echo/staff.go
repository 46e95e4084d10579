package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/staff"
)

type staffApi struct {
	svc      *staff.Service
	validate *validator.Validate
}

func registerStaffAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *staff.Service, validate *validator.Validate) {
	api := staffApi{svc: svc, validate: validate}

	sg := g.Group("/staff")

	// un-authed endpoints
	sg.POST("/login", api.login)

	// authed endpoints
	ag := sg.Group("", jwt)
	ag.POST("/token-refresh", api.refreshToken)
	ag.POST("/register", api.create)
	ag.GET("", api.query)
	ag.GET("/me", api.retrieveSelf)
}

// Handlers

func (api *staffApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := authenticate(data.Username, data.Password, api.svc)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}
	token, err := GenerateToken(claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *staffApi) refreshToken(ctx echo.Context) error {
	token, err := refreshToken(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *staffApi) create(ctx echo.Context) error {
	var data staff.NewAccount
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAccount")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	acct, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating account")
	}
	return ctx.JSON(http.StatusCreated, acct)
}

func (api *staffApi) query(ctx echo.Context) error {
	accounts, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying accounts")
	}
	if accounts == nil {
		accounts = []staff.Account{}
	}
	return ctx.JSON(http.StatusOK, accounts)
}

func (api *staffApi) retrieveSelf(ctx echo.Context) error {
	acct, err := getContextAccount(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context account")
	}
	return ctx.JSON(http.StatusOK, acct)
}

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Username = core.CleanString(lr.Username, true /* lower */)
	return validate.Struct(lr)
}
