package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/schedule"
	"github.com/jmstudio/fitmanage/core/student"
)

type scheduleApi struct {
	studentSvc *student.Service
}

func registerScheduleAPI(g *echo.Group, jwt echo.MiddlewareFunc, studentSvc *student.Service) {
	api := scheduleApi{studentSvc: studentSvc}

	ag := g.Group("/schedule", jwt)
	ag.GET("/occupancy", api.occupancy)
	ag.GET("/occupancy/:slot", api.slotOccupancy)
}

// Handlers

func (api *scheduleApi) occupancy(ctx echo.Context) error {
	students, err := api.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, schedule.Occupancies(students))
}

func (api *scheduleApi) slotOccupancy(ctx echo.Context) error {
	slot := ctx.Param("slot")
	if !core.IsClassHour(slot) {
		return errHttpNotFound
	}
	students, err := api.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, schedule.SlotOccupancy(slot, students))
}
