package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
)

type backupApi struct {
	studentSvc *student.Service
	teacherSvc *teacher.Service
}

func registerBackupAPI(g *echo.Group, jwt echo.MiddlewareFunc, studentSvc *student.Service, teacherSvc *teacher.Service) {
	api := backupApi{studentSvc: studentSvc, teacherSvc: teacherSvc}

	ag := g.Group("/backup", jwt)
	ag.GET("/export", api.export)
	ag.POST("/import", api.restore)
}

// BackupPayload is the full-roster dump exchanged on export and import.
type BackupPayload struct {
	Students []student.Student `json:"students"`
	Teachers []teacher.Teacher `json:"teachers"`
}

// Handlers

func (api *backupApi) export(ctx echo.Context) error {
	students, err := api.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	teachers, err := api.teacherSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	if students == nil {
		students = []student.Student{}
	}
	if teachers == nil {
		teachers = []teacher.Teacher{}
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="backup.json"`)
	return ctx.JSON(http.StatusOK, BackupPayload{Students: students, Teachers: teachers})
}

// restore replaces both rosters wholesale. Both collections must be present,
// even if empty; a partial payload is rejected before anything is touched.
func (api *backupApi) restore(ctx echo.Context) error {
	var data BackupPayload
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BackupPayload")
	}
	if data.Students == nil || data.Teachers == nil {
		return core.NewValidationError(errors.New("both students and teachers collections are required"))
	}
	for _, s := range data.Students {
		if s.ID == "" || s.Name == "" {
			return core.NewValidationError(nil, core.FieldError{Field: "students", Error: "every student needs an id and a name"})
		}
	}
	for _, t := range data.Teachers {
		if t.ID == "" || t.Name == "" {
			return core.NewValidationError(nil, core.FieldError{Field: "teachers", Error: "every teacher needs an id and a name"})
		}
	}

	if err := api.studentSvc.ReplaceAll(data.Students); err != nil {
		return errors.Wrap(err, "replacing students")
	}
	if err := api.teacherSvc.ReplaceAll(data.Teachers); err != nil {
		return errors.Wrap(err, "replacing teachers")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Backup restored."})
}
