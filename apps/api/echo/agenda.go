package echoapi

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/agenda"
	"github.com/jmstudio/fitmanage/core/staff"
	"github.com/jmstudio/fitmanage/core/student"
)

type agendaApi struct {
	studentSvc *student.Service
	staffSvc   *staff.Service
	emailSvc   core.EmailService
}

func registerAgendaAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	studentSvc *student.Service,
	staffSvc *staff.Service,
	emailSvc core.EmailService,
) {
	api := agendaApi{studentSvc: studentSvc, staffSvc: staffSvc, emailSvc: emailSvc}

	ag := g.Group("/agenda", jwt)
	ag.GET("/upcoming", api.upcoming)
	ag.POST("/digest", api.sendDigest)
}

// Handlers

func (api *agendaApi) upcoming(ctx echo.Context) error {
	students, err := api.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}

	events := agenda.Upcoming(students, time.Now())
	resp := make([]EventResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, EventResponse{Event: ev, WhatsAppLink: whatsAppLink(ev.Student.Phone)})
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *agendaApi) sendDigest(ctx echo.Context) error {
	acct, err := getContextAccount(ctx, api.staffSvc)
	if err != nil {
		return errors.Wrap(err, "getting context account")
	}
	if acct.Email == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "email", Error: "account has no email address"})
	}

	students, err := api.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}

	now := time.Now()
	events := agenda.Upcoming(students, now)
	msg := agenda.DigestMessage(events, mail.Address{Name: acct.Name, Address: acct.Email}, now)
	if msg == nil {
		return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Nothing to report for the upcoming window."})
	}

	api.emailSvc.SendMessages(msg)
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Digest sent to " + acct.Email + "."})
}

// EventResponse decorates an agenda event with a contact deep link.
type EventResponse struct {
	agenda.Event
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}

// whatsAppLink builds a wa.me deep link from a free-form phone number.
// Returns "" when the number has no digits at all.
func whatsAppLink(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}
