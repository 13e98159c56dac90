package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"census-api/util/validation"
	"census-api/web/entity"
	"census-api/web/service"

	"github.com/gin-gonic/gin"
)

// ParticipantController handles the nested participant resource: the
// participant row plus its one-to-one work and home records.
type ParticipantController struct {
	participantService service.ParticipantService
}

func NewParticipantController(g *gin.RouterGroup) *ParticipantController {
	a := &ParticipantController{}

	r := g.Group("/participants")
	r.POST("/add", a.create)
	r.GET("", a.list)
	r.GET("/details", a.listDetails)
	r.GET("/details/:email", a.details)
	r.GET("/work/:email", a.work)
	r.GET("/home/:email", a.home)
	r.PUT("/:email", a.update)
	r.DELETE("/:email", a.delete)
	return a
}

// bindCensusRequest decodes and validates the nested payload, returning false
// after responding when the body is unusable.
func (a *ParticipantController) bindCensusRequest(c *gin.Context, req *entity.CensusRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			badRequest(c, typeErr.Field+" has an invalid type.")
			return false
		}
		badRequest(c, "Request body must be valid JSON.")
		return false
	}
	if err := req.CheckValid(); err != nil {
		badRequest(c, err.Error())
		return false
	}
	return true
}

// emailParam normalizes and validates the :email path parameter, returning
// false after responding when it is malformed.
func emailParam(c *gin.Context) (string, bool) {
	email := validation.NormalizeEmail(c.Param("email"))
	if !validation.IsValidEmail(email) {
		badRequest(c, "email path parameter must be a valid email address.")
		return "", false
	}
	return email, true
}

func (a *ParticipantController) create(c *gin.Context) {
	var req entity.CensusRequest
	if !a.bindCensusRequest(c, &req) {
		return
	}

	participant, work, home := req.Models()
	err := a.participantService.Create(&participant, &work, &home)
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		conflict(c, "A participant with this email already exists.")
	case err != nil:
		serverError(c, "Could not create participant.", err)
	default:
		c.JSON(http.StatusCreated, gin.H{
			"message":     "Participant created",
			"participant": participant,
			"work":        entity.NewWorkDetails(&work),
			"home":        entity.NewHomeDetails(&home),
		})
	}
}

func (a *ParticipantController) list(c *gin.Context) {
	participants, err := a.participantService.GetAll()
	if err != nil {
		serverError(c, "Could not fetch participants.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":        len(participants),
		"participants": participants,
	})
}

func (a *ParticipantController) listDetails(c *gin.Context) {
	participants, err := a.participantService.GetAll()
	if err != nil {
		serverError(c, "Could not fetch participants.", err)
		return
	}

	details := make([]entity.ParticipantDetails, 0, len(participants))
	for i := range participants {
		details = append(details, entity.NewParticipantDetails(&participants[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"count":        len(details),
		"participants": details,
	})
}

func (a *ParticipantController) details(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}

	participant, err := a.participantService.GetByEmail(email)
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		notFound(c, "Participant not found.")
	case err != nil:
		serverError(c, "Could not fetch participant.", err)
	default:
		c.JSON(http.StatusOK, gin.H{"participant": entity.NewParticipantDetails(participant)})
	}
}

func (a *ParticipantController) work(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}

	work, err := a.participantService.GetWork(email)
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		notFound(c, "Participant not found.")
	case errors.Is(err, service.ErrWorkNotFound):
		notFound(c, "No active work record for this participant.")
	case err != nil:
		serverError(c, "Could not fetch work record.", err)
	default:
		c.JSON(http.StatusOK, gin.H{"work": entity.NewWorkDetails(work)})
	}
}

func (a *ParticipantController) home(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}

	home, err := a.participantService.GetHome(email)
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		notFound(c, "Participant not found.")
	case errors.Is(err, service.ErrHomeNotFound):
		notFound(c, "No active home record for this participant.")
	case err != nil:
		serverError(c, "Could not fetch home record.", err)
	default:
		c.JSON(http.StatusOK, gin.H{"home": entity.NewHomeDetails(home)})
	}
}

func (a *ParticipantController) update(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}

	var req entity.CensusRequest
	if !a.bindCensusRequest(c, &req) {
		return
	}

	participant, work, home := req.Models()
	if participant.Email != email {
		badRequest(c, "Path email does not match participant email.")
		return
	}

	err := a.participantService.Update(&participant, &work, &home)
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		notFound(c, "Participant not found.")
	case errors.Is(err, service.ErrDuplicateEmail):
		conflict(c, "A participant with this email already exists.")
	case err != nil:
		serverError(c, "Could not update participant.", err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":     "Participant updated",
			"participant": participant,
			"work":        entity.NewWorkDetails(&work),
			"home":        entity.NewHomeDetails(&home),
		})
	}
}

func (a *ParticipantController) delete(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}

	err := a.participantService.Delete(email)
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		notFound(c, "Participant not found.")
	case err != nil:
		serverError(c, "Could not delete participant.", err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Participant deleted",
			"email":   email,
		})
	}
}
