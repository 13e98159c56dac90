// Package entity defines the typed request and response schemas of the web
// layer. Requests validate and normalize themselves before any storage call.
package entity

import (
	"strings"

	"census-api/database/model"
	"census-api/util/common"
	"census-api/util/validation"
)

// Error categories carried in every error payload.
const (
	ErrorBadRequest   = "Bad Request"
	ErrorUnauthorized = "Unauthorized"
	ErrorNotFound     = "Not Found"
	ErrorConflict     = "Conflict"
	ErrorServer       = "Server Error"
)

// ErrorResponse is the uniform error payload: a stable category plus a
// human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ParticipantRequest carries the personal part of the nested census payload.
type ParticipantRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Dob       string `json:"dob"`
}

// WorkRequest carries the employment part. Salary is a pointer so a missing
// field is distinguishable from a zero salary.
type WorkRequest struct {
	CompanyName string   `json:"companyname"`
	Salary      *float64 `json:"salary"`
	Currency    string   `json:"currency"`
}

// HomeRequest carries the home address part.
type HomeRequest struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// CensusRequest is the full nested payload accepted by create and update.
type CensusRequest struct {
	Participant ParticipantRequest `json:"participant"`
	Work        WorkRequest        `json:"work"`
	Home        HomeRequest        `json:"home"`
}

// CheckValid verifies the nested payload field by field, stopping at the
// first violation. The returned error names the offending field.
func (r *CensusRequest) CheckValid() error {
	email := validation.NormalizeEmail(r.Participant.Email)
	if err := validation.RequireString("participant.email", email); err != nil {
		return err
	}
	if !validation.IsValidEmail(email) {
		return common.NewErrorf("participant.email must be a valid email address")
	}
	if err := validation.RequireString("participant.firstname", r.Participant.FirstName); err != nil {
		return err
	}
	if err := validation.RequireString("participant.lastname", r.Participant.LastName); err != nil {
		return err
	}
	if err := validation.RequireString("participant.dob", r.Participant.Dob); err != nil {
		return err
	}
	if !validation.IsValidDateOnly(strings.TrimSpace(r.Participant.Dob)) {
		return common.NewErrorf("participant.dob must be a valid date in YYYY-MM-DD format")
	}

	if err := validation.RequireString("work.companyname", r.Work.CompanyName); err != nil {
		return err
	}
	if err := validation.RequireNumber("work.salary", r.Work.Salary); err != nil {
		return err
	}
	if err := validation.RequireString("work.currency", r.Work.Currency); err != nil {
		return err
	}

	if err := validation.RequireString("home.country", r.Home.Country); err != nil {
		return err
	}
	return validation.RequireString("home.city", r.Home.City)
}

// Models converts a validated request into storage rows, trimming strings and
// normalizing the email. Both child rows are stamped active; the keyed upsert
// makes that the revive path for previously soft-deleted rows.
func (r *CensusRequest) Models() (model.Participant, model.Work, model.Home) {
	email := validation.NormalizeEmail(r.Participant.Email)

	participant := model.Participant{
		Email:     email,
		FirstName: strings.TrimSpace(r.Participant.FirstName),
		LastName:  strings.TrimSpace(r.Participant.LastName),
		Dob:       strings.TrimSpace(r.Participant.Dob),
	}
	work := model.Work{
		ParticipantEmail: email,
		CompanyName:      strings.TrimSpace(r.Work.CompanyName),
		Salary:           *r.Work.Salary,
		Currency:         strings.TrimSpace(r.Work.Currency),
		IsDeleted:        false,
	}
	home := model.Home{
		ParticipantEmail: email,
		Country:          strings.TrimSpace(r.Home.Country),
		City:             strings.TrimSpace(r.Home.City),
		IsDeleted:        false,
	}
	return participant, work, home
}

// ParticipantDetails is the projected read shape of a participant.
type ParticipantDetails struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Dob       string `json:"dob"`
}

func NewParticipantDetails(p *model.Participant) ParticipantDetails {
	return ParticipantDetails{
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Dob:       p.Dob,
	}
}

// WorkDetails is the projected read shape of an active work record.
type WorkDetails struct {
	CompanyName string  `json:"companyname"`
	Salary      float64 `json:"salary"`
	Currency    string  `json:"currency"`
}

func NewWorkDetails(w *model.Work) WorkDetails {
	return WorkDetails{
		CompanyName: w.CompanyName,
		Salary:      w.Salary,
		Currency:    w.Currency,
	}
}

// HomeDetails is the projected read shape of an active home record.
type HomeDetails struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

func NewHomeDetails(h *model.Home) HomeDetails {
	return HomeDetails{
		Country: h.Country,
		City:    h.City,
	}
}

// AdminIdentity is attached to the request context by the auth guard.
type AdminIdentity struct {
	Id    int    `json:"id"`
	Login string `json:"login"`
}
