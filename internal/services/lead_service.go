package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"

	"autokomis/backoffice/internal/apperrors"
	"autokomis/backoffice/internal/logging"
	"autokomis/backoffice/internal/models/dtos"
	"autokomis/backoffice/internal/models/entities"
)

type leadStore interface {
	InsertLead(ctx context.Context, lead *entities.Lead) error
	ListLeads(ctx context.Context) ([]entities.Lead, error)
}

type mailSender interface {
	Send(to, subject, html string) error
}

// LeadService captures contact-form enquiries and newsletter signups and
// fires a notification email to the dealership inbox. Mail delivery is
// fire-and-forget: failures are logged, never surfaced to the visitor.
type LeadService struct {
	repo   leadStore
	mailer mailSender
}

func NewLeadService(repo leadStore, mailer mailSender) *LeadService {
	return &LeadService{repo: repo, mailer: mailer}
}

// CaptureContact validates and stores a contact-form lead.
func (s *LeadService) CaptureContact(ctx context.Context, req dtos.ContactLeadRequest) (*entities.Lead, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.NewValidationError("message is required")
	}

	message := req.Message
	lead := &entities.Lead{
		ID:        uuid.New().String(),
		Kind:      entities.LeadContact,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   &message,
		CarID:     req.CarID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertLead(ctx, lead); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	go s.notify(lead)

	return lead, nil
}

// CaptureNewsletter validates and stores a newsletter signup.
func (s *LeadService) CaptureNewsletter(ctx context.Context, req dtos.NewsletterRequest) (*entities.Lead, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}

	lead := &entities.Lead{
		ID:        uuid.New().String(),
		Kind:      entities.LeadNewsletter,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertLead(ctx, lead); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	go s.notify(lead)

	return lead, nil
}

// List returns stored leads, newest first.
func (s *LeadService) List(ctx context.Context) ([]entities.Lead, error) {
	leads, err := s.repo.ListLeads(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return leads, nil
}

func (s *LeadService) notify(lead *entities.Lead) {
	subject := "Nowy zapis do newslettera"
	body := fmt.Sprintf("<p>Nowy zapis do newslettera: <b>%s</b></p>", html.EscapeString(lead.Email))

	if lead.Kind == entities.LeadContact {
		subject = "Nowe zapytanie ze strony"
		message := ""
		if lead.Message != nil {
			message = *lead.Message
		}
		body = fmt.Sprintf(
			"<p><b>%s</b> (%s)</p><p>%s</p>",
			html.EscapeString(lead.Name),
			html.EscapeString(lead.Email),
			html.EscapeString(message),
		)
		if lead.CarID != nil {
			body += fmt.Sprintf("<p>Dotyczy ogłoszenia: %s</p>", html.EscapeString(*lead.CarID))
		}
	}

	if err := s.mailer.Send("", subject, body); err != nil {
		logging.Warn("lead notification mail failed", "lead_id", lead.ID, "error", err.Error())
	}
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperrors.NewValidationError("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return apperrors.NewValidationError("email is invalid")
	}
	return nil
}
