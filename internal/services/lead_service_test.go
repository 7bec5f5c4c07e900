package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"autokomis/backoffice/internal/apperrors"
	"autokomis/backoffice/internal/models/dtos"
	"autokomis/backoffice/internal/models/entities"
)

type fakeLeadStore struct {
	mu    sync.Mutex
	leads []entities.Lead
	err   error
}

func (f *fakeLeadStore) InsertLead(ctx context.Context, lead *entities.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leads = append(f.leads, *lead)
	return nil
}

func (f *fakeLeadStore) ListLeads(ctx context.Context) ([]entities.Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entities.Lead(nil), f.leads...), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeMailer) Send(to, subject, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, subject)
	return f.err
}

func (f *fakeMailer) waitForSend(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		n := len(f.sent)
		f.mu.Unlock()
		if n > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("notification mail was never sent")
}

func TestCaptureContactStoresLeadAndNotifies(t *testing.T) {
	repo := &fakeLeadStore{}
	mailer := &fakeMailer{}
	svc := NewLeadService(repo, mailer)

	phone := "+48 600 000 000"
	lead, err := svc.CaptureContact(context.Background(), dtos.ContactLeadRequest{
		Name:    "Jan Kowalski",
		Email:   "jan@example.com",
		Phone:   &phone,
		Message: "Czy auto jest dostępne?",
	})
	if err != nil {
		t.Fatal(err)
	}

	if lead.ID == "" || lead.Kind != entities.LeadContact {
		t.Errorf("unexpected lead: %+v", lead)
	}
	if len(repo.leads) != 1 {
		t.Fatalf("expected stored lead, got %d", len(repo.leads))
	}

	mailer.waitForSend(t)
}

func TestCaptureContactValidation(t *testing.T) {
	svc := NewLeadService(&fakeLeadStore{}, &fakeMailer{})

	cases := []dtos.ContactLeadRequest{
		{Email: "jan@example.com", Message: "hi"},           // no name
		{Name: "Jan", Message: "hi"},                        // no email
		{Name: "Jan", Email: "not-an-email", Message: "hi"}, // bad email
		{Name: "Jan", Email: "jan@example.com"},             // no message
	}

	for i, req := range cases {
		if _, err := svc.CaptureContact(context.Background(), req); !apperrors.IsCode(err, apperrors.CodeValidation) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestCaptureNewsletterMailFailureDoesNotFailCapture(t *testing.T) {
	repo := &fakeLeadStore{}
	mailer := &fakeMailer{err: errSendFailed}
	svc := NewLeadService(repo, mailer)

	lead, err := svc.CaptureNewsletter(context.Background(), dtos.NewsletterRequest{Email: "a@b.pl"})
	if err != nil {
		t.Fatalf("capture must not fail on mail error: %v", err)
	}
	if lead.Kind != entities.LeadNewsletter {
		t.Errorf("expected newsletter lead, got %s", lead.Kind)
	}

	mailer.waitForSend(t)
}

var errSendFailed = &apperrors.AppError{Code: "mail", Message: "smtp down", StatusCode: 500}
