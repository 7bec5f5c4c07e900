package entities

import "time"

// LeadKind distinguishes contact-form leads from newsletter signups.
type LeadKind string

const (
	LeadContact    LeadKind = "contact"
	LeadNewsletter LeadKind = "newsletter"
)

// Lead is a captured customer enquiry or newsletter signup.
type Lead struct {
	ID        string    `db:"id" json:"id"`
	Kind      LeadKind  `db:"kind" json:"kind"`
	Name      string    `db:"name" json:"name,omitempty"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Message   *string   `db:"message" json:"message,omitempty"`
	CarID     *string   `db:"car_id" json:"carId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
