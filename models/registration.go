package models

import "time"

// Registration statuses follow the volunteer workflow: submitted forms start
// as Pending and are moved by moderators.
const (
	RegistrationPending  = "Pending"
	RegistrationApproved = "Approved"
	RegistrationRejected = "Rejected"
)

// Registration is a volunteer sign-up. The signature is a data URL captured on
// the form; it is encrypted at rest.
type Registration struct {
	ID                       string    `json:"id"`
	FirstName                string    `json:"first_name"`
	LastName                 string    `json:"last_name"`
	Address                  string    `json:"address"`
	Number                   string    `json:"number"`
	Email                    string    `json:"email"`
	EmergencyContactName     string    `json:"emergency_contact_name"`
	EmergencyContactNumber   string    `json:"emergency_contact_number"`
	EmergencyContactRelation string    `json:"emergency_contact_relation"`
	Signature                string    `json:"signature,omitempty"`
	Date                     time.Time `json:"date"`
	Status                   string    `json:"status"`
}

type RegistrationRequest struct {
	FirstName                string `json:"first_name" binding:"required"`
	LastName                 string `json:"last_name" binding:"required"`
	Address                  string `json:"address" binding:"required"`
	Number                   string `json:"number" binding:"required"`
	Email                    string `json:"email" binding:"required,email"`
	EmergencyContactName     string `json:"emergency_contact_name" binding:"required"`
	EmergencyContactNumber   string `json:"emergency_contact_number" binding:"required"`
	EmergencyContactRelation string `json:"emergency_contact_relation" binding:"required"`
	Signature                string `json:"signature" binding:"required"`
}

type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Rejected"`
}
