package models

import "time"

// ReviewRequest is the admin approve/reject action on an application.
type ReviewRequest struct {
	Status   string     `json:"status" validate:"required,oneof=approved rejected"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// InstallmentAssignment appends disbursement references to an approved
// application.
type InstallmentAssignment struct {
	Installments []InstallmentGrantRequest `json:"installments" validate:"required,min=1,dive"`
}

type InstallmentGrantRequest struct {
	InstallmentID    uint `json:"installmentId" validate:"required,gt=0"`
	NoOfInstallments int  `json:"noOfInstallments" validate:"required,gt=0"`
}
