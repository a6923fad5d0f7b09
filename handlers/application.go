package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"bursary-go/eligibility"
	"bursary-go/middleware"
	"bursary-go/models"
	"bursary-go/store"
	"bursary-go/utils"
)

// SubmitApplication validates the applicant's record in full, derives the
// eligibility figures and stores it. Validation failures come back as a
// field-path → message map, all at once.
func (h *Handlers) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
		return
	}

	var app models.Application
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Derived and admin-owned fields are never the applicant's to set.
	app.ID = 0
	app.UserID = claims.UserID
	app.IsApproved = false
	app.Installments = nil
	app.Deadline = nil

	result := h.validator.Validate(&app)
	if !result.Valid() {
		sendError(w, http.StatusBadRequest, "Validation failed", result.Errors)
		return
	}

	outcome := eligibility.Derive(&app, h.policy())
	app.NetIncome = outcome.NetIncome
	app.IsValidCandidate = outcome.IsValidCandidate
	app.Reference = uuid.New().String()

	encryptedNIC, err := utils.EncryptSensitiveData(app.NIC)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to encrypt NIC data", err.Error())
		return
	}
	app.NIC = encryptedNIC

	if err := h.store.Create(&app); err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			sendError(w, http.StatusConflict, "Application already submitted", nil)
		case errors.Is(err, store.ErrInvalidRecord):
			sendError(w, http.StatusBadRequest, "Application record incomplete", nil)
		default:
			sendError(w, http.StatusInternalServerError, "Failed to submit application", err.Error())
		}
		return
	}

	h.logAudit(&claims.UserID, "CREATE", "APPLICATION",
		fmt.Sprintf("Application submitted, netIncome=%.2f", app.NetIncome),
		r.RemoteAddr, r.UserAgent())

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message":          "Application submitted successfully",
		"application_id":   app.ID,
		"reference":        app.Reference,
		"netIncome":        app.NetIncome,
		"isValidCandidate": app.IsValidCandidate,
	})
}

// GetApplication returns the applicant's own stored record.
func (h *Handlers) GetApplication(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
		return
	}

	app, err := h.store.GetByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, http.StatusNotFound, "No application submitted yet", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	if nic, err := utils.DecryptSensitiveData(app.NIC); err == nil {
		app.NIC = nic
	}

	sendJSON(w, http.StatusOK, app)
}

// GetApplicationStatus is the lightweight poll the dashboard uses.
func (h *Handlers) GetApplicationStatus(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
		return
	}

	app, err := h.store.GetByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendJSON(w, http.StatusOK, map[string]interface{}{
				"isSubmitted": false,
				"isApproved":  false,
			})
			return
		}
		sendError(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"isSubmitted": true,
		"isApproved":  app.IsApproved,
		"deadline":    app.Deadline,
	})
}
