package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"bursary-go/config"
	"bursary-go/eligibility"
	"bursary-go/models"
	"bursary-go/refdata"
	"bursary-go/store"
	"bursary-go/validation"
)

// ErrorResponse is the standardized error body every handler returns.
type ErrorResponse struct {
	Status    int         `json:"status"`
	Error     string      `json:"error"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func sendError(w http.ResponseWriter, status int, err string, details interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:    status,
		Error:     err,
		Details:   details,
		Timestamp: time.Now(),
	})
}

func sendJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type Handlers struct {
	db        *gorm.DB
	store     *store.ApplicationStore
	validator *validation.Validator
	config    *config.Config
}

func NewHandlers(db *gorm.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		db:        db,
		store:     store.New(db),
		validator: validation.New(refdata.Default(), nil),
		config:    cfg,
	}
}

func (h *Handlers) policy() eligibility.Policy {
	return eligibility.Policy{IncomeCeiling: h.config.IncomeCeiling}
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
		"service":   "BursaryGo",
		"version":   "1.0.0",
	})
}

func (h *Handlers) logAudit(userID *uint, action, resource, details, ipAddress, userAgent string) {
	audit := models.AuditLog{
		UserID:    userID,
		Action:    action,
		Resource:  resource,
		Details:   details,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	h.db.Create(&audit)
}
