package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bursary-go/middleware"
	"bursary-go/models"
	"bursary-go/store"
	"bursary-go/utils"
)

func applicationID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// GetApplications lists submitted applications for review, newest first.
func (h *Handlers) GetApplications(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	apps, err := h.store.List(offset, limit)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch applications", err.Error())
		return
	}

	sendJSON(w, http.StatusOK, apps)
}

func (h *Handlers) GetApplicationByID(w http.ResponseWriter, r *http.Request) {
	id, err := applicationID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid application id", nil)
		return
	}

	app, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Application not found", nil)
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

// ReviewApplication approves or rejects an application and optionally sets
// the disbursement deadline. Applicant-side validation is not re-run here.
func (h *Handlers) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r)
	id, err := applicationID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid application id", nil)
		return
	}

	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
		return
	}

	approved := req.Status == "approved"
	if err := h.store.Review(id, approved, req.Deadline); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Application not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to update application", err.Error())
		return
	}

	h.logAudit(&claims.UserID, "UPDATE", "APPLICATION",
		fmt.Sprintf("Application %d reviewed: %s", id, req.Status),
		r.RemoteAddr, r.UserAgent())

	sendJSON(w, http.StatusOK, map[string]string{
		"message": "Application review updated successfully",
	})
}

// AssignInstallments appends disbursement-schedule references to an
// application.
func (h *Handlers) AssignInstallments(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r)
	id, err := applicationID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid application id", nil)
		return
	}

	var req models.InstallmentAssignment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
		return
	}

	grants := make([]models.InstallmentGrant, 0, len(req.Installments))
	for _, g := range req.Installments {
		grants = append(grants, models.InstallmentGrant{
			InstallmentID:    g.InstallmentID,
			NoOfInstallments: g.NoOfInstallments,
		})
	}

	if err := h.store.AssignInstallments(id, grants); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Application not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to assign installments", err.Error())
		return
	}

	h.logAudit(&claims.UserID, "UPDATE", "APPLICATION",
		fmt.Sprintf("Assigned %d installment grant(s) to application %d", len(grants), id),
		r.RemoteAddr, r.UserAgent())

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "Installments assigned successfully",
		"installments": grants,
	})
}

func (h *Handlers) GetInstallments(w http.ResponseWriter, r *http.Request) {
	id, err := applicationID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid application id", nil)
		return
	}

	grants, err := h.store.Installments(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Application not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to fetch installments", err.Error())
		return
	}

	sendJSON(w, http.StatusOK, grants)
}

// DeleteApplication is the explicit admin delete; nothing else removes a
// record.
func (h *Handlers) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r)
	id, err := applicationID(r)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid application id", nil)
		return
	}

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Application not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to delete application", err.Error())
		return
	}

	h.logAudit(&claims.UserID, "DELETE", "APPLICATION",
		fmt.Sprintf("Application %d deleted", id),
		r.RemoteAddr, r.UserAgent())

	sendJSON(w, http.StatusOK, map[string]string{
		"message": "Application deleted successfully",
	})
}
