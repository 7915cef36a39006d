package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/task"
	"github.com/fieldstack/fieldops-backend-go/internal/handler/http/response"
	"github.com/fieldstack/fieldops-backend-go/internal/service/assignment"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	CheckConflicts(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	assignments *assignment.Service
}

func NewTaskHandler(assignments *assignment.Service) TaskHandler {
	return &TaskHandlerImpl{assignments: assignments}
}

type assignRequest struct {
	UserIDs   []string `json:"user_ids"`
	VehicleID *string  `json:"vehicle_id,omitempty"`
}

// Assign implements TaskHandler.
func (h *TaskHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		response.BadRequest(w, "Task ID is required")
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	report, err := h.assignments.Assign(r.Context(), taskID, req.UserIDs, req.VehicleID)
	if err != nil {
		if errors.Is(err, task.ErrAssignmentConflict) {
			// The report is structured data; the caller re-confirms or
			// changes the selection.
			response.ConflictWithData(w, err.Error(), report)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignments updated", report)
}

// CheckConflicts implements TaskHandler.
func (h *TaskHandlerImpl) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		response.BadRequest(w, "Task ID is required")
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckConflicts decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	report, err := h.assignments.CheckConflicts(r.Context(), taskID, req.UserIDs, req.VehicleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
