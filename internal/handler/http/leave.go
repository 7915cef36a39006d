package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	"github.com/fieldstack/fieldops-backend-go/internal/handler/http/response"
	leaveService "github.com/fieldstack/fieldops-backend-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	GetMyQuota(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	requests  *leaveService.RequestService
	approvals *leaveService.ApprovalService
	quotas    *leaveService.QuotaService
}

func NewLeaveHandler(
	requests *leaveService.RequestService,
	approvals *leaveService.ApprovalService,
	quotas *leaveService.QuotaService,
) LeaveHandler {
	return &LeaveHandlerImpl{
		requests:  requests,
		approvals: approvals,
		quotas:    quotas,
	}
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.requests.Create(r.Context(), c.ID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year := yearParam(r)

	requests, err := h.requests.ListMine(r.Context(), c.ID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ApproveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required")
		return
	}

	var req leave.ApproveLeaveRequestRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("ApproveRequest decode error", "error", err)
			response.BadRequest(w, "Invalid request format")
			return
		}
	}

	approved, err := h.approvals.Approve(r.Context(), requestID, c.ID, req.Comment)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", approved)
}

// RejectRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required")
		return
	}

	var req leave.RejectLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	if req.Reason == "" {
		response.BadRequest(w, "Rejection reason is required")
		return
	}

	rejected, err := h.approvals.Reject(r.Context(), requestID, c.ID, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", rejected)
}

// CancelRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required")
		return
	}

	if err := h.requests.Cancel(r.Context(), requestID, c.ID, c.Role); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", nil)
}

// GetMyQuota implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyQuota(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year := yearParam(r)

	summary, err := h.quotas.Summary(r.Context(), c.ID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func yearParam(r *http.Request) int {
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			return year
		}
	}
	return time.Now().Year()
}
