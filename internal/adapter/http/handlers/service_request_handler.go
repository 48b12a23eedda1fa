package handlers

import (
	"net/http"

	"equine_billing/internal/adapter/http/dto/request"
	"equine_billing/internal/adapter/http/dto/response"
	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// GetServiceRequest godoc
// @Summary      Get service request
// @Tags         service-requests
// @Produce      json
// @Param        request_id  path  string  true  "Service request ID"
// @Success      200  {object}  response.ServiceRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-requests/{request_id} [get]
func (h *ServiceRequestHandler) GetServiceRequest(c *gin.Context) {
	r, err := h.usecase.GetServiceRequest(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// SearchServiceRequests godoc
// @Summary      Search service requests by horse or provider
// @Tags         service-requests
// @Produce      json
// @Param        horse_id             query  string  false  "Horse ID"
// @Param        service_provider_id  query  string  false  "Service provider ID"
// @Param        status               query  string  false  "Comma separated statuses"
// @Param        start_date           query  string  false  "YYYY-MM-DD"
// @Param        end_date             query  string  false  "YYYY-MM-DD"
// @Param        cursor               query  string  false  "Cursor from the previous page"
// @Param        limit                query  int     false  "Page size"
// @Success      200  {object}  response.PageResponse[response.ServiceRequestResponse]
// @Router       /service-requests [get]
func (h *ServiceRequestHandler) SearchServiceRequests(c *gin.Context) {
	var q request.ServiceRequestSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, invalidRequest("Invalid request"))
		return
	}
	statuses, err := q.ResolveStatuses()
	if err != nil {
		abortWithError(c, invalidRequest(err.Error()))
		return
	}
	from, to, err := q.ResolveDates()
	if err != nil {
		abortWithError(c, invalidRequest(err.Error()))
		return
	}

	page, err := h.usecase.SearchServiceRequests(c.Request.Context(), usecase.ServiceRequestSearch{
		HorseID:           q.HorseID,
		ServiceProviderID: q.ServiceProviderID,
		Statuses:          statuses,
		StartDate:         from,
		EndDate:           to,
		Cursor:            q.Cursor,
		Limit:             q.ResolveLimit(),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromServiceRequest))
}

// UpdateStatus godoc
// @Summary      Move a service request through its lifecycle
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        request_id  path  string                                     true  "Service request ID"
// @Param        body        body  request.UpdateServiceRequestStatusRequest  true  "New status"
// @Success      200  {object}  response.ServiceRequestResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-requests/{request_id}/status [patch]
func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateServiceRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("status is required"))
		return
	}

	r, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("request_id"), entities.ServiceRequestStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// AssignProvider godoc
// @Summary      Reassign a service request to another provider
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        request_id  path  string                         true  "Service request ID"
// @Param        body        body  request.AssignProviderRequest  true  "Assigner"
// @Success      200  {object}  response.ServiceRequestResponse
// @Router       /service-requests/{request_id}/assigner [put]
func (h *ServiceRequestHandler) AssignProvider(c *gin.Context) {
	var req request.AssignProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("assigner_id is required"))
		return
	}

	r, err := h.usecase.AssignProvider(c.Request.Context(), c.Param("request_id"), req.AssignerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// Dismiss godoc
// @Summary      Hide a service request from a provider's list
// @Tags         service-requests
// @Accept       json
// @Param        request_id  path  string                                true  "Service request ID"
// @Param        body        body  request.DismissServiceRequestRequest  true  "Provider"
// @Success      204
// @Router       /service-requests/{request_id}/dismiss [post]
func (h *ServiceRequestHandler) Dismiss(c *gin.Context) {
	var req request.DismissServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("service_provider_id is required"))
		return
	}

	if err := h.usecase.Dismiss(c.Request.Context(), c.Param("request_id"), req.ServiceProviderID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Listeners godoc
// @Summary      Users listening to service request changes
// @Tags         service-requests
// @Produce      json
// @Param        request_id  path  string  true  "Service request ID"
// @Success      200  {array}  response.ListenerResponse
// @Router       /service-requests/{request_id}/listeners [get]
func (h *ServiceRequestHandler) Listeners(c *gin.Context) {
	ls, err := h.usecase.Listeners(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromListeners(ls))
}

// RequestPaymentSubmission godoc
// @Summary      Ask the primary provider to submit a joint invoice
// @Tags         service-requests
// @Accept       json
// @Param        body  body  request.PaymentSubmissionRequest  true  "Requests"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-requests/payment-submission-requests [post]
func (h *ServiceRequestHandler) RequestPaymentSubmission(c *gin.Context) {
	var req request.PaymentSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("assigner_id, service_provider_id and request_ids are required"))
		return
	}

	if err := h.usecase.RequestPaymentSubmission(c.Request.Context(), req.AssignerID, req.ServiceProviderID, req.RequestIDs); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestPaymentApproval godoc
// @Summary      Ask an owner to register a payment approver
// @Tags         service-requests
// @Accept       json
// @Param        body  body  request.PaymentApprovalRequest  true  "Approval"
// @Success      204
// @Router       /payment-approval-requests [post]
func (h *ServiceRequestHandler) RequestPaymentApproval(c *gin.Context) {
	var req request.PaymentApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("user_id and owner_id are required"))
		return
	}
	amount, err := req.ResolveAmount()
	if err != nil {
		abortWithError(c, invalidRequest(err.Error()))
		return
	}

	if err := h.usecase.RequestPaymentApproval(c.Request.Context(), req.UserID, req.OwnerID, amount); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
