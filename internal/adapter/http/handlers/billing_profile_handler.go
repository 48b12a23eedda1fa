package handlers

import (
	"net/http"

	"equine_billing/internal/adapter/http/dto/request"
	"equine_billing/internal/adapter/http/dto/response"
	"equine_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BillingProfileHandler manages a user's processor customer, cards and payout account.
type BillingProfileHandler struct {
	usecase usecase.IBillingProfileUseCase
}

func NewBillingProfileHandler(uc usecase.IBillingProfileUseCase) *BillingProfileHandler {
	return &BillingProfileHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary      Create the user's billing customer
// @Tags         billing-profile
// @Produce      json
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  response.BillingCustomerResponse
// @Router       /users/{user_id}/customer [post]
func (h *BillingProfileHandler) CreateCustomer(c *gin.Context) {
	customer, err := h.usecase.CreateCustomer(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingCustomer(customer))
}

// AddCard godoc
// @Summary      Attach a tokenized card
// @Tags         billing-profile
// @Accept       json
// @Produce      json
// @Param        user_id  path  string                  true  "User ID"
// @Param        body     body  request.AddCardRequest  true  "Card token"
// @Success      200  {object}  response.BillingCustomerResponse
// @Router       /users/{user_id}/cards [post]
func (h *BillingProfileHandler) AddCard(c *gin.Context) {
	var req request.AddCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("token is required"))
		return
	}

	customer, err := h.usecase.AddCard(c.Request.Context(), c.Param("user_id"), req.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingCustomer(customer))
}

// ChangeDefaultCard godoc
// @Summary      Change the default card
// @Tags         billing-profile
// @Accept       json
// @Produce      json
// @Param        user_id  path  string                            true  "User ID"
// @Param        body     body  request.ChangeDefaultCardRequest  true  "Card"
// @Success      200  {object}  response.BillingCustomerResponse
// @Router       /users/{user_id}/cards/default [put]
func (h *BillingProfileHandler) ChangeDefaultCard(c *gin.Context) {
	var req request.ChangeDefaultCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("card_id is required"))
		return
	}

	customer, err := h.usecase.ChangeDefaultCard(c.Request.Context(), c.Param("user_id"), req.CardID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingCustomer(customer))
}

// DeleteCard godoc
// @Summary      Remove a card
// @Tags         billing-profile
// @Produce      json
// @Param        user_id  path  string  true  "User ID"
// @Param        card_id  path  string  true  "Card ID"
// @Success      200  {object}  response.BillingCustomerResponse
// @Router       /users/{user_id}/cards/{card_id} [delete]
func (h *BillingProfileHandler) DeleteCard(c *gin.Context) {
	customer, err := h.usecase.DeleteCard(c.Request.Context(), c.Param("user_id"), c.Param("card_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingCustomer(customer))
}

// PayoutAccount godoc
// @Summary      Provider payout account
// @Tags         billing-profile
// @Produce      json
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  response.PayoutAccountResponse
// @Router       /users/{user_id}/payout-account [get]
func (h *BillingProfileHandler) PayoutAccount(c *gin.Context) {
	account, err := h.usecase.PayoutAccount(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayoutAccount(account))
}

// ExpressLoginLink godoc
// @Summary      Login link to the provider's payout dashboard
// @Tags         billing-profile
// @Produce      json
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  response.LoginLinkResponse
// @Router       /users/{user_id}/express-login-link [get]
func (h *BillingProfileHandler) ExpressLoginLink(c *gin.Context) {
	url, err := h.usecase.ExpressLoginLink(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.LoginLinkResponse{URL: url})
}
