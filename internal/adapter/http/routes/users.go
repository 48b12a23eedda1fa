package routes

import (
	"equine_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathUsers = "/users/:user_id"

func addUserRoutes(rg *gin.RouterGroup, h *handlers.BillingProfileHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("/customer", h.CreateCustomer)
		users.POST("/cards", h.AddCard)
		users.PUT("/cards/default", h.ChangeDefaultCard)
		users.DELETE("/cards/:card_id", h.DeleteCard)
		users.GET("/payout-account", h.PayoutAccount)
		users.GET("/express-login-link", h.ExpressLoginLink)
	}
}
