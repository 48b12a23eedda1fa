package request

type AddCardRequest struct {
	Token string `json:"token" binding:"required"`
}

type ChangeDefaultCardRequest struct {
	CardID string `json:"card_id" binding:"required"`
}

// UserDeletedRequest is the payload of the user deletion trigger. Both ids
// come from the deleted document since the user record is already gone.
type UserDeletedRequest struct {
	CustomerID string `json:"customer_id"`
	AccountID  string `json:"account_id"`
}
