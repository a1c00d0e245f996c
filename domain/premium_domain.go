package domain

import "errors"

var (
	MessageSuccessSubscribe = "subscription transaction created"
	MessageSuccessWebhook   = "webhook processed"

	MessageFailedSubscribe = "failed to create subscription transaction"
	MessageFailedWebhook   = "failed to process webhook"

	ErrAlreadyPremium      = errors.New("user is already premium")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type (
	SubscribeResponse struct {
		OrderID     string `json:"order_id"`
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
