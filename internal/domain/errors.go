package domain

import "errors"

var (
	// Currency errors
	ErrRateNotFound        = errors.New("no exchange rate path for currency pair")
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
	ErrInvalidAmount       = errors.New("amount must be positive")

	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrProductArchived = errors.New("product is archived")

	// Order errors
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid fulfillment status transition")
	ErrOrderNotOwnedByVendor   = errors.New("order does not belong to vendor")
	ErrProductNotOwnedByVendor = errors.New("product does not belong to vendor")

	// Payout errors
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrInsufficientBalance = errors.New("payout amount exceeds available balance")

	// Escrow errors
	ErrEscrowNotFound = errors.New("escrow entry not found")

	// Review and Q&A errors
	ErrReviewNotFound       = errors.New("review not found")
	ErrReviewAlreadyReplied = errors.New("review already has a reply")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrQuestionNotFound     = errors.New("question not found")

	// Support errors
	ErrTicketNotFound = errors.New("ticket not found")
	ErrTicketClosed   = errors.New("ticket is closed")
	ErrEmptyBody      = errors.New("message body must not be empty")

	// Vendor errors
	ErrVendorNotFound = errors.New("vendor not found")
)

// Authentication errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
