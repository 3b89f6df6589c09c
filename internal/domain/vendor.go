package domain

import "time"

// Vendor is a seller account on the platform. LedgerCurrency is the
// currency its earnings and payouts are denominated in.
type Vendor struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	LedgerCurrency string
	PayoutAccount  string // masked destination account
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
