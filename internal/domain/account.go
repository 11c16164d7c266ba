package domain

import "github.com/shopspring/decimal"

// AccountStatus is the lifecycle state of an account at the accounts service.
type AccountStatus string

const (
	AccountActive  AccountStatus = "ACTIVE"
	AccountBlocked AccountStatus = "BLOCKED"
	AccountClosed  AccountStatus = "CLOSED"
)

// Account is a point-in-time view of an account owned by the accounts
// service. The balance is whatever the remote service reported when the
// snapshot was taken; nothing here is authoritative.
type Account struct {
	ID       string
	OwnerID  string
	Currency string
	Balance  decimal.Decimal
	Status   AccountStatus
}

// OwnedBy reports whether the account belongs to the given client.
func (a *Account) OwnedBy(clientID string) bool {
	return clientID != "" && a.OwnerID == clientID
}
