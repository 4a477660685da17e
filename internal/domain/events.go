package domain

import "time"

// Event types
const (
	EventTypeCustomerCreated    = "customer.created"
	EventTypeCustomerUpdated    = "customer.updated"
	EventTypeCustomerArchived   = "customer.archived"
	EventTypeCustomerUnarchived = "customer.unarchived"
	EventTypeDebtCreated        = "debt.created"
	EventTypeDebtDeleted        = "debt.deleted"
	EventTypePaymentRecorded    = "debt.payment_recorded"
	EventTypeDebtIncreased      = "debt.increased"
	EventTypeInstallmentToggled = "debt.installment_toggled"
	EventTypeImageAttached      = "debt.image_attached"
)

// ChangeEvent notifies subscribers that a customer's book changed. The engine
// itself never publishes; the orchestration layer does, after a successful
// save.
type ChangeEvent struct {
	ID         string
	Type       string
	CustomerID string
	DebtID     string
	Payload    map[string]any
	OccurredAt time.Time
}

// PaymentRecordedEvent payload
type PaymentRecordedEvent struct {
	DebtID     string `json:"debt_id"`
	CashAmount string `json:"cash_amount"`
	Applied    string `json:"applied"`
	Unit       string `json:"unit"`
}

// DebtIncreasedEvent payload
type DebtIncreasedEvent struct {
	DebtID     string `json:"debt_id"`
	CashAmount string `json:"cash_amount"`
	Applied    string `json:"applied"`
	Reason     string `json:"reason"`
}

// InstallmentToggledEvent payload
type InstallmentToggledEvent struct {
	DebtID        string `json:"debt_id"`
	InstallmentID string `json:"installment_id"`
	Paid          bool   `json:"paid"`
}
