package domain

// RefundStatus is the canonical state of a refund.
type RefundStatus string

const (
	RefundPending RefundStatus = "pending"
	RefundSuccess RefundStatus = "success"
	RefundFailure RefundStatus = "failure"
)

// RefundRequest asks the processor to return funds for a captured payment.
// The same shape serves both refund execution and refund sync; sync relies
// on ConnectorRefundID to locate the action being tracked.
type RefundRequest struct {
	ConnectorTransactionID string
	Amount                 MinorUnit
	Currency               Currency
	// Reference is the merchant-assigned refund id.
	Reference string
	// ConnectorRefundID is the processor's action id for an already
	// submitted refund. Required for refund sync.
	ConnectorRefundID string
}

// RefundsResponse is the canonical outcome of a refund flow.
type RefundsResponse struct {
	ConnectorRefundID string
	Status            RefundStatus
}
