package domain

// DisputeStatus is the canonical state of a dispute.
type DisputeStatus string

const (
	DisputeOpened     DisputeStatus = "dispute_opened"
	DisputeExpired    DisputeStatus = "dispute_expired"
	DisputeAccepted   DisputeStatus = "dispute_accepted"
	DisputeCancelled  DisputeStatus = "dispute_cancelled"
	DisputeChallenged DisputeStatus = "dispute_challenged"
	DisputeWon        DisputeStatus = "dispute_won"
	DisputeLost       DisputeStatus = "dispute_lost"
)

// DisputeStage tracks how far a dispute has progressed.
type DisputeStage string

const (
	StagePreDispute     DisputeStage = "pre_dispute"
	StageDispute        DisputeStage = "dispute"
	StagePreArbitration DisputeStage = "pre_arbitration"
)

// AcceptDisputeRequest concedes a dispute to the cardholder.
type AcceptDisputeRequest struct {
	ConnectorDisputeID string
}

// AcceptDisputeResponse reports the dispute state after acceptance.
type AcceptDisputeResponse struct {
	DisputeStatus   DisputeStatus
	ConnectorStatus *string
}

// DefendDisputeRequest contests a dispute with previously submitted
// evidence.
type DefendDisputeRequest struct {
	ConnectorDisputeID string
}

// DefendDisputeResponse reports the dispute state after defending.
type DefendDisputeResponse struct {
	DisputeStatus   DisputeStatus
	ConnectorStatus *string
}

// SubmitEvidenceRequest attaches uploaded evidence files to a dispute.
// Each field holds the provider file id returned by the upload flow.
type SubmitEvidenceRequest struct {
	ConnectorDisputeID                       string
	ShippingDocumentationFileID              *string
	ReceiptFileID                            *string
	InvoiceShowingDistinctTransactionsFileID *string
	CustomerCommunicationFileID              *string
	RefundPolicyFileID                       *string
	RecurringTransactionAgreementFileID      *string
	UncategorizedFileID                      *string
}

// SubmitEvidenceResponse reports the dispute state after evidence
// submission.
type SubmitEvidenceResponse struct {
	DisputeStatus   DisputeStatus
	ConnectorStatus *string
}
