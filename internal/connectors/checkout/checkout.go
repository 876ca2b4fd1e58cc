// Package checkout is the Checkout.com adapter: one Integration per
// supported flow plus the shared identity, auth, error-classification and
// webhook behavior the framework expects from every connector.
package checkout

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"payswitch/internal/connector"
	"payswitch/internal/domain"
	"payswitch/internal/webhook"
	"payswitch/pkg/pointers"
)

const connectorID = "checkout"

const signatureHeader = "cko-signature"

// Checkout is the adapter root. It is stateless and safe for concurrent
// use; per-flow integrations are views over it.
type Checkout struct {
	amounts connector.MinorUnitConverter
}

func New() *Checkout {
	return &Checkout{}
}

// --- Common ---

func (c *Checkout) ID() string {
	return connectorID
}

func (c *Checkout) CurrencyUnit() connector.CurrencyUnit {
	return c.amounts.Unit()
}

func (c *Checkout) CommonContentType() string {
	return "application/json"
}

func (c *Checkout) BaseURL(cfg *connector.Config) string {
	return cfg.BaseURL(connectorID)
}

// AuthHeaders authenticates with the secret key. Tokenization is the one
// exception and builds its own header set from the public key.
func (c *Checkout) AuthHeaders(auth domain.AuthType) (http.Header, error) {
	creds, err := authFrom(auth)
	if err != nil {
		return nil, err
	}
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+creds.SecretKey)
	return headers, nil
}

// BuildErrorResponse canonicalizes a non-2xx response. Checkout returns no
// body at all for a bad key, so an empty 401 synthesizes the fixed pair;
// any other empty body yields the no-code/no-message sentinels.
func (c *Checkout) BuildErrorResponse(res connector.Response) (domain.ErrorResponse, error) {
	var upstream errorResponse
	switch {
	case len(res.Body) == 0 && res.StatusCode == http.StatusUnauthorized:
		upstream = errorResponse{
			ErrorType:  pointers.Ptr("invalid_api_key"),
			ErrorCodes: &[]string{"Invalid api key"},
		}
	case len(res.Body) == 0:
	default:
		if err := json.Unmarshal(res.Body, &upstream); err != nil {
			return domain.ErrorResponse{}, fmt.Errorf("%w: %s", connector.ErrResponseDeserialization, err)
		}
	}

	code := domain.NoErrorCode
	message := domain.NoErrorMessage
	var reason *string
	if upstream.ErrorCodes != nil && len(*upstream.ErrorCodes) > 0 {
		codes := *upstream.ErrorCodes
		pairs := make([]connector.ErrorCodeAndMessage, len(codes))
		for i, ec := range codes {
			pairs[i] = connector.ErrorCodeAndMessage{ErrorCode: ec, ErrorMessage: ec}
		}
		if picked := connector.ErrorCodeMessageByPriority(c, pairs); picked != nil {
			code = picked.ErrorCode
			message = picked.ErrorMessage
		}
		reason = pointers.Ptr(strings.Join(codes, " & "))
	} else {
		reason = upstream.ErrorType
	}

	return domain.ErrorResponse{
		StatusCode:             res.StatusCode,
		Code:                   code,
		Message:                message,
		Reason:                 reason,
		ConnectorTransactionID: upstream.RequestID,
	}, nil
}

// --- Validation ---

func (c *Checkout) ValidateCaptureMethod(method domain.CaptureMethod) error {
	switch method {
	case domain.CaptureAutomatic, domain.CaptureSequentialAutomatic,
		domain.CaptureManual, domain.CaptureManualMultiple:
		return nil
	default:
		return connector.NewCaptureMethodNotSupported(string(method), connectorID)
	}
}

const maxEvidenceFileSize = 4_000_000

// ValidateFileUpload enforces Checkout's dispute-evidence constraints before
// any bytes leave the switch.
func (c *Checkout) ValidateFileUpload(purpose domain.FilePurpose, fileSize int, fileType string) error {
	if purpose != domain.FilePurposeDisputeEvidence {
		return &connector.FileValidationError{Reason: fmt.Sprintf("file purpose %s is not supported", purpose)}
	}
	if fileSize > maxEvidenceFileSize {
		return &connector.FileValidationError{Reason: "file_size exceeded the max file size of 4MB"}
	}
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "application/pdf":
		return nil
	default:
		return &connector.FileValidationError{Reason: "file_type does not match JPEG, JPG, PNG, or PDF format"}
	}
}

// --- flow plumbing ---

// flowBase carries the behavior shared by every Checkout flow: secret-key
// auth headers, JSON content type, no body, and the common error builder.
// Flows override what differs.
type flowBase[Req, Resp any] struct {
	c    *Checkout
	flow connector.Flow
}

func (b flowBase[Req, Resp]) ContentType() string {
	return b.c.CommonContentType()
}

func (b flowBase[Req, Resp]) Headers(rd *connector.RouterData[Req, Resp], _ *connector.Config) (http.Header, error) {
	headers, err := b.c.AuthHeaders(rd.Auth)
	if err != nil {
		return nil, err
	}
	headers.Set("Content-Type", b.ContentType())
	return headers, nil
}

func (b flowBase[Req, Resp]) Body(*connector.RouterData[Req, Resp]) (connector.RequestContent, error) {
	return nil, nil
}

func (b flowBase[Req, Resp]) ErrorResponse(res connector.Response) (domain.ErrorResponse, error) {
	return b.c.BuildErrorResponse(res)
}

func decode[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("%w: %s", connector.ErrResponseDeserialization, err)
	}
	return out, nil
}

// --- authorize ---

type authorizeFlow struct {
	flowBase[domain.AuthorizeRequest, domain.PaymentsResponse]
}

func (f authorizeFlow) URL(_ *connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse], cfg *connector.Config) (string, error) {
	return f.c.BaseURL(cfg) + "payments", nil
}

func (f authorizeFlow) Body(rd *connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse]) (connector.RequestContent, error) {
	creds, err := authFrom(rd.Auth)
	if err != nil {
		return nil, err
	}
	amount, err := f.c.amounts.Convert(rd.Request.Amount, rd.Request.Currency)
	if err != nil {
		return nil, err
	}
	payload, err := paymentsRequestFrom(rd.Request, amount, creds)
	if err != nil {
		return nil, err
	}
	return connector.JSONContent{Payload: payload}, nil
}

func (f authorizeFlow) BuildRequest(rd *connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse], cfg *connector.Config) (*connector.Request, error) {
	if err := f.c.ValidateCaptureMethod(rd.Request.CaptureMethod); err != nil {
		return nil, err
	}
	return connector.Assemble[domain.AuthorizeRequest, domain.PaymentsResponse](f, connector.MethodPost, rd, cfg)
}

func (f authorizeFlow) HandleResponse(rd *connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse], res connector.Response) error {
	upstream, err := decode[paymentsResponse](res.Body)
	if err != nil {
		return err
	}
	canonical := upstream.canonical(rd.Request.CaptureMethod)
	if canonical.Status == domain.AttemptFailure {
		rd.Fail(upstream.declineError(res.StatusCode))
		return nil
	}
	rd.Resolve(canonical)
	return nil
}

// --- payment sync ---

type paymentSyncFlow struct {
	flowBase[domain.SyncRequest, domain.PaymentsResponse]
}

func (f paymentSyncFlow) URL(rd *connector.RouterData[domain.SyncRequest, domain.PaymentsResponse], cfg *connector.Config) (string, error) {
	if rd.Request.ConnectorTransactionID == "" {
		return "", connector.ErrMissingConnectorTransactionID
	}
	suffix := ""
	if rd.Request.SyncType == domain.SyncMultipleCapture {
		suffix = "/actions"
	}
	return f.c.BaseURL(cfg) + "payments/" + rd.Request.ConnectorTransactionID + suffix, nil
}

func (f paymentSyncFlow) BuildRequest(rd *connector.RouterData[domain.SyncRequest, domain.PaymentsResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.SyncRequest, domain.PaymentsResponse](f, connector.MethodGet, rd, cfg)
}

func (f paymentSyncFlow) HandleResponse(rd *connector.RouterData[domain.SyncRequest, domain.PaymentsResponse], res connector.Response) error {
	if rd.Request.SyncType == domain.SyncMultipleCapture {
		actions, err := decode[[]actionResponse](res.Body)
		if err != nil {
			return err
		}
		rd.Resolve(capturesSyncResponse(actions))
		return nil
	}

	upstream, err := decode[paymentsResponse](res.Body)
	if err != nil {
		return err
	}
	canonical := upstream.canonical(rd.Request.CaptureMethod)
	if canonical.Status == domain.AttemptFailure {
		rd.Fail(upstream.declineError(res.StatusCode))
		return nil
	}
	rd.Resolve(canonical)
	return nil
}

// --- capture ---

type captureFlow struct {
	flowBase[domain.CaptureRequest, domain.PaymentsResponse]
}

func (f captureFlow) URL(rd *connector.RouterData[domain.CaptureRequest, domain.PaymentsResponse], cfg *connector.Config) (string, error) {
	if rd.Request.ConnectorTransactionID == "" {
		return "", connector.ErrMissingConnectorTransactionID
	}
	return f.c.BaseURL(cfg) + "payments/" + rd.Request.ConnectorTransactionID + "/captures", nil
}

func (f captureFlow) Body(rd *connector.RouterData[domain.CaptureRequest, domain.PaymentsResponse]) (connector.RequestContent, error) {
	creds, err := authFrom(rd.Auth)
	if err != nil {
		return nil, err
	}
	amount, err := f.c.amounts.Convert(rd.Request.Amount, rd.Request.Currency)
	if err != nil {
		return nil, err
	}
	kind := captureFinal
	if rd.Request.MultipleCapture {
		kind = captureNonFinal
	}
	return connector.JSONContent{Payload: paymentCaptureRequest{
		Amount:              amount,
		CaptureType:         kind,
		Reference:           rd.Request.Reference,
		ProcessingChannelID: creds.ProcessingChannelID,
	}}, nil
}

func (f captureFlow) BuildRequest(rd *connector.RouterData[domain.CaptureRequest, domain.PaymentsResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.CaptureRequest, domain.PaymentsResponse](f, connector.MethodPost, rd, cfg)
}

func (f captureFlow) HandleResponse(rd *connector.RouterData[domain.CaptureRequest, domain.PaymentsResponse], res connector.Response) error {
	upstream, err := decode[paymentCaptureResponse](res.Body)
	if err != nil {
		return err
	}
	rd.Resolve(upstream.canonical(rd.Request, res.StatusCode))
	return nil
}

// --- void ---

type voidFlow struct {
	flowBase[domain.VoidRequest, domain.PaymentsResponse]
}

func (f voidFlow) URL(rd *connector.RouterData[domain.VoidRequest, domain.PaymentsResponse], cfg *connector.Config) (string, error) {
	if rd.Request.ConnectorTransactionID == "" {
		return "", connector.ErrMissingConnectorTransactionID
	}
	return f.c.BaseURL(cfg) + "payments/" + rd.Request.ConnectorTransactionID + "/voids", nil
}

func (f voidFlow) Body(rd *connector.RouterData[domain.VoidRequest, domain.PaymentsResponse]) (connector.RequestContent, error) {
	return connector.JSONContent{Payload: paymentVoidRequest{Reference: rd.Request.Reference}}, nil
}

func (f voidFlow) BuildRequest(rd *connector.RouterData[domain.VoidRequest, domain.PaymentsResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.VoidRequest, domain.PaymentsResponse](f, connector.MethodPost, rd, cfg)
}

func (f voidFlow) HandleResponse(rd *connector.RouterData[domain.VoidRequest, domain.PaymentsResponse], res connector.Response) error {
	upstream, err := decode[paymentVoidResponse](res.Body)
	if err != nil {
		return err
	}
	rd.Resolve(upstream.canonical(rd.Request, res.StatusCode))
	return nil
}

// --- refund execute ---

type refundExecuteFlow struct {
	flowBase[domain.RefundRequest, domain.RefundsResponse]
}

func (f refundExecuteFlow) URL(rd *connector.RouterData[domain.RefundRequest, domain.RefundsResponse], cfg *connector.Config) (string, error) {
	if rd.Request.ConnectorTransactionID == "" {
		return "", connector.ErrMissingConnectorTransactionID
	}
	return f.c.BaseURL(cfg) + "payments/" + rd.Request.ConnectorTransactionID + "/refunds", nil
}

func (f refundExecuteFlow) Body(rd *connector.RouterData[domain.RefundRequest, domain.RefundsResponse]) (connector.RequestContent, error) {
	amount, err := f.c.amounts.Convert(rd.Request.Amount, rd.Request.Currency)
	if err != nil {
		return nil, err
	}
	return connector.JSONContent{Payload: refundRequest{
		Amount:    amount,
		Reference: rd.Request.Reference,
	}}, nil
}

func (f refundExecuteFlow) BuildRequest(rd *connector.RouterData[domain.RefundRequest, domain.RefundsResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.RefundRequest, domain.RefundsResponse](f, connector.MethodPost, rd, cfg)
}

func (f refundExecuteFlow) HandleResponse(rd *connector.RouterData[domain.RefundRequest, domain.RefundsResponse], res connector.Response) error {
	upstream, err := decode[refundResponse](res.Body)
	if err != nil {
		return err
	}
	rd.Resolve(upstream.canonical(res.StatusCode))
	return nil
}

// --- refund sync ---

type refundSyncFlow struct {
	flowBase[domain.RefundRequest, domain.RefundsResponse]
}

func (f refundSyncFlow) URL(rd *connector.RouterData[domain.RefundRequest, domain.RefundsResponse], cfg *connector.Config) (string, error) {
	if rd.Request.ConnectorTransactionID == "" {
		return "", connector.ErrMissingConnectorTransactionID
	}
	return f.c.BaseURL(cfg) + "payments/" + rd.Request.ConnectorTransactionID + "/actions", nil
}

func (f refundSyncFlow) BuildRequest(rd *connector.RouterData[domain.RefundRequest, domain.RefundsResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.RefundRequest, domain.RefundsResponse](f, connector.MethodGet, rd, cfg)
}

// HandleResponse reconciles the tracked refund against the payment's action
// log. The action list covers every operation on the payment, so the match
// is by action id.
func (f refundSyncFlow) HandleResponse(rd *connector.RouterData[domain.RefundRequest, domain.RefundsResponse], res connector.Response) error {
	actions, err := decode[[]actionResponse](res.Body)
	if err != nil {
		return err
	}
	for _, a := range actions {
		if a.ActionID == rd.Request.ConnectorRefundID {
			rd.Resolve(domain.RefundsResponse{
				ConnectorRefundID: a.ActionID,
				Status:            a.refundStatus(),
			})
			return nil
		}
	}
	return fmt.Errorf("%w: refund action %s not found", connector.ErrResponseHandling, rd.Request.ConnectorRefundID)
}

// --- tokenize ---

type tokenizeFlow struct {
	flowBase[domain.TokenizeRequest, domain.TokenizeResponse]
}

// Headers authenticates tokenization with the public key. Raw card data
// goes to the token vault, which deliberately never sees the secret key.
func (f tokenizeFlow) Headers(rd *connector.RouterData[domain.TokenizeRequest, domain.TokenizeResponse], _ *connector.Config) (http.Header, error) {
	creds, err := authFrom(rd.Auth)
	if err != nil {
		return nil, err
	}
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+creds.PublicKey)
	headers.Set("Content-Type", f.ContentType())
	return headers, nil
}

func (f tokenizeFlow) URL(_ *connector.RouterData[domain.TokenizeRequest, domain.TokenizeResponse], cfg *connector.Config) (string, error) {
	return f.c.BaseURL(cfg) + "tokens", nil
}

func (f tokenizeFlow) Body(rd *connector.RouterData[domain.TokenizeRequest, domain.TokenizeResponse]) (connector.RequestContent, error) {
	payload, err := tokenRequestFrom(rd.Request)
	if err != nil {
		return nil, err
	}
	return connector.JSONContent{Payload: payload}, nil
}

func (f tokenizeFlow) BuildRequest(rd *connector.RouterData[domain.TokenizeRequest, domain.TokenizeResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.TokenizeRequest, domain.TokenizeResponse](f, connector.MethodPost, rd, cfg)
}

func (f tokenizeFlow) HandleResponse(rd *connector.RouterData[domain.TokenizeRequest, domain.TokenizeResponse], res connector.Response) error {
	upstream, err := decode[tokenResponse](res.Body)
	if err != nil {
		return err
	}
	rd.Resolve(domain.TokenizeResponse{Token: upstream.Token})
	return nil
}

// --- dispute accept ---

type acceptDisputeFlow struct {
	flowBase[domain.AcceptDisputeRequest, domain.AcceptDisputeResponse]
}

func (f acceptDisputeFlow) URL(rd *connector.RouterData[domain.AcceptDisputeRequest, domain.AcceptDisputeResponse], cfg *connector.Config) (string, error) {
	return f.c.BaseURL(cfg) + "disputes/" + rd.Request.ConnectorDisputeID + "/accept", nil
}

func (f acceptDisputeFlow) BuildRequest(rd *connector.RouterData[domain.AcceptDisputeRequest, domain.AcceptDisputeResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.AcceptDisputeRequest, domain.AcceptDisputeResponse](f, connector.MethodPost, rd, cfg)
}

// HandleResponse synthesizes the outcome. Checkout acknowledges dispute
// acceptance with an empty body, so a 2xx is the whole signal.
func (f acceptDisputeFlow) HandleResponse(rd *connector.RouterData[domain.AcceptDisputeRequest, domain.AcceptDisputeResponse], _ connector.Response) error {
	rd.Resolve(domain.AcceptDisputeResponse{DisputeStatus: domain.DisputeAccepted})
	return nil
}

// --- dispute defend ---

type defendDisputeFlow struct {
	flowBase[domain.DefendDisputeRequest, domain.DefendDisputeResponse]
}

func (f defendDisputeFlow) URL(rd *connector.RouterData[domain.DefendDisputeRequest, domain.DefendDisputeResponse], cfg *connector.Config) (string, error) {
	return f.c.BaseURL(cfg) + "disputes/" + rd.Request.ConnectorDisputeID + "/evidence", nil
}

func (f defendDisputeFlow) BuildRequest(rd *connector.RouterData[domain.DefendDisputeRequest, domain.DefendDisputeResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.DefendDisputeRequest, domain.DefendDisputeResponse](f, connector.MethodPost, rd, cfg)
}

func (f defendDisputeFlow) HandleResponse(rd *connector.RouterData[domain.DefendDisputeRequest, domain.DefendDisputeResponse], _ connector.Response) error {
	rd.Resolve(domain.DefendDisputeResponse{DisputeStatus: domain.DisputeChallenged})
	return nil
}

// --- submit evidence ---

type submitEvidenceFlow struct {
	flowBase[domain.SubmitEvidenceRequest, domain.SubmitEvidenceResponse]
}

func (f submitEvidenceFlow) URL(rd *connector.RouterData[domain.SubmitEvidenceRequest, domain.SubmitEvidenceResponse], cfg *connector.Config) (string, error) {
	return f.c.BaseURL(cfg) + "disputes/" + rd.Request.ConnectorDisputeID + "/evidence", nil
}

func (f submitEvidenceFlow) Body(rd *connector.RouterData[domain.SubmitEvidenceRequest, domain.SubmitEvidenceResponse]) (connector.RequestContent, error) {
	return connector.JSONContent{Payload: evidenceRequestFrom(rd.Request)}, nil
}

func (f submitEvidenceFlow) BuildRequest(rd *connector.RouterData[domain.SubmitEvidenceRequest, domain.SubmitEvidenceResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.SubmitEvidenceRequest, domain.SubmitEvidenceResponse](f, connector.MethodPut, rd, cfg)
}

func (f submitEvidenceFlow) HandleResponse(rd *connector.RouterData[domain.SubmitEvidenceRequest, domain.SubmitEvidenceResponse], _ connector.Response) error {
	rd.Resolve(domain.SubmitEvidenceResponse{DisputeStatus: domain.DisputeChallenged})
	return nil
}

// --- upload file ---

type uploadFileFlow struct {
	flowBase[domain.UploadFileRequest, domain.UploadFileResponse]
}

// Headers sends auth only. The multipart boundary is generated at encode
// time, so the transport owns the Content-Type for this flow.
func (f uploadFileFlow) Headers(rd *connector.RouterData[domain.UploadFileRequest, domain.UploadFileResponse], _ *connector.Config) (http.Header, error) {
	return f.c.AuthHeaders(rd.Auth)
}

func (f uploadFileFlow) URL(_ *connector.RouterData[domain.UploadFileRequest, domain.UploadFileResponse], cfg *connector.Config) (string, error) {
	return f.c.BaseURL(cfg) + "files", nil
}

func (f uploadFileFlow) Body(rd *connector.RouterData[domain.UploadFileRequest, domain.UploadFileResponse]) (connector.RequestContent, error) {
	return fileUploadContent(rd.Request), nil
}

func (f uploadFileFlow) BuildRequest(rd *connector.RouterData[domain.UploadFileRequest, domain.UploadFileResponse], cfg *connector.Config) (*connector.Request, error) {
	if err := f.c.ValidateFileUpload(rd.Request.Purpose, rd.Request.FileSize, rd.Request.FileType); err != nil {
		return nil, err
	}
	return connector.Assemble[domain.UploadFileRequest, domain.UploadFileResponse](f, connector.MethodPost, rd, cfg)
}

func (f uploadFileFlow) HandleResponse(rd *connector.RouterData[domain.UploadFileRequest, domain.UploadFileResponse], res connector.Response) error {
	upstream, err := decode[fileUploadResponse](res.Body)
	if err != nil {
		return err
	}
	rd.Resolve(domain.UploadFileResponse{ProviderFileID: upstream.FileID})
	return nil
}

// --- retrieve file ---

type retrieveFileFlow struct {
	flowBase[domain.RetrieveFileRequest, domain.RetrieveFileResponse]
}

func (f retrieveFileFlow) URL(rd *connector.RouterData[domain.RetrieveFileRequest, domain.RetrieveFileResponse], cfg *connector.Config) (string, error) {
	return f.c.BaseURL(cfg) + "files/" + rd.Request.ProviderFileID, nil
}

func (f retrieveFileFlow) BuildRequest(rd *connector.RouterData[domain.RetrieveFileRequest, domain.RetrieveFileResponse], cfg *connector.Config) (*connector.Request, error) {
	return connector.Assemble[domain.RetrieveFileRequest, domain.RetrieveFileResponse](f, connector.MethodGet, rd, cfg)
}

func (f retrieveFileFlow) HandleResponse(rd *connector.RouterData[domain.RetrieveFileRequest, domain.RetrieveFileResponse], res connector.Response) error {
	rd.Resolve(domain.RetrieveFileResponse{FileData: res.Body})
	return nil
}

// --- flow accessors ---

func (c *Checkout) Authorize() connector.Integration[domain.AuthorizeRequest, domain.PaymentsResponse] {
	return authorizeFlow{flowBase[domain.AuthorizeRequest, domain.PaymentsResponse]{c: c, flow: connector.FlowAuthorize}}
}

func (c *Checkout) PaymentSync() connector.Integration[domain.SyncRequest, domain.PaymentsResponse] {
	return paymentSyncFlow{flowBase[domain.SyncRequest, domain.PaymentsResponse]{c: c, flow: connector.FlowPaymentSync}}
}

func (c *Checkout) Capture() connector.Integration[domain.CaptureRequest, domain.PaymentsResponse] {
	return captureFlow{flowBase[domain.CaptureRequest, domain.PaymentsResponse]{c: c, flow: connector.FlowCapture}}
}

func (c *Checkout) Void() connector.Integration[domain.VoidRequest, domain.PaymentsResponse] {
	return voidFlow{flowBase[domain.VoidRequest, domain.PaymentsResponse]{c: c, flow: connector.FlowVoid}}
}

func (c *Checkout) RefundExecute() connector.Integration[domain.RefundRequest, domain.RefundsResponse] {
	return refundExecuteFlow{flowBase[domain.RefundRequest, domain.RefundsResponse]{c: c, flow: connector.FlowRefundExecute}}
}

func (c *Checkout) RefundSync() connector.Integration[domain.RefundRequest, domain.RefundsResponse] {
	return refundSyncFlow{flowBase[domain.RefundRequest, domain.RefundsResponse]{c: c, flow: connector.FlowRefundSync}}
}

func (c *Checkout) Tokenize() connector.Integration[domain.TokenizeRequest, domain.TokenizeResponse] {
	return tokenizeFlow{flowBase[domain.TokenizeRequest, domain.TokenizeResponse]{c: c, flow: connector.FlowTokenize}}
}

func (c *Checkout) AcceptDispute() connector.Integration[domain.AcceptDisputeRequest, domain.AcceptDisputeResponse] {
	return acceptDisputeFlow{flowBase[domain.AcceptDisputeRequest, domain.AcceptDisputeResponse]{c: c, flow: connector.FlowDisputeAccept}}
}

func (c *Checkout) DefendDispute() connector.Integration[domain.DefendDisputeRequest, domain.DefendDisputeResponse] {
	return defendDisputeFlow{flowBase[domain.DefendDisputeRequest, domain.DefendDisputeResponse]{c: c, flow: connector.FlowDisputeDefend}}
}

func (c *Checkout) SubmitEvidence() connector.Integration[domain.SubmitEvidenceRequest, domain.SubmitEvidenceResponse] {
	return submitEvidenceFlow{flowBase[domain.SubmitEvidenceRequest, domain.SubmitEvidenceResponse]{c: c, flow: connector.FlowSubmitEvidence}}
}

func (c *Checkout) UploadFile() connector.Integration[domain.UploadFileRequest, domain.UploadFileResponse] {
	return uploadFileFlow{flowBase[domain.UploadFileRequest, domain.UploadFileResponse]{c: c, flow: connector.FlowUploadFile}}
}

func (c *Checkout) RetrieveFile() connector.Integration[domain.RetrieveFileRequest, domain.RetrieveFileResponse] {
	return retrieveFileFlow{flowBase[domain.RetrieveFileRequest, domain.RetrieveFileResponse]{c: c, flow: connector.FlowRetrieveFile}}
}

// Session, access-token auth and mandate setup are not offered by Checkout.

func (c *Checkout) Session() connector.Integration[domain.SessionRequest, domain.SessionResponse] {
	return connector.Unsupported[domain.SessionRequest, domain.SessionResponse]{Flow: connector.FlowSession}
}

func (c *Checkout) AccessTokenAuth() connector.Integration[domain.AccessTokenRequest, domain.AccessToken] {
	return connector.Unsupported[domain.AccessTokenRequest, domain.AccessToken]{Flow: connector.FlowAccessTokenAuth}
}

func (c *Checkout) SetupMandate() connector.Integration[domain.SetupMandateRequest, domain.PaymentsResponse] {
	return connector.Unsupported[domain.SetupMandateRequest, domain.PaymentsResponse]{Flow: connector.FlowSetupMandate}
}

// --- incoming webhooks ---

func (c *Checkout) SignatureAlgorithm() webhook.SignatureAlgorithm {
	return webhook.HMACSHA256
}

// Signature reads the hex-encoded HMAC from the cko-signature header.
func (c *Checkout) Signature(req webhook.RequestDetails) ([]byte, error) {
	raw := req.Headers.Get(signatureHeader)
	if raw == "" {
		return nil, webhook.ErrSignatureNotFound
	}
	sig, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", webhook.ErrSignatureNotFound, err)
	}
	return sig, nil
}

// VerificationMessage returns the signed byte sequence: the raw body with
// invalid UTF-8 replaced, matching how the processor computes the digest.
func (c *Checkout) VerificationMessage(req webhook.RequestDetails) ([]byte, error) {
	return []byte(strings.ToValidUTF8(string(req.Body), "�")), nil
}

func (c *Checkout) ObjectReferenceID(req webhook.RequestDetails) (webhook.ObjectReference, error) {
	var body webhookBody
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return webhook.ObjectReference{}, fmt.Errorf("%w: %s", webhook.ErrBodyDecoding, err)
	}

	switch {
	case isChargebackEvent(body.Type):
		if body.Data.Reference != nil {
			return webhook.ObjectReference{Payment: &webhook.PaymentReference{
				Kind: webhook.PaymentAttemptID, ID: *body.Data.Reference,
			}}, nil
		}
		if body.Data.PaymentID != nil {
			return webhook.ObjectReference{Payment: &webhook.PaymentReference{
				Kind: webhook.ConnectorTransactionID, ID: *body.Data.PaymentID,
			}}, nil
		}
	case isRefundEvent(body.Type):
		if body.Data.Reference != nil {
			return webhook.ObjectReference{Refund: &webhook.RefundReference{
				Kind: webhook.RefundID, ID: *body.Data.Reference,
			}}, nil
		}
		if body.Data.ActionID != nil {
			return webhook.ObjectReference{Refund: &webhook.RefundReference{
				Kind: webhook.ConnectorRefundID, ID: *body.Data.ActionID,
			}}, nil
		}
	default:
		if body.Data.Reference != nil {
			return webhook.ObjectReference{Payment: &webhook.PaymentReference{
				Kind: webhook.PaymentAttemptID, ID: *body.Data.Reference,
			}}, nil
		}
		if body.Data.ID != "" {
			return webhook.ObjectReference{Payment: &webhook.PaymentReference{
				Kind: webhook.ConnectorTransactionID, ID: body.Data.ID,
			}}, nil
		}
	}
	return webhook.ObjectReference{}, webhook.ErrReferenceIDNotFound
}

func (c *Checkout) EventType(req webhook.RequestDetails) (webhook.EventType, error) {
	var body webhookEventTypeBody
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return "", fmt.Errorf("%w: %s", webhook.ErrEventTypeNotFound, err)
	}
	return eventTypeFrom(body.Type), nil
}

func (c *Checkout) ResourceObject(req webhook.RequestDetails) (any, error) {
	var body webhookBody
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return nil, fmt.Errorf("%w: %s", webhook.ErrBodyDecoding, err)
	}

	event := eventTypeFrom(body.Type)
	switch event.Class() {
	case webhook.ClassDisputes:
		return disputePayloadFrom(body), nil
	case webhook.ClassRefunds:
		return refundEventObject{
			ActionID:  body.Data.ActionID,
			PaymentID: body.Data.PaymentID,
			Reference: body.Data.Reference,
			Amount:    body.Data.Amount,
			Currency:  body.Data.Currency,
			Status:    event,
		}, nil
	default:
		paymentID := body.Data.ID
		if body.Data.PaymentID != nil {
			paymentID = *body.Data.PaymentID
		}
		return paymentEventObject{
			PaymentID: paymentID,
			Reference: body.Data.Reference,
			Amount:    body.Data.Amount,
			Currency:  body.Data.Currency,
			Status:    event,
		}, nil
	}
}

func (c *Checkout) DisputeDetails(req webhook.RequestDetails) (webhook.DisputePayload, error) {
	var body webhookBody
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return webhook.DisputePayload{}, fmt.Errorf("%w: %s", webhook.ErrBodyDecoding, err)
	}
	return disputePayloadFrom(body), nil
}
