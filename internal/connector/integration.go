package connector

import (
	"net/http"

	"payswitch/internal/domain"
)

// Flow identifies one payment operation kind. Each Flow is statically
// paired with one request and one response shape; the pairing is enforced
// by the type parameters of Integration, not at runtime.
type Flow string

const (
	FlowAuthorize       Flow = "authorize"
	FlowCapture         Flow = "capture"
	FlowVoid            Flow = "void"
	FlowPaymentSync     Flow = "payment_sync"
	FlowRefundExecute   Flow = "refund_execute"
	FlowRefundSync      Flow = "refund_sync"
	FlowAccessTokenAuth Flow = "access_token_auth"
	FlowSetupMandate    Flow = "setup_mandate"
	FlowTokenize        Flow = "tokenize"
	FlowSession         Flow = "session"
	FlowDisputeAccept   Flow = "dispute_accept"
	FlowDisputeDefend   Flow = "dispute_defend"
	FlowSubmitEvidence  Flow = "submit_evidence"
	FlowUploadFile      Flow = "upload_file"
	FlowRetrieveFile    Flow = "retrieve_file"
)

// RouterData is the envelope the orchestration engine hands to an adapter
// for one flow invocation. The request half is never mutated by the
// adapter; exactly one of Response or Error is populated, exactly once,
// after the transport returns.
type RouterData[Req, Resp any] struct {
	Flow    Flow
	Auth    domain.AuthType
	Request Req

	Response *Resp
	Error    *domain.ErrorResponse
}

// Resolve records the successful canonical response.
func (rd *RouterData[Req, Resp]) Resolve(resp Resp) {
	rd.Response = &resp
}

// Fail records a classified processor failure. Business-level declines flow
// through here as ordinary values, not as Go errors.
func (rd *RouterData[Req, Resp]) Fail(er domain.ErrorResponse) {
	rd.Error = &er
}

// Integration is the per-flow contract an adapter supplies for one
// (Flow, Request, Response) triple. Implementations are pure compute over
// their inputs: no I/O, no retries, no shared mutable state.
type Integration[Req, Resp any] interface {
	// Headers builds the outbound header set for the flow.
	Headers(rd *RouterData[Req, Resp], cfg *Config) (http.Header, error)
	// URL builds the outbound request URL.
	URL(rd *RouterData[Req, Resp], cfg *Config) (string, error)
	// ContentType is the body content type for the flow.
	ContentType() string
	// Body builds the request body, or returns nil for body-less flows.
	Body(rd *RouterData[Req, Resp]) (RequestContent, error)
	// BuildRequest assembles method, URL, headers and body into one
	// outbound message descriptor. It never performs I/O.
	BuildRequest(rd *RouterData[Req, Resp], cfg *Config) (*Request, error)
	// HandleResponse decodes the processor's success schema and populates
	// the canonical response slot.
	HandleResponse(rd *RouterData[Req, Resp], res Response) error
	// ErrorResponse canonicalizes a non-2xx processor response.
	ErrorResponse(res Response) (domain.ErrorResponse, error)
}

// Assemble combines an integration's parts into one outbound request
// descriptor.
func Assemble[Req, Resp any](i Integration[Req, Resp], method Method, rd *RouterData[Req, Resp], cfg *Config) (*Request, error) {
	url, err := i.URL(rd, cfg)
	if err != nil {
		return nil, err
	}
	headers, err := i.Headers(rd, cfg)
	if err != nil {
		return nil, err
	}
	body, err := i.Body(rd)
	if err != nil {
		return nil, err
	}
	return &Request{
		Method:  method,
		URL:     url,
		Headers: headers,
		Body:    body,
	}, nil
}

// Unsupported is the default integration for flows a connector does not
// offer. It satisfies the contract's type shape while every operation
// surfaces a NotImplementedError naming the flow.
type Unsupported[Req, Resp any] struct {
	Flow Flow
}

func (u Unsupported[Req, Resp]) Headers(*RouterData[Req, Resp], *Config) (http.Header, error) {
	return nil, NewNotImplemented(u.Flow)
}

func (u Unsupported[Req, Resp]) URL(*RouterData[Req, Resp], *Config) (string, error) {
	return "", NewNotImplemented(u.Flow)
}

func (u Unsupported[Req, Resp]) ContentType() string {
	return "application/json"
}

func (u Unsupported[Req, Resp]) Body(*RouterData[Req, Resp]) (RequestContent, error) {
	return nil, NewNotImplemented(u.Flow)
}

func (u Unsupported[Req, Resp]) BuildRequest(*RouterData[Req, Resp], *Config) (*Request, error) {
	return nil, NewNotImplemented(u.Flow)
}

func (u Unsupported[Req, Resp]) HandleResponse(*RouterData[Req, Resp], Response) error {
	return NewNotImplemented(u.Flow)
}

func (u Unsupported[Req, Resp]) ErrorResponse(Response) (domain.ErrorResponse, error) {
	return domain.ErrorResponse{}, NewNotImplemented(u.Flow)
}
