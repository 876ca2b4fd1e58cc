package checkout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payswitch/internal/connector"
	"payswitch/internal/domain"
	"payswitch/pkg/pointers"
)

var testAuth = domain.SignatureKeyAuth{
	APIKey:    "pk_test_public",
	Key1:      "pc_channel",
	APISecret: "sk_test_secret",
}

var testCfg = &connector.Config{
	BaseURLs: map[string]string{"checkout": "https://api.sandbox.checkout.com/"},
}

func TestAuthHeaders(t *testing.T) {
	c := New()

	t.Run("signature key auth uses the secret key", func(t *testing.T) {
		headers, err := c.AuthHeaders(testAuth)

		require.NoError(t, err)
		assert.Equal(t, "Bearer sk_test_secret", headers.Get("Authorization"))
	})

	t.Run("wrong credential shape fails", func(t *testing.T) {
		_, err := c.AuthHeaders(domain.HeaderKeyAuth{APIKey: "key"})

		assert.ErrorIs(t, err, connector.ErrFailedToObtainAuthType)
	})
}

func TestBuildErrorResponse(t *testing.T) {
	c := New()

	tests := []struct {
		name     string
		res      connector.Response
		expected domain.ErrorResponse
	}{
		{
			name: "empty 401 body becomes invalid api key",
			res:  connector.Response{StatusCode: 401},
			expected: domain.ErrorResponse{
				StatusCode: 401,
				Code:       "Invalid api key",
				Message:    "Invalid api key",
				Reason:     pointers.Ptr("Invalid api key"),
			},
		},
		{
			name: "highest priority code wins and reason joins all",
			res: connector.Response{
				StatusCode: 422,
				Body:       []byte(`{"request_id":"req_123","error_type":"request_invalid","error_codes":["card_expired","processing_error"]}`),
			},
			expected: domain.ErrorResponse{
				StatusCode:             422,
				Code:                   "card_expired",
				Message:                "card_expired",
				Reason:                 pointers.Ptr("card_expired & processing_error"),
				ConnectorTransactionID: pointers.Ptr("req_123"),
			},
		},
		{
			name: "unknown code outranks classified ones",
			res: connector.Response{
				StatusCode: 422,
				Body:       []byte(`{"error_codes":["card_expired","mystery_code"]}`),
			},
			expected: domain.ErrorResponse{
				StatusCode: 422,
				Code:       "mystery_code",
				Message:    "mystery_code",
				Reason:     pointers.Ptr("card_expired & mystery_code"),
			},
		},
		{
			name: "empty non-401 body keeps the sentinels",
			res:  connector.Response{StatusCode: 500},
			expected: domain.ErrorResponse{
				StatusCode: 500,
				Code:       domain.NoErrorCode,
				Message:    domain.NoErrorMessage,
			},
		},
		{
			name: "no codes falls back to error type and sentinels",
			res: connector.Response{
				StatusCode: 422,
				Body:       []byte(`{"request_id":"req_9","error_type":"request_invalid"}`),
			},
			expected: domain.ErrorResponse{
				StatusCode:             422,
				Code:                   domain.NoErrorCode,
				Message:                domain.NoErrorMessage,
				Reason:                 pointers.Ptr("request_invalid"),
				ConnectorTransactionID: pointers.Ptr("req_9"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.BuildErrorResponse(tt.res)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("undecodable body fails deserialization", func(t *testing.T) {
		_, err := c.BuildErrorResponse(connector.Response{StatusCode: 500, Body: []byte("<html>")})

		assert.ErrorIs(t, err, connector.ErrResponseDeserialization)
	})
}

func TestValidateCaptureMethod(t *testing.T) {
	c := New()

	for _, method := range []domain.CaptureMethod{
		domain.CaptureAutomatic,
		domain.CaptureSequentialAutomatic,
		domain.CaptureManual,
		domain.CaptureManualMultiple,
	} {
		assert.NoError(t, c.ValidateCaptureMethod(method))
	}

	err := c.ValidateCaptureMethod(domain.CaptureScheduled)

	var notImplemented *connector.NotImplementedError
	require.ErrorAs(t, err, &notImplemented)
	assert.Contains(t, notImplemented.Message, "scheduled")
	assert.Contains(t, notImplemented.Message, "checkout")
}

func TestValidateFileUpload(t *testing.T) {
	c := New()

	tests := []struct {
		name    string
		purpose domain.FilePurpose
		size    int
		mime    string
		wantErr string
	}{
		{"pdf within limit", domain.FilePurposeDisputeEvidence, 1024, "application/pdf", ""},
		{"jpeg within limit", domain.FilePurposeDisputeEvidence, 1024, "image/jpeg", ""},
		{"oversized file", domain.FilePurposeDisputeEvidence, 4_000_001, "image/png", "file_size exceeded the max file size of 4MB"},
		{"unsupported mime", domain.FilePurposeDisputeEvidence, 1024, "text/csv", "file_type does not match JPEG, JPG, PNG, or PDF format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.ValidateFileUpload(tt.purpose, tt.size, tt.mime)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var validation *connector.FileValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.wantErr, validation.Reason)
		})
	}
}

func TestAuthorizeFlow(t *testing.T) {
	c := New()

	t.Run("build request", func(t *testing.T) {
		rd := &connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse]{
			Flow: connector.FlowAuthorize,
			Auth: testAuth,
			Request: domain.AuthorizeRequest{
				Amount:   1050,
				Currency: "USD",
				PaymentMethod: domain.PaymentMethodData{Card: &domain.Card{
					Number:      "4242424242424242",
					ExpiryMonth: "10",
					ExpiryYear:  "2030",
					CVC:         "100",
					HolderName:  "John Doe",
				}},
				CaptureMethod: domain.CaptureAutomatic,
				Reference:     "pay_attempt_1",
			},
		}

		req, err := c.Authorize().BuildRequest(rd, testCfg)

		require.NoError(t, err)
		assert.Equal(t, connector.MethodPost, req.Method)
		assert.Equal(t, "https://api.sandbox.checkout.com/payments", req.URL)
		assert.Equal(t, "Bearer sk_test_secret", req.Headers.Get("Authorization"))
		assert.Equal(t, "application/json", req.Headers.Get("Content-Type"))

		body, err := req.Body.(connector.JSONContent).Encode()
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"source": {"type":"card","number":"4242424242424242","expiry_month":"10","expiry_year":"2030","cvv":"100","name":"John Doe"},
			"amount": 1050,
			"currency": "USD",
			"processing_channel_id": "pc_channel",
			"reference": "pay_attempt_1",
			"capture": true
		}`, string(body))
	})

	t.Run("scheduled capture is rejected before any request is built", func(t *testing.T) {
		rd := &connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse]{
			Flow: connector.FlowAuthorize,
			Auth: testAuth,
			Request: domain.AuthorizeRequest{
				CaptureMethod: domain.CaptureScheduled,
				PaymentMethod: domain.PaymentMethodData{Token: pointers.Ptr("tok_1")},
			},
		}

		_, err := c.Authorize().BuildRequest(rd, testCfg)

		var notImplemented *connector.NotImplementedError
		assert.ErrorAs(t, err, &notImplemented)
	})

	t.Run("authorized under manual capture", func(t *testing.T) {
		rd := &connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse]{
			Flow:    connector.FlowAuthorize,
			Auth:    testAuth,
			Request: domain.AuthorizeRequest{CaptureMethod: domain.CaptureManual},
		}

		err := c.Authorize().HandleResponse(rd, connector.Response{
			StatusCode: 201,
			Body:       []byte(`{"id":"pay_abc","status":"Authorized","reference":"ref_1"}`),
		})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		assert.Nil(t, rd.Error)
		assert.Equal(t, domain.AttemptAuthorized, rd.Response.Status)
		assert.Equal(t, "pay_abc", rd.Response.ResourceID)
	})

	t.Run("authorized under automatic capture is charged", func(t *testing.T) {
		rd := &connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse]{
			Flow:    connector.FlowAuthorize,
			Auth:    testAuth,
			Request: domain.AuthorizeRequest{CaptureMethod: domain.CaptureAutomatic},
		}

		err := c.Authorize().HandleResponse(rd, connector.Response{
			StatusCode: 201,
			Body:       []byte(`{"id":"pay_abc","status":"Authorized"}`),
		})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		assert.Equal(t, domain.AttemptCharged, rd.Response.Status)
	})

	t.Run("redirect link keeps the attempt in authentication", func(t *testing.T) {
		rd := &connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse]{
			Flow:    connector.FlowAuthorize,
			Auth:    testAuth,
			Request: domain.AuthorizeRequest{CaptureMethod: domain.CaptureAutomatic},
		}

		err := c.Authorize().HandleResponse(rd, connector.Response{
			StatusCode: 202,
			Body:       []byte(`{"id":"pay_3ds","status":"Pending","_links":{"redirect":{"href":"https://3ds.example/session"}}}`),
		})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		assert.Equal(t, domain.AttemptAuthenticationPending, rd.Response.Status)
		require.NotNil(t, rd.Response.RedirectURL)
		assert.Equal(t, "https://3ds.example/session", *rd.Response.RedirectURL)
	})

	t.Run("decline lands in the error slot, not in the Go error", func(t *testing.T) {
		rd := &connector.RouterData[domain.AuthorizeRequest, domain.PaymentsResponse]{
			Flow:    connector.FlowAuthorize,
			Auth:    testAuth,
			Request: domain.AuthorizeRequest{CaptureMethod: domain.CaptureAutomatic},
		}

		err := c.Authorize().HandleResponse(rd, connector.Response{
			StatusCode: 201,
			Body:       []byte(`{"id":"pay_dec","status":"Declined","response_code":"20005","response_summary":"Declined - Do Not Honour"}`),
		})

		require.NoError(t, err)
		assert.Nil(t, rd.Response)
		require.NotNil(t, rd.Error)
		assert.Equal(t, "20005", rd.Error.Code)
		assert.Equal(t, "Declined - Do Not Honour", rd.Error.Message)
		assert.Equal(t, pointers.Ptr("pay_dec"), rd.Error.ConnectorTransactionID)
		require.NotNil(t, rd.Error.AttemptStatus)
		assert.Equal(t, domain.AttemptFailure, *rd.Error.AttemptStatus)
	})
}

func TestPaymentSyncFlow(t *testing.T) {
	c := New()

	t.Run("single payment url", func(t *testing.T) {
		rd := &connector.RouterData[domain.SyncRequest, domain.PaymentsResponse]{
			Flow:    connector.FlowPaymentSync,
			Auth:    testAuth,
			Request: domain.SyncRequest{ConnectorTransactionID: "pay_abc", SyncType: domain.SyncSinglePayment},
		}

		req, err := c.PaymentSync().BuildRequest(rd, testCfg)

		require.NoError(t, err)
		assert.Equal(t, connector.MethodGet, req.Method)
		assert.Equal(t, "https://api.sandbox.checkout.com/payments/pay_abc", req.URL)
		assert.Nil(t, req.Body)
	})

	t.Run("multiple capture sync hits the action log", func(t *testing.T) {
		rd := &connector.RouterData[domain.SyncRequest, domain.PaymentsResponse]{
			Flow:    connector.FlowPaymentSync,
			Auth:    testAuth,
			Request: domain.SyncRequest{ConnectorTransactionID: "pay_abc", SyncType: domain.SyncMultipleCapture},
		}

		req, err := c.PaymentSync().BuildRequest(rd, testCfg)

		require.NoError(t, err)
		assert.Equal(t, "https://api.sandbox.checkout.com/payments/pay_abc/actions", req.URL)

		err = c.PaymentSync().HandleResponse(rd, connector.Response{
			StatusCode: 200,
			Body: []byte(`[
				{"action_id":"act_auth","type":"Authorization","amount":1000,"approved":true},
				{"action_id":"act_cap1","type":"Capture","amount":400,"approved":true,"reference":"cap_1"},
				{"action_id":"act_cap2","type":"Capture","amount":600,"approved":false,"reference":"cap_2"}
			]`),
		})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		require.Len(t, rd.Response.Captures, 2)
		assert.Equal(t, domain.AttemptCharged, rd.Response.Captures[0].Status)
		assert.Equal(t, domain.MinorUnit(400), rd.Response.Captures[0].Amount)
		assert.Equal(t, domain.AttemptFailure, rd.Response.Captures[1].Status)
	})

	t.Run("missing transaction id", func(t *testing.T) {
		rd := &connector.RouterData[domain.SyncRequest, domain.PaymentsResponse]{
			Flow: connector.FlowPaymentSync,
			Auth: testAuth,
		}

		_, err := c.PaymentSync().BuildRequest(rd, testCfg)

		assert.ErrorIs(t, err, connector.ErrMissingConnectorTransactionID)
	})
}

func TestCaptureFlow(t *testing.T) {
	c := New()

	rd := &connector.RouterData[domain.CaptureRequest, domain.PaymentsResponse]{
		Flow: connector.FlowCapture,
		Auth: testAuth,
		Request: domain.CaptureRequest{
			ConnectorTransactionID: "pay_abc",
			Amount:                 500,
			Currency:               "EUR",
			Reference:              "cap_ref",
			MultipleCapture:        true,
		},
	}

	req, err := c.Capture().BuildRequest(rd, testCfg)

	require.NoError(t, err)
	assert.Equal(t, "https://api.sandbox.checkout.com/payments/pay_abc/captures", req.URL)

	body, err := req.Body.(connector.JSONContent).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":500,"capture_type":"NonFinal","reference":"cap_ref","processing_channel_id":"pc_channel"}`, string(body))

	err = c.Capture().HandleResponse(rd, connector.Response{
		StatusCode: 202,
		Body:       []byte(`{"action_id":"act_cap","reference":"cap_ref"}`),
	})

	require.NoError(t, err)
	require.NotNil(t, rd.Response)
	assert.Equal(t, domain.AttemptCaptureInitiated, rd.Response.Status)
	assert.Equal(t, "pay_abc", rd.Response.ResourceID)
}

func TestVoidFlow(t *testing.T) {
	c := New()

	rd := &connector.RouterData[domain.VoidRequest, domain.PaymentsResponse]{
		Flow:    connector.FlowVoid,
		Auth:    testAuth,
		Request: domain.VoidRequest{ConnectorTransactionID: "pay_abc", Reference: "void_ref"},
	}

	req, err := c.Void().BuildRequest(rd, testCfg)

	require.NoError(t, err)
	assert.Equal(t, "https://api.sandbox.checkout.com/payments/pay_abc/voids", req.URL)

	err = c.Void().HandleResponse(rd, connector.Response{
		StatusCode: 202,
		Body:       []byte(`{"action_id":"act_void"}`),
	})

	require.NoError(t, err)
	require.NotNil(t, rd.Response)
	assert.Equal(t, domain.AttemptVoided, rd.Response.Status)
}

func TestRefundFlows(t *testing.T) {
	c := New()

	t.Run("execute", func(t *testing.T) {
		rd := &connector.RouterData[domain.RefundRequest, domain.RefundsResponse]{
			Flow: connector.FlowRefundExecute,
			Auth: testAuth,
			Request: domain.RefundRequest{
				ConnectorTransactionID: "pay_abc",
				Amount:                 300,
				Currency:               "USD",
				Reference:              "ref_1",
			},
		}

		req, err := c.RefundExecute().BuildRequest(rd, testCfg)

		require.NoError(t, err)
		assert.Equal(t, "https://api.sandbox.checkout.com/payments/pay_abc/refunds", req.URL)

		err = c.RefundExecute().HandleResponse(rd, connector.Response{
			StatusCode: 202,
			Body:       []byte(`{"action_id":"act_ref"}`),
		})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		assert.Equal(t, "act_ref", rd.Response.ConnectorRefundID)
		assert.Equal(t, domain.RefundSuccess, rd.Response.Status)
	})

	t.Run("sync finds the tracked action", func(t *testing.T) {
		rd := &connector.RouterData[domain.RefundRequest, domain.RefundsResponse]{
			Flow: connector.FlowRefundSync,
			Auth: testAuth,
			Request: domain.RefundRequest{
				ConnectorTransactionID: "pay_abc",
				ConnectorRefundID:      "act_ref",
			},
		}

		err := c.RefundSync().HandleResponse(rd, connector.Response{
			StatusCode: 200,
			Body: []byte(`[
				{"action_id":"act_cap","type":"Capture","amount":1000,"approved":true},
				{"action_id":"act_ref","type":"Refund","amount":300,"approved":true}
			]`),
		})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		assert.Equal(t, domain.RefundSuccess, rd.Response.Status)
	})

	t.Run("sync fails when the action is absent", func(t *testing.T) {
		rd := &connector.RouterData[domain.RefundRequest, domain.RefundsResponse]{
			Flow:    connector.FlowRefundSync,
			Auth:    testAuth,
			Request: domain.RefundRequest{ConnectorTransactionID: "pay_abc", ConnectorRefundID: "act_missing"},
		}

		err := c.RefundSync().HandleResponse(rd, connector.Response{
			StatusCode: 200,
			Body:       []byte(`[{"action_id":"act_cap","type":"Capture","amount":1000,"approved":true}]`),
		})

		assert.ErrorIs(t, err, connector.ErrResponseHandling)
	})
}

func TestTokenizeFlow(t *testing.T) {
	c := New()

	rd := &connector.RouterData[domain.TokenizeRequest, domain.TokenizeResponse]{
		Flow: connector.FlowTokenize,
		Auth: testAuth,
		Request: domain.TokenizeRequest{
			PaymentMethod: domain.PaymentMethodData{Card: &domain.Card{
				Number:      "4242424242424242",
				ExpiryMonth: "10",
				ExpiryYear:  "2030",
				CVC:         "100",
			}},
		},
	}

	req, err := c.Tokenize().BuildRequest(rd, testCfg)

	require.NoError(t, err)
	assert.Equal(t, "https://api.sandbox.checkout.com/tokens", req.URL)
	assert.Equal(t, "Bearer pk_test_public", req.Headers.Get("Authorization"))

	err = c.Tokenize().HandleResponse(rd, connector.Response{
		StatusCode: 201,
		Body:       []byte(`{"token":"tok_xyz"}`),
	})

	require.NoError(t, err)
	require.NotNil(t, rd.Response)
	assert.Equal(t, "tok_xyz", rd.Response.Token)
}

func TestDisputeFlows(t *testing.T) {
	c := New()

	t.Run("accept synthesizes the outcome from the status code", func(t *testing.T) {
		rd := &connector.RouterData[domain.AcceptDisputeRequest, domain.AcceptDisputeResponse]{
			Flow:    connector.FlowDisputeAccept,
			Auth:    testAuth,
			Request: domain.AcceptDisputeRequest{ConnectorDisputeID: "dsp_1"},
		}

		req, err := c.AcceptDispute().BuildRequest(rd, testCfg)

		require.NoError(t, err)
		assert.Equal(t, connector.MethodPost, req.Method)
		assert.Equal(t, "https://api.sandbox.checkout.com/disputes/dsp_1/accept", req.URL)

		err = c.AcceptDispute().HandleResponse(rd, connector.Response{StatusCode: 204})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		assert.Equal(t, domain.DisputeAccepted, rd.Response.DisputeStatus)
	})

	t.Run("defend posts to evidence", func(t *testing.T) {
		rd := &connector.RouterData[domain.DefendDisputeRequest, domain.DefendDisputeResponse]{
			Flow:    connector.FlowDisputeDefend,
			Auth:    testAuth,
			Request: domain.DefendDisputeRequest{ConnectorDisputeID: "dsp_1"},
		}

		req, err := c.DefendDispute().BuildRequest(rd, testCfg)

		require.NoError(t, err)
		assert.Equal(t, connector.MethodPost, req.Method)
		assert.Equal(t, "https://api.sandbox.checkout.com/disputes/dsp_1/evidence", req.URL)

		err = c.DefendDispute().HandleResponse(rd, connector.Response{StatusCode: 204})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		assert.Equal(t, domain.DisputeChallenged, rd.Response.DisputeStatus)
	})

	t.Run("submit evidence puts file ids", func(t *testing.T) {
		rd := &connector.RouterData[domain.SubmitEvidenceRequest, domain.SubmitEvidenceResponse]{
			Flow: connector.FlowSubmitEvidence,
			Auth: testAuth,
			Request: domain.SubmitEvidenceRequest{
				ConnectorDisputeID:  "dsp_1",
				ReceiptFileID:       pointers.Ptr("file_rcpt"),
				UncategorizedFileID: pointers.Ptr("file_misc"),
			},
		}

		req, err := c.SubmitEvidence().BuildRequest(rd, testCfg)

		require.NoError(t, err)
		assert.Equal(t, connector.MethodPut, req.Method)
		assert.Equal(t, "https://api.sandbox.checkout.com/disputes/dsp_1/evidence", req.URL)

		body, err := req.Body.(connector.JSONContent).Encode()
		require.NoError(t, err)
		assert.JSONEq(t, `{"invoice_or_receipt_file":"file_rcpt","additional_evidence_file":"file_misc"}`, string(body))
	})
}

func TestFileFlows(t *testing.T) {
	c := New()

	t.Run("upload builds a multipart body without a preset content type", func(t *testing.T) {
		rd := &connector.RouterData[domain.UploadFileRequest, domain.UploadFileResponse]{
			Flow: connector.FlowUploadFile,
			Auth: testAuth,
			Request: domain.UploadFileRequest{
				Purpose:  domain.FilePurposeDisputeEvidence,
				FileName: "receipt.pdf",
				FileType: "application/pdf",
				FileSize: 3,
				File:     []byte("pdf"),
			},
		}

		req, err := c.UploadFile().BuildRequest(rd, testCfg)

		require.NoError(t, err)
		assert.Equal(t, "https://api.sandbox.checkout.com/files", req.URL)
		assert.Empty(t, req.Headers.Get("Content-Type"))

		content, ok := req.Body.(connector.MultipartContent)
		require.True(t, ok)
		contentType, body, err := content.Encode()
		require.NoError(t, err)
		assert.Contains(t, contentType, "multipart/form-data")
		assert.Contains(t, string(body), `name="purpose"`)
		assert.Contains(t, string(body), `filename="receipt.pdf"`)

		err = c.UploadFile().HandleResponse(rd, connector.Response{
			StatusCode: 201,
			Body:       []byte(`{"id":"file_123"}`),
		})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		assert.Equal(t, "file_123", rd.Response.ProviderFileID)
	})

	t.Run("upload rejects invalid files before building", func(t *testing.T) {
		rd := &connector.RouterData[domain.UploadFileRequest, domain.UploadFileResponse]{
			Flow: connector.FlowUploadFile,
			Auth: testAuth,
			Request: domain.UploadFileRequest{
				Purpose:  domain.FilePurposeDisputeEvidence,
				FileName: "data.csv",
				FileType: "text/csv",
				FileSize: 10,
			},
		}

		_, err := c.UploadFile().BuildRequest(rd, testCfg)

		var validation *connector.FileValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("retrieve returns raw bytes", func(t *testing.T) {
		rd := &connector.RouterData[domain.RetrieveFileRequest, domain.RetrieveFileResponse]{
			Flow:    connector.FlowRetrieveFile,
			Auth:    testAuth,
			Request: domain.RetrieveFileRequest{ProviderFileID: "file_123"},
		}

		req, err := c.RetrieveFile().BuildRequest(rd, testCfg)

		require.NoError(t, err)
		assert.Equal(t, "https://api.sandbox.checkout.com/files/file_123", req.URL)

		err = c.RetrieveFile().HandleResponse(rd, connector.Response{StatusCode: 200, Body: []byte("raw")})

		require.NoError(t, err)
		require.NotNil(t, rd.Response)
		assert.Equal(t, []byte("raw"), rd.Response.FileData)
	})
}

func TestUnsupportedFlows(t *testing.T) {
	c := New()

	_, err := c.Session().BuildRequest(&connector.RouterData[domain.SessionRequest, domain.SessionResponse]{}, testCfg)
	var notImplemented *connector.NotImplementedError
	require.True(t, errors.As(err, &notImplemented))
	assert.Equal(t, "session", notImplemented.Message)

	_, err = c.AccessTokenAuth().BuildRequest(&connector.RouterData[domain.AccessTokenRequest, domain.AccessToken]{}, testCfg)
	assert.ErrorAs(t, err, &notImplemented)

	_, err = c.SetupMandate().BuildRequest(&connector.RouterData[domain.SetupMandateRequest, domain.PaymentsResponse]{}, testCfg)
	assert.ErrorAs(t, err, &notImplemented)
}

func TestSpecifications(t *testing.T) {
	c := New()

	assert.Equal(t, "Checkout", c.About().DisplayName)

	methods := c.SupportedPaymentMethods()
	require.Contains(t, methods, domain.PaymentMethodCard)
	credit := methods[domain.PaymentMethodCard][domain.PaymentMethodTypeCredit]
	assert.Equal(t, connector.FeatureSupported, credit.Refunds)
	assert.NotContains(t, credit.SupportedCaptureMethods, domain.CaptureScheduled)
	assert.Len(t, credit.SupportedCardNetworks, 8)

	assert.Len(t, c.SupportedWebhookFlows(), 3)
	assert.Equal(t, connector.RedirectTrigger, c.RedirectBehavior(connector.ActionPaymentSync))
}

func TestErrorTypeClassification(t *testing.T) {
	c := New()

	assert.Equal(t, connector.UserError, c.ErrorType("card_expired", ""))
	assert.Equal(t, connector.BusinessError, c.ErrorType("amount_exceeds_balance", ""))
	assert.Equal(t, connector.TechnicalError, c.ErrorType("processing_error", ""))
	assert.Equal(t, connector.UnknownError, c.ErrorType("mystery_code", ""))
}
