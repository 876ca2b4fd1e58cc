package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payswitch/internal/domain"
)

func TestRouterDataSlots(t *testing.T) {
	rd := &RouterData[domain.SyncRequest, domain.PaymentsResponse]{Flow: FlowPaymentSync}

	rd.Resolve(domain.PaymentsResponse{Status: domain.AttemptCharged, ResourceID: "pay_1"})

	require.NotNil(t, rd.Response)
	assert.Nil(t, rd.Error)
	assert.Equal(t, "pay_1", rd.Response.ResourceID)
}

func TestUnsupportedFlowNamesItself(t *testing.T) {
	u := Unsupported[domain.SessionRequest, domain.SessionResponse]{Flow: FlowSession}

	_, err := u.BuildRequest(&RouterData[domain.SessionRequest, domain.SessionResponse]{}, &Config{})

	var notImplemented *NotImplementedError
	require.ErrorAs(t, err, &notImplemented)
	assert.Equal(t, "not implemented: session", err.Error())

	_, err = u.URL(nil, nil)
	assert.ErrorAs(t, err, &notImplemented)

	err = u.HandleResponse(nil, Response{})
	assert.ErrorAs(t, err, &notImplemented)
}

func TestJSONContentEncode(t *testing.T) {
	body, err := JSONContent{Payload: map[string]any{"amount": 100}}.Encode()

	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":100}`, string(body))
}

func TestMultipartContentEncode(t *testing.T) {
	content := MultipartContent{
		Fields: map[string]string{"purpose": "dispute_evidence"},
		Files: []FormFile{{
			FieldName:   "file",
			FileName:    "receipt.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF"),
		}},
	}

	contentType, body, err := content.Encode()

	require.NoError(t, err)
	assert.Contains(t, contentType, "multipart/form-data; boundary=")
	assert.Contains(t, string(body), `name="purpose"`)
	assert.Contains(t, string(body), "dispute_evidence")
	assert.Contains(t, string(body), `filename="receipt.pdf"`)
	assert.Contains(t, string(body), "%PDF")
}

func TestResponseSucceeded(t *testing.T) {
	assert.True(t, Response{StatusCode: 200}.Succeeded())
	assert.True(t, Response{StatusCode: 202}.Succeeded())
	assert.False(t, Response{StatusCode: 199}.Succeeded())
	assert.False(t, Response{StatusCode: 422}.Succeeded())
}
