package connector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
)

// Method is the HTTP method of an outbound processor request.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// RequestContent is the body of an outbound request. Adapters build content
// values; the transport encodes and sends them.
type RequestContent interface {
	isRequestContent()
}

// JSONContent is a JSON-encoded request body.
type JSONContent struct {
	Payload any
}

func (JSONContent) isRequestContent() {}

// Encode marshals the payload.
func (c JSONContent) Encode() ([]byte, error) {
	data, err := json.Marshal(c.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode json body: %w", err)
	}
	return data, nil
}

// FormFile is one file part of a multipart body.
type FormFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

// MultipartContent is a multipart/form-data request body.
type MultipartContent struct {
	Fields map[string]string
	Files  []FormFile
}

func (MultipartContent) isRequestContent() {}

// Encode renders the multipart body and returns the content type carrying
// the generated boundary.
func (c MultipartContent) Encode() (contentType string, body []byte, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range c.Fields {
		if err := w.WriteField(name, value); err != nil {
			return "", nil, fmt.Errorf("write form field %q: %w", name, err)
		}
	}
	for _, f := range c.Files {
		part, err := w.CreateFormFile(f.FieldName, f.FileName)
		if err != nil {
			return "", nil, fmt.Errorf("create form file %q: %w", f.FieldName, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return "", nil, fmt.Errorf("write form file %q: %w", f.FieldName, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("close multipart writer: %w", err)
	}
	return w.FormDataContentType(), buf.Bytes(), nil
}

// Request is the fully assembled outbound message descriptor. Building one
// performs no I/O; execution belongs to the external transport.
type Request struct {
	Method  Method
	URL     string
	Headers http.Header
	Body    RequestContent
}

// Response is what the transport hands back after executing a Request.
type Response struct {
	StatusCode int
	Body       []byte
}

// Succeeded reports whether the status code is in the 2xx class.
func (r Response) Succeeded() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
