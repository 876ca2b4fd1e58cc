package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"payswitch/internal/ingest"
	"payswitch/internal/webhook"
)

type WebhookHandler struct {
	service *ingest.Service
}

func NewWebhookHandler(s *ingest.Service) WebhookHandler {
	return WebhookHandler{service: s}
}

// Receive handles POST /webhooks/:connector. The raw body is passed through
// untouched because signature verification runs over the exact bytes.
func (h *WebhookHandler) Receive(c *gin.Context) {
	connectorID := c.Param("connector")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read body"})
		return
	}

	result, err := h.service.Process(c.Request.Context(), connectorID, webhook.RequestDetails{
		Headers: c.Request.Header,
		Body:    body,
	})
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrUnknownConnector):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, ingest.ErrVerificationFailed), errors.Is(err, webhook.ErrSignatureNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Signature verification failed"})
		case errors.Is(err, webhook.ErrBodyDecoding),
			errors.Is(err, webhook.ErrEventTypeNotFound),
			errors.Is(err, webhook.ErrReferenceIDNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"event_type": result.EventType, "published": result.Published})
}
