package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"payswitch/internal/domain/blocklist"
)

// merchantHeader carries the acting merchant. Authentication happens at the
// gateway in front of this service.
const merchantHeader = "X-Merchant-Id"

type BlocklistHandler struct {
	service *blocklist.Service
}

func NewBlocklistHandler(s *blocklist.Service) BlocklistHandler {
	return BlocklistHandler{service: s}
}

func merchantID(c *gin.Context) (string, bool) {
	id := c.GetHeader(merchantHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing " + merchantHeader + " header"})
		return "", false
	}
	return id, true
}

// Block handles POST /blocklist.
func (h *BlocklistHandler) Block(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	var req blocklist.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	req.MerchantID = merchant

	entry, err := h.service.Block(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, blocklist.ErrInvalidDataKind):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, blocklist.ErrEntryExists):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Unblock handles DELETE /blocklist.
func (h *BlocklistHandler) Unblock(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	var req blocklist.RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	req.MerchantID = merchant

	entry, err := h.service.Unblock(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, blocklist.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// List handles GET /blocklist?data_kind=&limit=&offset=.
func (h *BlocklistHandler) List(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	query := blocklist.ListQuery{MerchantID: merchant}
	if kind := c.Query("data_kind"); kind != "" {
		dataKind := blocklist.DataKind(kind)
		query.DataKind = &dataKind
	}
	query.Limit, _ = strconv.Atoi(c.Query("limit"))
	query.Offset, _ = strconv.Atoi(c.Query("offset"))

	entries, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, blocklist.ErrInvalidDataKind) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// ToggleGuard handles POST /blocklist/toggle?status=.
func (h *BlocklistHandler) ToggleGuard(c *gin.Context) {
	merchant, ok := merchantID(c)
	if !ok {
		return
	}

	enabled, err := strconv.ParseBool(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query param status must be true or false"})
		return
	}

	if err := h.service.ToggleGuard(c.Request.Context(), merchant, enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocklist_guard_enabled": enabled})
}
