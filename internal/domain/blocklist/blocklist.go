// Package blocklist manages per-merchant blocked payment instruments. The
// switch consults the list before routing an authorization; this package
// owns the admin surface and persistence.
package blocklist

import (
	"errors"
	"time"
)

var (
	// ErrEntryExists is returned when the fingerprint is already blocked
	// for the merchant.
	ErrEntryExists = errors.New("blocklist entry already exists")

	// ErrEntryNotFound is returned when no entry matches the fingerprint.
	ErrEntryNotFound = errors.New("blocklist entry not found")

	// ErrInvalidDataKind is returned for an unrecognized data kind.
	ErrInvalidDataKind = errors.New("invalid blocklist data kind")
)

// DataKind says what the blocked fingerprint identifies.
type DataKind string

const (
	KindPaymentMethod   DataKind = "payment_method"
	KindCardBin         DataKind = "card_bin"
	KindExtendedCardBin DataKind = "extended_card_bin"
)

// Valid reports whether the kind is one of the known values.
func (k DataKind) Valid() bool {
	switch k {
	case KindPaymentMethod, KindCardBin, KindExtendedCardBin:
		return true
	default:
		return false
	}
}

// Entry is one blocked instrument.
type Entry struct {
	ID            string    `json:"id"`
	MerchantID    string    `json:"merchant_id"`
	FingerprintID string    `json:"fingerprint_id"`
	DataKind      DataKind  `json:"data_kind"`
	CreatedAt     time.Time `json:"created_at"`
}

// AddRequest blocks one fingerprint for a merchant.
type AddRequest struct {
	MerchantID    string   `json:"-"`
	FingerprintID string   `json:"fingerprint_id" binding:"required"`
	DataKind      DataKind `json:"data_kind" binding:"required"`
}

// RemoveRequest unblocks one fingerprint for a merchant.
type RemoveRequest struct {
	MerchantID    string `json:"-"`
	FingerprintID string `json:"fingerprint_id" binding:"required"`
}

// ListQuery filters the merchant's blocklist.
type ListQuery struct {
	MerchantID string
	DataKind   *DataKind
	Limit      int
	Offset     int
}
