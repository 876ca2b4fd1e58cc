package blocklist

import (
	"context"
	"fmt"
	"log/slog"
)

// Service is the admin-facing blocklist API.
type Service struct {
	repo BlocklistRepo
}

func NewService(repo BlocklistRepo) *Service {
	return &Service{repo: repo}
}

// Block adds a fingerprint to the merchant's blocklist.
func (s *Service) Block(ctx context.Context, req AddRequest) (*Entry, error) {
	if !req.DataKind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataKind, req.DataKind)
	}

	entry, err := s.repo.CreateEntry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create blocklist entry: %w", err)
	}

	slog.InfoContext(ctx, "fingerprint blocked",
		"merchant_id", req.MerchantID, "data_kind", req.DataKind)
	return entry, nil
}

// Unblock removes a fingerprint from the merchant's blocklist and returns
// the removed entry.
func (s *Service) Unblock(ctx context.Context, req RemoveRequest) (*Entry, error) {
	entry, err := s.repo.DeleteEntry(ctx, req.MerchantID, req.FingerprintID)
	if err != nil {
		return nil, fmt.Errorf("delete blocklist entry: %w", err)
	}

	slog.InfoContext(ctx, "fingerprint unblocked",
		"merchant_id", req.MerchantID, "data_kind", entry.DataKind)
	return entry, nil
}

// List returns the merchant's blocklist, optionally filtered by data kind.
func (s *Service) List(ctx context.Context, query ListQuery) ([]Entry, error) {
	if query.DataKind != nil && !query.DataKind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataKind, *query.DataKind)
	}
	if query.Limit <= 0 {
		query.Limit = 50
	}

	entries, err := s.repo.ListEntries(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blocklist entries: %w", err)
	}
	return entries, nil
}

// ToggleGuard turns blocklist enforcement on or off for the merchant.
func (s *Service) ToggleGuard(ctx context.Context, merchantID string, enabled bool) error {
	if err := s.repo.SetGuardStatus(ctx, merchantID, enabled); err != nil {
		return fmt.Errorf("set guard status: %w", err)
	}

	slog.InfoContext(ctx, "blocklist guard toggled",
		"merchant_id", merchantID, "enabled", enabled)
	return nil
}

// GuardEnabled reports whether blocklist enforcement is on for the
// merchant.
func (s *Service) GuardEnabled(ctx context.Context, merchantID string) (bool, error) {
	enabled, err := s.repo.GuardStatus(ctx, merchantID)
	if err != nil {
		return false, fmt.Errorf("get guard status: %w", err)
	}
	return enabled, nil
}
