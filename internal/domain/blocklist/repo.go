package blocklist

import "context"

//go:generate mockgen -source repo.go -destination mock_repo.go -package blocklist

// BlocklistRepo persists blocklist entries and the per-merchant guard flag.
type BlocklistRepo interface {
	CreateEntry(ctx context.Context, req AddRequest) (*Entry, error)
	DeleteEntry(ctx context.Context, merchantID, fingerprintID string) (*Entry, error)
	ListEntries(ctx context.Context, query ListQuery) ([]Entry, error)
	SetGuardStatus(ctx context.Context, merchantID string, enabled bool) error
	GuardStatus(ctx context.Context, merchantID string) (bool, error)
}
