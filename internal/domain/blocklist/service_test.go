package blocklist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request is persisted", func(t *testing.T) {
		mockRepo := NewMockBlocklistRepo(gomock.NewController(t))
		service := NewService(mockRepo)

		req := AddRequest{MerchantID: "m_1", FingerprintID: "fp_1", DataKind: KindCardBin}
		expected := &Entry{ID: "bl_1", MerchantID: "m_1", FingerprintID: "fp_1", DataKind: KindCardBin, CreatedAt: time.Now()}
		mockRepo.EXPECT().CreateEntry(ctx, req).Return(expected, nil)

		entry, err := service.Block(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, expected, entry)
	})

	t.Run("unknown data kind is rejected without touching the repo", func(t *testing.T) {
		mockRepo := NewMockBlocklistRepo(gomock.NewController(t))
		service := NewService(mockRepo)

		_, err := service.Block(ctx, AddRequest{MerchantID: "m_1", FingerprintID: "fp_1", DataKind: "card_number"})

		assert.ErrorIs(t, err, ErrInvalidDataKind)
	})

	t.Run("duplicate surfaces ErrEntryExists", func(t *testing.T) {
		mockRepo := NewMockBlocklistRepo(gomock.NewController(t))
		service := NewService(mockRepo)

		req := AddRequest{MerchantID: "m_1", FingerprintID: "fp_1", DataKind: KindCardBin}
		mockRepo.EXPECT().CreateEntry(ctx, req).Return(nil, ErrEntryExists)

		_, err := service.Block(ctx, req)

		assert.ErrorIs(t, err, ErrEntryExists)
	})
}

func TestUnblock(t *testing.T) {
	ctx := context.Background()

	t.Run("removes and returns the entry", func(t *testing.T) {
		mockRepo := NewMockBlocklistRepo(gomock.NewController(t))
		service := NewService(mockRepo)

		expected := &Entry{ID: "bl_1", MerchantID: "m_1", FingerprintID: "fp_1", DataKind: KindPaymentMethod}
		mockRepo.EXPECT().DeleteEntry(ctx, "m_1", "fp_1").Return(expected, nil)

		entry, err := service.Unblock(ctx, RemoveRequest{MerchantID: "m_1", FingerprintID: "fp_1"})

		require.NoError(t, err)
		assert.Equal(t, expected, entry)
	})

	t.Run("missing entry surfaces ErrEntryNotFound", func(t *testing.T) {
		mockRepo := NewMockBlocklistRepo(gomock.NewController(t))
		service := NewService(mockRepo)

		mockRepo.EXPECT().DeleteEntry(ctx, "m_1", "fp_missing").Return(nil, ErrEntryNotFound)

		_, err := service.Unblock(ctx, RemoveRequest{MerchantID: "m_1", FingerprintID: "fp_missing"})

		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the limit", func(t *testing.T) {
		mockRepo := NewMockBlocklistRepo(gomock.NewController(t))
		service := NewService(mockRepo)

		mockRepo.EXPECT().
			ListEntries(ctx, ListQuery{MerchantID: "m_1", Limit: 50}).
			Return([]Entry{{ID: "bl_1"}}, nil)

		entries, err := service.List(ctx, ListQuery{MerchantID: "m_1"})

		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects an invalid kind filter", func(t *testing.T) {
		mockRepo := NewMockBlocklistRepo(gomock.NewController(t))
		service := NewService(mockRepo)

		bad := DataKind("card_number")

		_, err := service.List(ctx, ListQuery{MerchantID: "m_1", DataKind: &bad})

		assert.ErrorIs(t, err, ErrInvalidDataKind)
	})
}

func TestToggleGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the flag", func(t *testing.T) {
		mockRepo := NewMockBlocklistRepo(gomock.NewController(t))
		service := NewService(mockRepo)

		mockRepo.EXPECT().SetGuardStatus(ctx, "m_1", true).Return(nil)

		require.NoError(t, service.ToggleGuard(ctx, "m_1", true))
	})

	t.Run("propagates repo failure", func(t *testing.T) {
		mockRepo := NewMockBlocklistRepo(gomock.NewController(t))
		service := NewService(mockRepo)

		repoErr := errors.New("connection reset")
		mockRepo.EXPECT().SetGuardStatus(ctx, "m_1", false).Return(repoErr)

		err := service.ToggleGuard(ctx, "m_1", false)

		assert.ErrorIs(t, err, repoErr)
	})
}
