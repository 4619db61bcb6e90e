package store

import (
	"context"

	"github.com/yungbote/storefront-backend/internal/platform/dapr"
)

// SidecarStore serves a single logical state store through the Dapr sidecar.
type SidecarStore struct {
	client    dapr.Client
	storeName string
}

func NewSidecarStore(client dapr.Client, storeName string) *SidecarStore {
	return &SidecarStore{client: client, storeName: storeName}
}

func (s *SidecarStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.client.GetState(ctx, s.storeName, key)
}

func (s *SidecarStore) Put(ctx context.Context, key string, value []byte) error {
	return s.client.SaveState(ctx, s.storeName, key, value)
}
