//go:generate mockgen -source ./kv.go -destination=./mocks/kv.go -package=mock_kv
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has never been written
// or has been removed.
var ErrKeyNotFound = errors.New("key not found")

// Known storage keys. Each key is independently readable and writable;
// a corrupt or missing value for one key must not affect the others.
const (
	KeyBoxes                = "boxes"
	KeyHistory              = "history"
	KeyCurrentUserID        = "currentUserId"
	KeyAbnormalAlertEnabled = "abnormalAlertEnabled"
	KeyLastAlertBoxID       = "lastAlertBoxId"
	KeyAdminPin             = "adminPin"
	KeyHasSeenOnboarding    = "hasSeenOnboarding"
)

// AllKeys lists every key the store hydrates on startup.
func AllKeys() []string {
	return []string{
		KeyBoxes,
		KeyHistory,
		KeyCurrentUserID,
		KeyAbnormalAlertEnabled,
		KeyLastAlertBoxID,
		KeyAdminPin,
		KeyHasSeenOnboarding,
	}
}

// Store is the persistence adapter contract: a string key-value space
// with best-effort durability. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	MultiGet(ctx context.Context, keys []string) (map[string]string, error)
	MultiSet(ctx context.Context, pairs map[string]string) error
	MultiRemove(ctx context.Context, keys []string) error
}
