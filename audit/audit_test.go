package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRecordAndList(t *testing.T) {
	store, err := OpenStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, "admin@example.com", "create", "doctor", "id-1", "Dr. Grey (Cardiology)"))
	require.NoError(t, store.Record(ctx, "", "delete", "appointment", "id-2", ""))

	events, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// newest first
	assert.Equal(t, "delete", events[0].Action)
	assert.Equal(t, "system", events[0].Actor)
	assert.Equal(t, "create", events[1].Action)
	assert.Equal(t, "admin@example.com", events[1].Actor)
	assert.Equal(t, "Dr. Grey (Cardiology)", events[1].Details)
	assert.False(t, events[0].CreatedAt.IsZero())
}

func TestStoreListLimit(t *testing.T) {
	store, err := OpenStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, "system", "update", "user", "id", ""))
	}

	events, err := store.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)

	// out of range limits fall back to the default
	events, err = store.List(ctx, -1)
	require.NoError(t, err)
	assert.Len(t, events, 5)
}

// The package-level helpers degrade to no-ops without an initialized store.
func TestUninitializedStore(t *testing.T) {
	prev := defaultStore
	defaultStore = nil
	defer func() { defaultStore = prev }()

	Record(context.Background(), "actor", "action", "entity", "id", "")
	events, err := List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
