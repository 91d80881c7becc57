package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateGetDestroy(t *testing.T) {
	store := NewStore(time.Hour)

	p := Principal{UserID: "u1", Username: "aigerim", IsAdmin: true}
	id := store.Create(p)
	require.NotEmpty(t, id)

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = store.Get("no-such-session")
	assert.False(t, ok)

	store.Destroy(id)
	_, ok = store.Get(id)
	assert.False(t, ok)

	// Destroying twice is harmless.
	store.Destroy(id)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(time.Hour)

	now := time.Now()
	store.now = func() time.Time { return now }

	id := store.Create(Principal{UserID: "u1", Username: "bob"})

	_, ok := store.Get(id)
	require.True(t, ok)

	// Jump past the TTL: the entry is invisible but not yet reaped.
	now = now.Add(2 * time.Hour)
	_, ok = store.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 0, store.Sweep())
}
