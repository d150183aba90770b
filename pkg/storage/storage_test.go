package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	store, err := NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := testValue{Name: "tomato", Count: 3}
	require.NoError(t, store.Set("veg:tomato", in))

	var out testValue
	require.NoError(t, store.Get("veg:tomato", &out))
	assert.Equal(t, in, out)
}

func TestGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	var out testValue
	err := store.Get("nope", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("k", testValue{Name: "x"}))
	require.NoError(t, store.Delete("k"))

	var out testValue
	assert.ErrorIs(t, store.Get("k", &out), ErrKeyNotFound)
}

func TestListPrefix(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("recipe:1", testValue{}))
	require.NoError(t, store.Set("recipe:2", testValue{}))
	require.NoError(t, store.Set("quiz:1", testValue{}))

	keys, err := store.List("recipe:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"recipe:1", "recipe:2"}, keys)
}

func TestSetRawGetRaw(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetRaw("raw", []byte("not json {")))

	data, err := store.GetRaw("raw")
	require.NoError(t, err)
	assert.Equal(t, []byte("not json {"), data)
}
