package favorites

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenplate/sustainabite/pkg/models"
	"github.com/greenplate/sustainabite/pkg/storage"
)

// recordingBroadcaster captures every broadcast attempt.
type recordingBroadcaster struct {
	counts []int
	err    error
}

func (b *recordingBroadcaster) Broadcast(count int) error {
	b.counts = append(b.counts, count)
	return b.err
}

func newTestService(t *testing.T) (*Service, *recordingBroadcaster, *storage.Store) {
	store, err := storage.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	broadcaster := &recordingBroadcaster{}
	return New(store, broadcaster), broadcaster, store
}

func sampleRecipe(id int) models.Recipe {
	return models.Recipe{
		ID:    id,
		Title: "Veggie Stir Fry",
		Image: "https://img.example/stirfry.jpg",
		UsedIngredients: []models.Ingredient{
			{Name: "broccoli"},
		},
		MissedIngredients: []models.Ingredient{
			{Name: "soy sauce"},
		},
		ReadyInMinutes: 25,
		Servings:       2,
	}
}

func TestFavoritesEmptyWhenKeyMissing(t *testing.T) {
	svc, _, _ := newTestService(t)

	favs := svc.Favorites()
	assert.NotNil(t, favs)
	assert.Empty(t, favs)
	assert.Equal(t, 0, svc.Count())
}

func TestFavoritesEmptyOnCorruptValue(t *testing.T) {
	svc, _, store := newTestService(t)

	require.NoError(t, store.SetRaw(storageKey, []byte("{{{ not json")))

	assert.Empty(t, svc.Favorites())
	assert.False(t, svc.IsFavorite(1))
}

func TestToggleRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	recipe := sampleRecipe(42)

	require.NoError(t, svc.Toggle(recipe))
	assert.True(t, svc.IsFavorite(42))
	assert.Equal(t, 1, svc.Count())

	require.NoError(t, svc.Toggle(recipe))
	assert.False(t, svc.IsFavorite(42))
	assert.Equal(t, 0, svc.Count())
}

func TestToggleStoresSnapshotInInsertionOrder(t *testing.T) {
	svc, _, _ := newTestService(t)

	require.NoError(t, svc.Toggle(sampleRecipe(1)))
	require.NoError(t, svc.Toggle(sampleRecipe(2)))
	require.NoError(t, svc.Toggle(sampleRecipe(3)))
	require.NoError(t, svc.Toggle(sampleRecipe(2)))

	favs := svc.Favorites()
	require.Len(t, favs, 2)
	assert.Equal(t, 1, favs[0].ID)
	assert.Equal(t, 3, favs[1].ID)
}

func TestSubscribeImmediateCallback(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.NoError(t, svc.Toggle(sampleRecipe(1)))

	var got []int
	unsubscribe := svc.Subscribe(func(count int) { got = append(got, count) })
	defer unsubscribe()

	assert.Equal(t, []int{1}, got)
}

func TestSubscribersNotifiedInRegistrationOrder(t *testing.T) {
	svc, _, _ := newTestService(t)

	var order []string
	svc.Subscribe(func(count int) { order = append(order, "first") })
	svc.Subscribe(func(count int) { order = append(order, "second") })

	order = nil
	require.NoError(t, svc.Toggle(sampleRecipe(7)))

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSubscriberReceivesOneUpdatePerToggle(t *testing.T) {
	svc, _, _ := newTestService(t)

	var got []int
	svc.Subscribe(func(count int) { got = append(got, count) })

	require.NoError(t, svc.Toggle(sampleRecipe(1)))
	require.NoError(t, svc.Toggle(sampleRecipe(2)))
	require.NoError(t, svc.Toggle(sampleRecipe(1)))

	// Initial callback plus one per toggle.
	assert.Equal(t, []int{0, 1, 2, 1}, got)
}

func TestPanickingSubscriberDoesNotStopFanOut(t *testing.T) {
	svc, _, _ := newTestService(t)

	svc.Subscribe(func(count int) {
		if count > 0 {
			panic("boom")
		}
	})

	var got []int
	svc.Subscribe(func(count int) { got = append(got, count) })

	require.NoError(t, svc.Toggle(sampleRecipe(5)))
	assert.Equal(t, []int{0, 1}, got)
}

func TestSubscriberSeesPersistedStateDuringCallback(t *testing.T) {
	svc, _, _ := newTestService(t)

	var countFromRead int
	svc.Subscribe(func(count int) { countFromRead = len(svc.Favorites()) })

	require.NoError(t, svc.Toggle(sampleRecipe(9)))
	assert.Equal(t, 1, countFromRead)
}

func TestUnsubscribe(t *testing.T) {
	svc, _, _ := newTestService(t)

	var got []int
	unsubscribe := svc.Subscribe(func(count int) { got = append(got, count) })
	unsubscribe()
	// Unsubscribing twice is harmless.
	unsubscribe()

	require.NoError(t, svc.Toggle(sampleRecipe(1)))
	assert.Equal(t, []int{0}, got)
}

func TestSubscriberMayToggleReentrantly(t *testing.T) {
	svc, _, _ := newTestService(t)

	var counts []int
	svc.Subscribe(func(count int) {
		counts = append(counts, count)
		if count == 1 {
			require.NoError(t, svc.Toggle(sampleRecipe(2)))
		}
	})

	require.NoError(t, svc.Toggle(sampleRecipe(1)))

	assert.Equal(t, []int{0, 1, 2}, counts)
	assert.Equal(t, 2, svc.Count())
}

func TestSubscriberMayUnsubscribeItselfDuringNotify(t *testing.T) {
	svc, _, _ := newTestService(t)

	var got []int
	var unsubscribe func()
	unsubscribe = svc.Subscribe(func(count int) {
		got = append(got, count)
		if count > 0 {
			unsubscribe()
		}
	})

	require.NoError(t, svc.Toggle(sampleRecipe(1)))
	require.NoError(t, svc.Toggle(sampleRecipe(2)))

	// The callback saw its own removal trigger but nothing after it.
	assert.Equal(t, []int{0, 1}, got)
}

func TestBroadcastAttemptPerToggle(t *testing.T) {
	svc, broadcaster, _ := newTestService(t)

	require.NoError(t, svc.Toggle(sampleRecipe(1)))
	require.NoError(t, svc.Toggle(sampleRecipe(2)))

	assert.Equal(t, []int{1, 2}, broadcaster.counts)
}

func TestBroadcastFailureIsSwallowed(t *testing.T) {
	svc, broadcaster, _ := newTestService(t)
	broadcaster.err = errors.New("redis down")

	require.NoError(t, svc.Toggle(sampleRecipe(1)))
	assert.True(t, svc.IsFavorite(1))
}

func TestNilBroadcasterDefaultsToNoop(t *testing.T) {
	store, err := storage.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	svc := New(store, nil)
	require.NoError(t, svc.Toggle(sampleRecipe(1)))
	assert.Equal(t, 1, svc.Count())
}
