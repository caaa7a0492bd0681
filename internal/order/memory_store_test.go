package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() Draft {
	return Draft{
		RestaurantID:    "1",
		RestaurantName:  "Phở Hà Nội",
		Items:           []Item{{ID: "1", Name: "Phở Bò Đặc Biệt", UnitPrice: 65000, Quantity: 1, Options: []string{"Không hành"}}},
		TotalAmount:     80000,
		AddressID:       "1",
		PaymentMethodID: "cash",
	}
}

func TestMemoryStore_Place(t *testing.T) {
	placedAt := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)
	store := NewMemoryStore(WithClock(func() time.Time { return placedAt }))

	o, err := store.Place(sampleDraft())
	require.NoError(t, err)

	assert.Regexp(t, `^BK[0-9A-F]{6}$`, o.ID)
	assert.Equal(t, StatusPlaced, o.Status)
	assert.Equal(t, placedAt, o.PlacedAt)
	assert.Nil(t, o.Rider)

	got, err := store.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Len(t, got.Items, 1)
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("BK000000")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStore_Advance_FourStepsDelivers(t *testing.T) {
	store := NewMemoryStore()
	o, err := store.Place(sampleDraft())
	require.NoError(t, err)

	want := []Status{StatusConfirmed, StatusPreparing, StatusOnTheWay, StatusDelivered}
	for _, expected := range want {
		status, err := store.Advance(o.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, status)
	}

	// fifth advance is a no-op
	status, err := store.Advance(o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, status)
}

func TestMemoryStore_Advance_UnknownOrder(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Advance("BK000000")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStore_Advance_AttachesRiderAtOnTheWay(t *testing.T) {
	rider := Rider{Name: "Trần Thị B", Phone: "0987654321"}
	store := NewMemoryStore(WithRiderAssigner(StaticAssigner{Rider: rider}))
	o, err := store.Place(sampleDraft())
	require.NoError(t, err)

	// PLACED -> CONFIRMED -> PREPARING: no rider yet
	_, _ = store.Advance(o.ID)
	_, _ = store.Advance(o.ID)
	got, _ := store.Get(o.ID)
	assert.Nil(t, got.Rider)

	// PREPARING -> ON_THE_WAY: rider attached
	status, err := store.Advance(o.ID)
	require.NoError(t, err)
	require.Equal(t, StatusOnTheWay, status)
	got, _ = store.Get(o.ID)
	require.NotNil(t, got.Rider)
	assert.Equal(t, rider, *got.Rider)

	// rider survives delivery
	_, _ = store.Advance(o.ID)
	_, _ = store.Advance(o.ID)
	got, _ = store.Get(o.ID)
	require.NotNil(t, got.Rider)
	assert.Equal(t, rider, *got.Rider)
}

func TestMemoryStore_ActiveAndPast(t *testing.T) {
	store := NewMemoryStore()
	first, err := store.Place(sampleDraft())
	require.NoError(t, err)
	second, err := store.Place(sampleDraft())
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := store.Advance(first.ID)
		require.NoError(t, err)
	}

	active := store.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	past := store.Past()
	require.Len(t, past, 1)
	assert.Equal(t, first.ID, past[0].ID)

	assert.Len(t, store.List(), 2)
}

func TestMemoryStore_SnapshotsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	o, err := store.Place(sampleDraft())
	require.NoError(t, err)

	// mutating a returned copy must not leak into the store
	o.Status = StatusDelivered
	o.Items[0].Quantity = 99

	got, err := store.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPlaced, got.Status)
	assert.Equal(t, 1, got.Items[0].Quantity)
}
