package session

import (
	"testing"
	"time"
	"trading-signal-bot/internal/dto"
	"trading-signal-bot/pkg/cache"

	"github.com/stretchr/testify/assert"
)

func newTestStore() *Store {
	return NewStore(cache.NewCache(time.Minute, time.Minute), time.Minute)
}

func TestStore_StateRoundTrip(t *testing.T) {
	store := newTestStore()

	assert.Equal(t, dto.StateIdle, store.GetState(100), "unknown user defaults to idle")

	store.SetState(100, dto.StateAwaitingPhone)
	assert.Equal(t, dto.StateAwaitingPhone, store.GetState(100))

	store.SetState(100, dto.StateAwaitingPaymentPhoto)
	assert.Equal(t, dto.StateAwaitingPaymentPhoto, store.GetState(100))
}

func TestStore_DataRoundTrip(t *testing.T) {
	store := newTestStore()

	assert.Equal(t, &dto.SessionData{}, store.GetData(101), "unknown user gets empty data")

	data := store.GetData(101)
	data.Phone = "+989121234567"
	data.FullName = "Ali Rezaei"
	store.SetData(101, data)

	got := store.GetData(101)
	assert.Equal(t, "+989121234567", got.Phone)
	assert.Equal(t, "Ali Rezaei", got.FullName)
}

func TestStore_Reset(t *testing.T) {
	store := newTestStore()

	store.SetState(102, dto.StateAwaitingCapitalAmount)
	store.SetData(102, &dto.SessionData{CapitalPercent: 2, Leverage: 10})

	store.Reset(102)

	assert.Equal(t, dto.StateIdle, store.GetState(102))
	assert.Equal(t, &dto.SessionData{}, store.GetData(102))
}

func TestStore_SeedSignal(t *testing.T) {
	store := newTestStore()

	store.SeedSignal(103, 50000, 49500)

	data := store.GetData(103)
	assert.Equal(t, 50000.0, data.Entry)
	assert.Equal(t, 49500.0, data.StopLoss)
	assert.Equal(t, dto.StateIdle, store.GetState(103), "seeding must not move the user into a flow")
}

func TestStore_SeedSignalKeepsExistingData(t *testing.T) {
	store := newTestStore()

	store.SetData(104, &dto.SessionData{Phone: "+989121234567"})
	store.SeedSignal(104, 50000, 49500)

	data := store.GetData(104)
	assert.Equal(t, "+989121234567", data.Phone)
	assert.Equal(t, 50000.0, data.Entry)
}
