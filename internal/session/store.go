package session

import (
	"fmt"
	"time"
	"trading-signal-bot/internal/dto"
	"trading-signal-bot/pkg/cache"
)

const (
	userStateKey = "user_state:%d"
	userDataKey  = "user_data:%d"
)

// Store keeps per-chat conversation state. State and captured data expire
// together; Reset drops both.
type Store struct {
	cache      cache.Cache
	expiration time.Duration
}

func NewStore(inmemoryCache cache.Cache, expiration time.Duration) *Store {
	return &Store{
		cache:      inmemoryCache,
		expiration: expiration,
	}
}

func (s *Store) GetState(userID int64) int {
	state, ok := cache.GetFromCache[int](fmt.Sprintf(userStateKey, userID))
	if !ok {
		return dto.StateIdle
	}
	return state
}

func (s *Store) SetState(userID int64, state int) {
	s.cache.Set(fmt.Sprintf(userStateKey, userID), state, s.expiration)
}

func (s *Store) GetData(userID int64) *dto.SessionData {
	data, ok := cache.GetFromCache[*dto.SessionData](fmt.Sprintf(userDataKey, userID))
	if !ok {
		return &dto.SessionData{}
	}
	return data
}

func (s *Store) SetData(userID int64, data *dto.SessionData) {
	s.cache.Set(fmt.Sprintf(userDataKey, userID), data, s.expiration)
}

// Reset clears both the flow state and the captured data for a chat. Every
// completed or abandoned flow ends here.
func (s *Store) Reset(userID int64) {
	s.cache.Delete(fmt.Sprintf(userStateKey, userID))
	s.cache.Delete(fmt.Sprintf(userDataKey, userID))
}

// SeedSignal records the entry and stop-loss of a freshly dispatched signal
// on the recipient's session, so the position-sizing flow reads them back as
// structured fields instead of re-parsing the rendered message.
func (s *Store) SeedSignal(userID int64, entry, stopLoss float64) {
	data := s.GetData(userID)
	data.Entry = entry
	data.StopLoss = stopLoss
	s.SetData(userID, data)
}
