package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Periodic task types handled by the background worker.
const (
	TypeRaffleDraw     = "raffle:draw"
	TypeExpireRequests = "requests:expire"
)

// RaffleDrawPayload carries the reference time for a monthly sweep; the
// worker draws for the month preceding it.
type RaffleDrawPayload struct {
	Now time.Time `json:"now"`
}

// NewRaffleDrawTask builds the monthly raffle sweep task.
func NewRaffleDrawTask(now time.Time) (*asynq.Task, error) {
	b, err := json.Marshal(RaffleDrawPayload{Now: now})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRaffleDraw, b), nil
}

// NewExpireRequestsTask builds the open-request expiry sweep task.
func NewExpireRequestsTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeExpireRequests, nil), nil
}
