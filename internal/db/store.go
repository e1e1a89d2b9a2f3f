package db

import (
	"context"
	"errors"
)

// Keys under which the tracking state is persisted
const (
	KeyTimeData       = "timevate_time_data"
	KeyMicroWins      = "timevate_micro_wins"
	KeyCurrentSession = "timevate_current_session"
)

// ErrClosed is returned by stores that have already been closed
var ErrClosed = errors.New("store is closed")

// Store is device-local key-value storage. A missing key is reported with
// ok == false, never as an error. Writes to different keys are independent.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}
