package ports

import (
	"context"

	"lifelens/domain/signal"
)

// SignalBundle is one load of every input domain. A domain with no source
// data is an empty slice, never nil semantics beyond that.
type SignalBundle struct {
	Transactions []signal.Transaction
	WatchDays    []signal.WearableDay
	VideoDays    []signal.VideoDay
}

// SignalSource loads the raw input signals the analysis pipeline consumes.
// Implementations decide where the data lives (files, spreadsheets); absent
// domains load as empty, not as errors.
type SignalSource interface {
	Load(ctx context.Context) (*SignalBundle, error)
}
