package job

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// SnapshotRefresher runs one pipeline cycle and stores the result.
type SnapshotRefresher interface {
	Refresh(ctx context.Context) error
}

// SnapshotPoller drives the refresh cadence: once eagerly at startup,
// then on a fixed interval. A failed cycle is final for that run; the
// next tick simply tries again.
type SnapshotPoller struct {
	tracer       trace.Tracer
	refresher    SnapshotRefresher
	pollInterval time.Duration
}

func NewSnapshotPoller(tracer trace.Tracer, refresher SnapshotRefresher, pollIntervalSecs int) *SnapshotPoller {
	return &SnapshotPoller{
		tracer:       tracer,
		refresher:    refresher,
		pollInterval: time.Duration(pollIntervalSecs) * time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (p *SnapshotPoller) Start(ctx context.Context) {
	log.Println("Snapshot poller starting...")

	if err := p.refresher.Refresh(ctx); err != nil {
		log.Printf("initial snapshot refresh error: %v", err)
	}

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Snapshot poller stopped")
			return
		case <-ticker.C:
			if err := p.refresher.Refresh(ctx); err != nil {
				log.Printf("snapshot refresh error: %v", err)
			}
		}
	}
}
