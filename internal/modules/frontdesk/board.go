package frontdesk

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"frontdesk/internal/domain"
)

// Snapshot is the board as last classified.
type Snapshot struct {
	Today       domain.Date `json:"today"`
	Buckets     Buckets     `json:"buckets"`
	RefreshedAt time.Time   `json:"refreshed_at"`
	LastError   string      `json:"last_error,omitempty"`
}

// Board keeps the last good booking collection and its classification.
// A failed refresh keeps the previous collection and records the error.
type Board struct {
	fetch BookingLister
	today func() domain.Date
	log   *zap.Logger

	mu          sync.RWMutex
	bookings    []domain.Booking
	buckets     Buckets
	classified  domain.Date
	refreshedAt time.Time
	lastErr     error
	listeners   []func(Snapshot)
}

func NewBoard(fetch BookingLister, today func() domain.Date, log *zap.Logger) *Board {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Board{fetch: fetch, today: today, log: log}
	b.classified = today()
	b.buckets = Classify(nil, b.classified)
	return b
}

// OnChange registers fn to receive every new snapshot. fn runs without the
// board lock held.
func (b *Board) OnChange(fn func(Snapshot)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Refresh pulls the full collection and reclassifies it.
func (b *Board) Refresh(ctx context.Context) error {
	bookings, err := b.fetch.ListBookings(ctx)
	if err != nil {
		b.mu.Lock()
		b.lastErr = err
		b.mu.Unlock()
		b.log.Warn("board refresh failed, keeping last snapshot", zap.Error(err))
		return err
	}

	today := b.today()
	buckets := Classify(bookings, today)

	b.mu.Lock()
	b.bookings = bookings
	b.buckets = buckets
	b.classified = today
	b.refreshedAt = time.Now()
	b.lastErr = nil
	snap := b.snapshotLocked(today)
	listeners := b.listeners
	b.mu.Unlock()

	b.notify(listeners, snap)
	return nil
}

// Merge replaces (or adds) a record confirmed by the store and reclassifies.
func (b *Board) Merge(rec domain.Booking) {
	today := b.today()

	b.mu.Lock()
	merged := make([]domain.Booking, 0, len(b.bookings)+1)
	found := false
	for _, existing := range b.bookings {
		if existing.ID == rec.ID {
			merged = append(merged, rec)
			found = true
			continue
		}
		merged = append(merged, existing)
	}
	if !found {
		merged = append(merged, rec)
	}
	b.bookings = merged
	b.buckets = Classify(merged, today)
	b.classified = today
	snap := b.snapshotLocked(today)
	listeners := b.listeners
	b.mu.Unlock()

	b.notify(listeners, snap)
}

func (b *Board) Snapshot() Snapshot {
	today := b.today()
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := b.snapshotLocked(today)
	if !today.Equal(b.classified) {
		// the date rolled over since the last classification
		s.Buckets = Classify(b.bookings, today)
	}
	return s
}

// Bookings returns a copy of the last good collection.
func (b *Board) Bookings() []domain.Booking {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.Booking(nil), b.bookings...)
}

// Run refreshes on every tick until ctx is done.
func (b *Board) Run(ctx context.Context, interval time.Duration) {
	if err := b.Refresh(ctx); err != nil && ctx.Err() != nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("board poller stopped")
			return
		case <-ticker.C:
			_ = b.Refresh(ctx)
		}
	}
}

func (b *Board) snapshotLocked(today domain.Date) Snapshot {
	s := Snapshot{Today: today, Buckets: b.buckets, RefreshedAt: b.refreshedAt}
	if b.lastErr != nil {
		s.LastError = b.lastErr.Error()
	}
	return s
}

func (b *Board) notify(listeners []func(Snapshot), snap Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
