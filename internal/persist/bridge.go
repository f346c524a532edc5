package persist

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/jarvishq/jarvis/internal/models"
	"github.com/jarvishq/jarvis/internal/state"
)

const writeTimeout = 5 * time.Second

// Bridge connects the state store to durable storage. Hydrate reads the
// document once, migrates and sanitizes it, and replaces the store's
// state; afterwards every committed transition is serialized wholesale
// and written back, last-write-wins. Write failures are logged as
// warnings and never surfaced to the mutator: the in-memory state stays
// correct even when the durable copy lags.
type Bridge struct {
	store    *state.Store
	storage  Storage
	log      *zap.Logger
	hydrated atomic.Bool
	cancel   func()
}

// NewBridge wires a bridge between store and storage. Call Hydrate
// before dispatching anything.
func NewBridge(store *state.Store, storage Storage, log *zap.Logger) *Bridge {
	return &Bridge{store: store, storage: storage, log: log}
}

// Hydrate performs the one-time load: read the document, repair it, and
// replace the store's state. Hydrated() reports true afterwards whether
// or not the read succeeded, exactly once. Hydrate also starts the
// write-behind subscription, so only post-hydration changes persist.
func (b *Bridge) Hydrate(ctx context.Context) {
	if b.hydrated.Load() {
		return
	}

	data, err := b.storage.Read(ctx)
	switch {
	case err == nil:
		b.store.Hydrate(state.Load(data))
	case errors.Is(err, ErrNotFound):
		// first run, nothing to load
	default:
		b.log.Warn("state_read_failed", zap.Error(err))
	}

	b.hydrated.Store(true)
	b.cancel = b.store.Subscribe(b.save)
}

// Hydrated reports whether the one-time load has completed.
func (b *Bridge) Hydrated() bool {
	return b.hydrated.Load()
}

// Close stops the write-behind subscription.
func (b *Bridge) Close() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

func (b *Bridge) save(snapshot models.State) {
	if !b.hydrated.Load() {
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		b.log.Warn("state_encode_failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := b.storage.Write(ctx, data); err != nil {
		b.log.Warn("state_write_failed", zap.Error(err))
	}
}
