package store

import (
	"context"
	"log"
	"time"
)

// DefaultTimeout bounds a single load or save
const DefaultTimeout = 2 * time.Second

// Persister is the best-effort load/save capability handed to the app
// Failures are logged as warnings and never returned
type Persister struct {
	backend Backend
	logger  *log.Logger
	timeout time.Duration
}

// NewPersister wraps backend; a nil logger uses the standard logger
func NewPersister(backend Backend, logger *log.Logger) *Persister {
	if logger == nil {
		logger = log.Default()
	}
	return &Persister{backend: backend, logger: logger, timeout: DefaultTimeout}
}

// Load returns the saved names and last winner, or empty values when loading fails
func (p *Persister) Load() ([]string, string) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	snap, err := p.backend.Load(ctx)
	if err != nil {
		p.logger.Printf("WARN: failed to load names: %v", err)
		return nil, ""
	}
	return snap.Names, snap.Winner
}

// Save stores names and the last winner, logging instead of failing
func (p *Persister) Save(names []string, winner string) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.backend.Save(ctx, Snapshot{Names: names, Winner: winner}); err != nil {
		p.logger.Printf("WARN: failed to save names: %v", err)
	}
}

// Close releases the backend, logging any error
func (p *Persister) Close() {
	if err := p.backend.Close(); err != nil {
		p.logger.Printf("WARN: failed to close store: %v", err)
	}
}
