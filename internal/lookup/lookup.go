// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup answers identifier queries from the local topic caches
// without touching the network.
package lookup

import (
	"errors"
	"fmt"

	"github.com/pdiddy/research-assistant/internal/cache"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// Lookup reads paper records from a cache store.
type Lookup struct {
	store *cache.Store
}

// New returns a Lookup over store.
func New(store *cache.Store) *Lookup {
	return &Lookup{store: store}
}

// ExtractInfo returns the cached record for id. A miss is reported as an
// error that still matches cache.ErrNotFound.
func (l *Lookup) ExtractInfo(id string) (types.PaperRecord, error) {
	p, err := l.store.FindByIdentifier(id)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return types.PaperRecord{}, fmt.Errorf("no local information found for paper %s: %w", id, err)
		}
		return types.PaperRecord{}, err
	}
	return p, nil
}
