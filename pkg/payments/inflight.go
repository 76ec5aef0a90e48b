// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import "sync"

// inflightRegistry serializes operations per attempt id. No two calls may
// drive the same attempt concurrently; attempts with different ids are
// independent even when they belong to the same unit.
type inflightRegistry struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newInflightRegistry() *inflightRegistry {
	return &inflightRegistry{ids: make(map[string]struct{})}
}

func (r *inflightRegistry) acquire(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.ids[id]; busy {
		return false
	}
	r.ids[id] = struct{}{}
	return true
}

func (r *inflightRegistry) release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ids, id)
}
