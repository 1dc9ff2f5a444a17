// Package repository provides the file-backed JSON stores: the two
// reservation stores (general and agent), the per-passenger card store and
// the flight directory. Every mutation is a full read of the backing file,
// an in-memory transform and a full rewrite; nothing is patched in place.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no stored record.
var ErrNotFound = errors.New("record not found")

// ErrStoreUnavailable wraps an unreadable or unwritable backing file.
// Malformed JSON falls under it too: a load must never proceed with
// partial data.
var ErrStoreUnavailable = errors.New("store unavailable")
