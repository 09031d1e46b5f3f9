// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cache stores per-file check results on disk, keyed by content and options.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion is incremented when the [Entry] format changes.
const schemaVersion uint16 = 1

// ErrSchema is returned for entries written by an incompatible version.
var ErrSchema = errors.New("cache schema mismatch")

// Key identifies a cache entry.
type Key [sha256.Size]byte

// NewKey derives a key from the options fingerprint, the file name and the file content.
func NewKey(options, filename string, src []byte) Key {
	h := sha256.New()

	for _, part := range [][]byte{[]byte(options), []byte(filename), src} {
		h.Write(binary.LittleEndian.AppendUint64(nil, uint64(len(part))))
		h.Write(part)
	}

	var k Key
	h.Sum(k[:0])

	return k
}

// String returns the hexadecimal representation of k.
func (k Key) String() string { return hex.EncodeToString(k[:]) }

// Cache is a directory of msgpack encoded entries. It is safe for concurrent use.
// A nil *Cache is a cache that never hits.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open opens the cache for app in the user cache directory, honoring XDG_CACHE_HOME.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("can't locate cache directory: %w", err)
		}

		base = filepath.Join(home, ".cache")
	}

	return OpenDir(filepath.Join(base, app))
}

// OpenDir opens the cache in dir, creating it when necessary.
func OpenDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create cache directory: %w", err)
	}

	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}

	return c.dir
}

func (c *Cache) pathFor(key Key) string {
	hexKey := key.String()

	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Get reads the entry for key. A missing entry is not an error.
func (c *Cache) Get(key Key) (*Entry, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	defer func() { _ = f.Close() }()

	var e Entry
	if err := msgpack.NewDecoder(f).Decode(&e); err != nil {
		return nil, false, fmt.Errorf("can't decode cache entry %s: %w", key, err)
	}

	if e.Schema != schemaVersion {
		return nil, false, fmt.Errorf("%w: entry %s has version %d, expected %d", ErrSchema, key, e.Schema, schemaVersion)
	}

	return &e, true, nil
}

// Put writes the entry for key, replacing the previous entry atomically.
func (c *Cache) Put(key Key, e *Entry) error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}

	defer func() { _ = os.Remove(f.Name()) }() // no-op after the rename

	e.Schema = schemaVersion

	if err := msgpack.NewEncoder(f).Encode(e); err != nil {
		_ = f.Close()

		return fmt.Errorf("can't encode cache entry %s: %w", key, err)
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), p)
}

// Clear removes all entries.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}

	return nil
}
