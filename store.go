package pod

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Versioned storage slots. The current slot holds the Document shape of this
// package; the two legacy slots hold older shapes upgraded by migration on
// load, newest first.
const (
	currentKey = "purchase-order.v3"
	legacyKeyB = "purchase-order.v2" // items carry "qty", sales are numbers
	legacyKeyA = "purchase-order.v1" // items carry "ltsaQty", sales are numbers
)

// savedIndicatorDelay is how long the transient "saved" indicator stays on.
const savedIndicatorDelay = 2 * time.Second

// Storage is the persistent key-value string capability the Store needs from
// its host. Get reports absence with ok=false; Delete of a missing key is not
// an error.
type Storage interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
	Delete(key string) error
}

// Clock supplies the current wall-clock time. Injected so deadline checks and
// tests run against a deterministic date.
type Clock func() time.Time

// DirStorage is a Storage keeping one file per key under a root directory.
type DirStorage struct {
	root string
}

// NewDirStorage returns a Storage rooted at dir. The directory is created
// lazily on the first Set.
func NewDirStorage(dir string) DirStorage { return DirStorage{root: dir} }

func (s DirStorage) path(key string) string {
	return filepath.Join(s.root, key+".json")
}

func (s DirStorage) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the value atomically: a temp file in the same directory is
// renamed over the destination, so readers never observe a torn write.
func (s DirStorage) Set(key, value string) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", s.root, err)
	}
	tmp, err := os.CreateTemp(s.root, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", key, err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return nil
}

func (s DirStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not delete %q: %w", key, err)
	}
	return nil
}

// MemStorage is an in-memory Storage for tests.
type MemStorage map[string]string

func (s MemStorage) Get(key string) (string, bool) { v, ok := s[key]; return v, ok }
func (s MemStorage) Set(key, value string) error   { s[key] = value; return nil }
func (s MemStorage) Delete(key string) error       { delete(s, key); return nil }

// Store maps between the in-memory Document and the single versioned storage
// slot. It never fails loudly: load and save degrade to safe defaults and a
// log line, leaving error reporting to the explicit import/export paths.
type Store struct {
	storage Storage
	now     Clock

	mu       sync.Mutex
	saved    bool
	timer    *time.Timer
	savedFor time.Duration
}

// NewStore builds a Store over the given storage. A nil clock means
// time.Now.
func NewStore(storage Storage, now Clock) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{storage: storage, now: now, savedFor: savedIndicatorDelay}
}

// Now returns the store's current clock reading.
func (s *Store) Now() time.Time { return s.now() }

// Load returns the persisted Document. It tries the current slot first, then
// the legacy slots newest first, migrating and writing the upgraded form back
// under the current key. Every parse or storage failure degrades to "nothing
// found"; when nothing is found the default Document is returned. Load never
// returns an error.
func (s *Store) Load() Document {
	if text, ok := s.storage.Get(currentKey); ok {
		var d Document
		if err := json.Unmarshal([]byte(text), &d); err == nil {
			if len(d.Items) == 0 {
				d.Items = []LineItem{{}}
			}
			d.syncSales()
			return d
		}
		log.Printf("ignoring unreadable document under %q", currentKey)
	}

	for _, key := range []string{legacyKeyB, legacyKeyA} {
		text, ok := s.storage.Get(key)
		if !ok {
			continue
		}
		d, err := migrateDocument([]byte(text))
		if err != nil {
			log.Printf("ignoring unreadable legacy document under %q: %v", key, err)
			continue
		}
		log.Printf("migrated document from %q", key)
		s.Save(d)
		return d
	}

	return DefaultDocument()
}

// Save serializes the Document and writes it atomically to the current slot.
// A failed write is logged and otherwise ignored; successful writes flip the
// transient saved indicator.
func (s *Store) Save(d Document) {
	data, err := json.Marshal(d)
	if err != nil {
		log.Printf("could not serialize document: %v", err)
		return
	}
	if err := s.storage.Set(currentKey, string(data)); err != nil {
		log.Printf("could not save document: %v", err)
		return
	}
	s.markSaved()
}

// Clear removes the current slot. Resetting the in-memory state to the
// default Document is the caller's responsibility.
func (s *Store) Clear() error {
	return s.storage.Delete(currentKey)
}

// Saved reports whether a save happened recently. The flag clears itself
// after a fixed short delay; it is a UI affordance, not a data contract.
func (s *Store) Saved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved
}

func (s *Store) markSaved() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.savedFor, func() {
		s.mu.Lock()
		s.saved = false
		s.mu.Unlock()
	})
}
