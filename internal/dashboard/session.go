// Package dashboard is the admin dashboard client: session handling, API
// calls against the ordering backend and a text renderer for the stats view.
package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	keyAdmin = "sunrise_admin"
	keyToken = "sunrise_admin_token"
)

type Admin struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Session is the logged-in admin and the token sent with every API call.
type Session struct {
	Admin *Admin
	Token string
}

func (s Session) Authenticated() bool {
	return s.Admin != nil && s.Token != ""
}

type SessionStore interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// FileStore keeps the session as a small JSON document on disk. A missing
// file loads as an empty session.
type FileStore struct {
	Path string
}

func (f FileStore) Load() (Session, error) {
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}

	var s Session
	if a, ok := doc[keyAdmin]; ok && string(a) != "null" {
		s.Admin = &Admin{}
		if err := json.Unmarshal(a, s.Admin); err != nil {
			return Session{}, fmt.Errorf("decode session admin: %w", err)
		}
	}
	if t, ok := doc[keyToken]; ok {
		if err := json.Unmarshal(t, &s.Token); err != nil {
			return Session{}, fmt.Errorf("decode session token: %w", err)
		}
	}
	return s, nil
}

func (f FileStore) Save(s Session) error {
	doc := map[string]any{keyAdmin: s.Admin, keyToken: s.Token}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

func (f FileStore) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

type MemoryStore struct {
	mu sync.Mutex
	s  Session
}

func (m *MemoryStore) Load() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *MemoryStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = Session{}
	return nil
}
