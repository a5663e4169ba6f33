package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/internal/events"
	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/internal/testutil"
)

type published struct {
	Topic string
	Key   string
	Event events.Event
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, topic, key string, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{Topic: topic, Key: key, Event: ev})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.sent))
	for i, s := range p.sent {
		out[i] = s.Event.Type
	}
	return out
}

type fakeIndex struct {
	docs     map[uint]models.SearchableMenuItem
	indexed  []uint
	indexErr error

	total     int64
	hits      []models.MenuItem
	lastQuery string
	lastFrom  int
	lastSize  int
}

func (f *fakeIndex) IndexMenuItems(_ context.Context, items []models.SearchableMenuItem) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	if f.docs == nil {
		f.docs = map[uint]models.SearchableMenuItem{}
	}
	for _, it := range items {
		f.docs[it.ID] = it
		f.indexed = append(f.indexed, it.ID)
	}
	return nil
}

func (f *fakeIndex) Search(_ context.Context, q string, from, size int) (int64, []models.MenuItem, error) {
	f.lastQuery, f.lastFrom, f.lastSize = q, from, size
	return f.total, f.hits, nil
}

var errBroker = errors.New("broker down")

func newTestRepo(t *testing.T) (*repo.GormRepo, *gorm.DB) {
	t.Helper()
	gdb := testutil.NewDB(t)
	return &repo.GormRepo{DB: gdb}, gdb
}

func fixedClock(now time.Time) Clock {
	return Clock{Now: func() time.Time { return now }, Loc: now.Location()}
}
