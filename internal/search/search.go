package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esutil"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
)

type Config struct {
	URL      string
	User     string
	Password string
}

// NewClient connects and verifies the cluster answers Info.
func NewClient(cfg Config) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.User,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: new client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch: info: %s: %s", res.Status(), body)
	}
	return client, nil
}

type MenuIndex struct {
	ES    *elasticsearch.Client
	Index string
}

type menuDoc struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	CategoryID      uint   `json:"category_id"`
	PreparationTime int    `json:"preparation_time"`
	IsAvailable     bool   `json:"is_available"`
	CategoryActive  bool   `json:"category_active"`
}

type searchHit struct {
	Source models.MenuItem `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

// IndexMenuItems upserts items through the bulk API, keyed by item id.
func (m *MenuIndex) IndexMenuItems(ctx context.Context, items []models.SearchableMenuItem) error {
	if len(items) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:     m.ES,
		Index:      m.Index,
		NumWorkers: 1,
	})
	if err != nil {
		return fmt.Errorf("elasticsearch: bulk indexer: %w", err)
	}

	var (
		mu       sync.Mutex
		failures []error
	)
	onFailure := func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
		if err == nil {
			err = fmt.Errorf("%s: %s", res.Error.Type, res.Error.Reason)
		}
		mu.Lock()
		failures = append(failures, fmt.Errorf("doc %s: %w", item.DocumentID, err))
		mu.Unlock()
	}

	for _, it := range items {
		raw, err := json.Marshal(menuDoc{
			ID:              it.ID,
			Name:            it.Name,
			Description:     it.Description,
			Price:           it.Price.StringFixed(2),
			CategoryID:      it.CategoryID,
			PreparationTime: it.PreparationTime,
			IsAvailable:     it.IsAvailable,
			CategoryActive:  it.CategoryActive,
		})
		if err != nil {
			_ = bi.Close(ctx)
			return fmt.Errorf("elasticsearch: encode doc: %w", err)
		}
		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: strconv.FormatUint(uint64(it.ID), 10),
			Body:       bytes.NewReader(raw),
			OnFailure:  onFailure,
		})
		if err != nil {
			_ = bi.Close(ctx)
			return fmt.Errorf("elasticsearch: bulk add: %w", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("elasticsearch: bulk close: %w", err)
	}
	if n := bi.Stats().NumFailed; n > 0 {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Errorf("elasticsearch: bulk index: %d of %d failed: %w", n, len(items), errors.Join(failures...))
	}
	return nil
}

// Search runs a fuzzy name/description match over items that are available
// and sit in an active category, and returns the total hit count with one
// page of items.
func (m *MenuIndex) Search(ctx context.Context, query string, from, size int) (int64, []models.MenuItem, error) {
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"name^2", "description"},
						"fuzziness": "AUTO",
					},
				},
				"filter": []any{
					map[string]any{"term": map[string]any{"is_available": true}},
					map[string]any{"term": map[string]any{"category_active": true}},
				},
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: encode query: %w", err)
	}

	res, err := m.ES.Search(
		m.ES.Search.WithContext(ctx),
		m.ES.Search.WithIndex(m.Index),
		m.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("elasticsearch: search: %s", res.Status())
	}

	var r searchResponse
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: decode: %w", err)
	}

	items := make([]models.MenuItem, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source
	}
	return r.Hits.Total.Value, items, nil
}
