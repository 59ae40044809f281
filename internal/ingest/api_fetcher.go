package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"career-compass/internal/domain/catalog"
)

// APIFetcher pulls course listings from a provider's JSON API. Unlike the
// site scraper it gets structured data, so only light normalization is
// needed before upsert.
type APIFetcher struct {
	client  *http.Client
	name    string
	apiBase string
}

func NewAPIFetcher(name, apiBase string) *APIFetcher {
	return &APIFetcher{
		client:  &http.Client{Timeout: 10 * time.Second},
		name:    name,
		apiBase: apiBase,
	}
}

func (f *APIFetcher) Source() string {
	return f.name
}

type apiCourse struct {
	Skill         string  `json:"skill"`
	Name          string  `json:"name"`
	Level         string  `json:"level"`
	DurationHours float64 `json:"duration_hours"`
	Rating        float64 `json:"rating"`
	Price         float64 `json:"price"`
	Certificate   bool    `json:"certificate"`
	URL           string  `json:"url"`
}

func (f *APIFetcher) Fetch(ctx context.Context) ([]catalog.Course, error) {
	if f == nil {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(f.apiBase, "/")+"/api/courses?per_page=100&page=1", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "CareerCompassIngest/0.1")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	var items []apiCourse
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}

	out := make([]catalog.Course, 0, len(items))
	for _, it := range items {
		skill := strings.TrimSpace(it.Skill)
		name := strings.TrimSpace(it.Name)
		if skill == "" || name == "" {
			continue
		}
		out = append(out, catalog.Course{
			Skill:         skill,
			Name:          name,
			Platform:      f.name,
			Level:         parseLevel(it.Level),
			DurationHours: int(it.DurationHours),
			Rating:        it.Rating,
			Price:         it.Price,
			Certificate:   it.Certificate,
			URL:           strings.TrimSpace(it.URL),
		})
	}
	return out, nil
}
