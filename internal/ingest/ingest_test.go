package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"career-compass/internal/domain/catalog"
)

func TestAPIFetcherMapsCourses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/courses" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"skill":"Python","name":"Python for Everybody","level":"beginner","duration_hours":40,"rating":4.8,"price":49,"certificate":true,"url":"https://example.com/py"},
			{"skill":"SQL","name":"SQL Bootcamp","level":"weird","duration_hours":12.5,"rating":4.5},
			{"skill":"","name":"No Skill"},
			{"skill":"Go","name":""}
		]`))
	}))
	defer srv.Close()

	f := NewAPIFetcher("TestPlatform", srv.URL)
	courses, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("got %d courses, want 2 valid entries", len(courses))
	}

	first := courses[0]
	if first.Skill != "Python" || first.Platform != "TestPlatform" {
		t.Errorf("first course = %+v", first)
	}
	if first.Level != catalog.DifficultyBeginner || first.DurationHours != 40 || !first.Certificate {
		t.Errorf("first course fields = %+v", first)
	}

	second := courses[1]
	if second.Level != catalog.DifficultyBeginner {
		t.Errorf("unknown level mapped to %s, want Beginner default", second.Level)
	}
	if second.DurationHours != 12 {
		t.Errorf("DurationHours = %d, want truncated 12", second.DurationHours)
	}
}

func TestAPIFetcherNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewAPIFetcher("TestPlatform", srv.URL)
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error on 502 response")
	}
}

func TestParseHelpers(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"12 hours total", 12},
		{"Approx. 8h", 8},
		{"", 0},
		{"no numbers here", 0},
		{"3.5 hours", 3},
	}
	for _, tc := range cases {
		if got := parseHours(tc.raw); got != tc.want {
			t.Errorf("parseHours(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}

	if got := parseFloat("4,7 stars"); got != 4.7 {
		t.Errorf("parseFloat comma decimal = %v, want 4.7", got)
	}
	if got := parseLevel("INTERMEDIATE"); got != catalog.DifficultyIntermediate {
		t.Errorf("parseLevel = %s", got)
	}
}

func TestHostFromURL(t *testing.T) {
	cases := map[string]string{
		"https://www.example.com/courses":  "www.example.com",
		"https://example.com:8443/courses": "example.com",
		"not a url %":                      "",
		"":                                 "",
	}
	for raw, want := range cases {
		if got := hostFromURL(raw); got != want {
			t.Errorf("hostFromURL(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestListingTargets(t *testing.T) {
	targets := ListingTargets("https://courses.example.com/", []string{"Machine Learning", "SQL", " "})
	if len(targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(targets))
	}
	if targets[0].ListURL != "https://courses.example.com/courses/machine-learning" {
		t.Errorf("ListURL = %s", targets[0].ListURL)
	}
	if targets[0].Skill != "Machine Learning" {
		t.Errorf("Skill = %s", targets[0].Skill)
	}

	if got := ListingTargets("   ", []string{"SQL"}); got != nil {
		t.Errorf("blank base produced %d targets", len(got))
	}
}

func TestWorkerPoolRunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4, 8)
	results := pool.Run(context.Background())

	var ran atomic.Int32
	for i := 0; i < 20; i++ {
		i := i
		pool.Submit(func(ctx context.Context) error {
			ran.Add(1)
			if i%5 == 0 {
				return errors.New("boom")
			}
			return nil
		})
	}
	pool.Close()

	errs := 0
	total := 0
	for res := range results {
		total++
		if res.Err != nil {
			errs++
		}
	}
	if total != 20 || ran.Load() != 20 {
		t.Fatalf("ran %d/%d tasks, want 20", ran.Load(), total)
	}
	if errs != 4 {
		t.Errorf("errs = %d, want 4", errs)
	}
}

func TestWorkerPoolContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewWorkerPool(1, 0)
	results := pool.Run(ctx)

	pool.Submit(func(ctx context.Context) error { return nil })
	cancel()
	pool.Close()

	done := make(chan struct{})
	go func() {
		for range results {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pool did not drain after cancel")
	}
}
