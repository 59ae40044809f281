package ingest

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"career-compass/internal/domain/catalog"
)

// CourseSiteTarget describes one scrapeable course listing page: which
// skill its courses teach and the CSS selectors to pull fields out with.
type CourseSiteTarget struct {
	Skill            string
	ListURL          string
	CardSelector     string
	NameSelector     string
	LevelSelector    string
	DurationSelector string
	RatingSelector   string
	PriceSelector    string
	LinkSelector     string
}

// SiteScraper pulls course listings off provider pages with colly. One
// scraper covers one platform; targets map its listing pages to skills.
type SiteScraper struct {
	platform string
	targets  []CourseSiteTarget
	workers  int
	logger   *log.Logger
}

func NewSiteScraper(platform string, targets []CourseSiteTarget, workers int, logger *log.Logger) *SiteScraper {
	if workers <= 0 {
		workers = 4
	}
	return &SiteScraper{platform: platform, targets: targets, workers: workers, logger: logger}
}

func (s *SiteScraper) Source() string {
	return s.platform
}

// Fetch scrapes every target's listing page. Targets run through a rate
// limited worker pool; a single failing page is logged and skipped.
func (s *SiteScraper) Fetch(ctx context.Context) ([]catalog.Course, error) {
	if s == nil || len(s.targets) == 0 {
		return nil, nil
	}

	pool := NewWorkerPool(s.workers, s.workers*2)
	pool.SetRateLimit(3)
	results := pool.Run(ctx)

	var mu sync.Mutex
	var courses []catalog.Course

	for _, t := range s.targets {
		t := t
		if strings.TrimSpace(t.Skill) == "" || strings.TrimSpace(t.ListURL) == "" {
			continue
		}
		pool.Submit(func(ctx context.Context) error {
			found, err := s.scrapeListing(ctx, t)
			if err != nil {
				return fmt.Errorf("listing %s: %w", t.ListURL, err)
			}
			mu.Lock()
			courses = append(courses, found...)
			mu.Unlock()
			return nil
		})
	}

	pool.Close()
	for res := range results {
		if res.Err != nil && s.logger != nil {
			s.logger.Printf("[Ingest] %s: %v", s.platform, res.Err)
		}
	}

	if ctx.Err() != nil {
		return courses, ctx.Err()
	}
	return courses, nil
}

func (s *SiteScraper) scrapeListing(ctx context.Context, target CourseSiteTarget) ([]catalog.Course, error) {
	allowed := hostFromURL(target.ListURL)
	var c *colly.Collector
	if allowed == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(allowed))
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	card := target.CardSelector
	if strings.TrimSpace(card) == "" {
		card = "article"
	}

	var courses []catalog.Course
	dedup := map[string]struct{}{}

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML(card, func(e *colly.HTMLElement) {
		name := strings.TrimSpace(e.DOM.Find(target.NameSelector).Text())
		if name == "" {
			return
		}
		if _, ok := dedup[name]; ok {
			return
		}
		dedup[name] = struct{}{}

		course := catalog.Course{
			Skill:         target.Skill,
			Name:          name,
			Platform:      s.platform,
			Level:         parseLevel(e.DOM.Find(target.LevelSelector).Text()),
			DurationHours: parseHours(e.DOM.Find(target.DurationSelector).Text()),
			Rating:        parseFloat(e.DOM.Find(target.RatingSelector).Text()),
			Price:         parseFloat(e.DOM.Find(target.PriceSelector).Text()),
		}
		if target.LinkSelector != "" {
			if href, ok := e.DOM.Find(target.LinkSelector).Attr("href"); ok {
				course.URL = e.Request.AbsoluteURL(strings.TrimSpace(href))
			}
		}
		courses = append(courses, course)
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(target.ListURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return courses, nil
}

// ListingTargets builds one target per skill against a catalog site that
// serves listings at {base}/courses/{skill-slug}. The selectors match the
// markup the default course sites share.
func ListingTargets(base string, skills []string) []CourseSiteTarget {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return nil
	}
	targets := make([]CourseSiteTarget, 0, len(skills))
	for _, skill := range skills {
		slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(skill)), " ", "-")
		if slug == "" {
			continue
		}
		targets = append(targets, CourseSiteTarget{
			Skill:            skill,
			ListURL:          base + "/courses/" + url.PathEscape(slug),
			CardSelector:     "article.course-card",
			NameSelector:     ".course-title",
			LevelSelector:    ".course-level",
			DurationSelector: ".course-duration",
			RatingSelector:   ".course-rating",
			PriceSelector:    ".course-price",
			LinkSelector:     "a.course-link",
		})
	}
	return targets
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func hostFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

var numberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// parseLevel defaults unparseable levels to Beginner rather than dropping
// the course.
func parseLevel(raw string) catalog.Difficulty {
	if d, ok := catalog.ParseDifficulty(raw); ok {
		return d
	}
	return catalog.DifficultyBeginner
}

// parseHours pulls the numeric part out of strings like "12 hours total"
// or "Approx. 8h".
func parseHours(raw string) int {
	m := numberRe.FindString(raw)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func parseFloat(raw string) float64 {
	m := numberRe.FindString(strings.ReplaceAll(raw, ",", "."))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}
