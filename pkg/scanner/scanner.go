// Package scanner orchestrates periodic scans: it pulls prediction
// market contracts and sportsbook lines for each configured sport,
// runs the matching engine, and fans results out to the cache, the
// metrics registry, and the streaming hub.
package scanner

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/edgewire/edgewire/pkg/matchengine"
	"github.com/edgewire/edgewire/pkg/metrics"
	"github.com/edgewire/edgewire/pkg/oddsfeed"
	"github.com/edgewire/edgewire/pkg/polymarket/gamma"
	"github.com/edgewire/edgewire/pkg/streaming"
)

// ContractSource lists open prediction-market events for a sport tag.
type ContractSource interface {
	ListAllOpenEvents(ctx context.Context, tag string) ([]gamma.Event, error)
}

// OddsSource fetches sportsbook lines for a sport key.
type OddsSource interface {
	Odds(ctx context.Context, sportKey, markets string) (*oddsfeed.OddsResponse, error)
}

// Config assembles a Scanner.
type Config struct {
	Contracts ContractSource
	Odds      OddsSource
	Engine    *matchengine.Engine
	Sports    []SportConfig

	// Hub receives result broadcasts; nil disables streaming.
	Hub *streaming.Hub
	// Metrics receives scan observations; nil disables them.
	Metrics *metrics.ScannerMetrics

	// CacheTTL bounds how stale served results may be before a scan is
	// considered missing. Defaults to 5 minutes.
	CacheTTL time.Duration
}

// Scanner runs scans and caches the latest result per league.
type Scanner struct {
	contracts ContractSource
	odds      OddsSource
	engine    *matchengine.Engine
	sports    []SportConfig
	hub       *streaming.Hub
	metrics   *metrics.ScannerMetrics
	cacheTTL  time.Duration

	mu    sync.RWMutex
	cache map[string]scanResult
	quota oddsfeed.Quota
}

type scanResult struct {
	opportunities []matchengine.Opportunity
	scannedAt     time.Time
}

// ScanSummary is the per-league outcome of one scan pass, as streamed
// to clients.
type ScanSummary struct {
	League        string    `json:"league"`
	Contracts     int       `json:"contracts"`
	BookEvents    int       `json:"bookEvents"`
	Opportunities int       `json:"opportunities"`
	Duration      string    `json:"duration"`
	ScannedAt     time.Time `json:"scannedAt"`
}

// New creates a scanner.
func New(cfg Config) *Scanner {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	engine := cfg.Engine
	if engine == nil {
		engine = matchengine.NewEngine(nil)
	}
	return &Scanner{
		contracts: cfg.Contracts,
		odds:      cfg.Odds,
		engine:    engine,
		sports:    cfg.Sports,
		hub:       cfg.Hub,
		metrics:   cfg.Metrics,
		cacheTTL:  ttl,
		cache:     make(map[string]scanResult),
	}
}

// Run scans on a fixed interval until the context is canceled. The
// first scan fires immediately.
func (s *Scanner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.ScanAll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ScanAll(ctx)
		}
	}
}

// ScanAll scans every configured sport concurrently.
func (s *Scanner) ScanAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, sc := range s.sports {
		wg.Add(1)
		go func(sc SportConfig) {
			defer wg.Done()
			s.ScanSport(ctx, sc)
		}(sc)
	}
	wg.Wait()
}

// ScanSport scans one sport and returns the fresh opportunities. A
// failed upstream fetch degrades to an empty list for that side rather
// than aborting the scan.
func (s *Scanner) ScanSport(ctx context.Context, sc SportConfig) []matchengine.Opportunity {
	start := time.Now()

	var (
		wg     sync.WaitGroup
		events []gamma.Event
		quotes []oddsfeed.Event
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		events, err = s.contracts.ListAllOpenEvents(ctx, sc.GammaTag)
		if err != nil {
			log.Printf("[SCAN] %s: contracts fetch failed: %v", sc.League, err)
			s.recordError(sc.League, "polymarket")
		}
	}()
	go func() {
		defer wg.Done()
		quotes = s.fetchQuotes(ctx, sc)
	}()
	wg.Wait()

	opps := s.engine.FindOpportunities(events, quotes, matchengine.Context{
		Sport:  sc.Key,
		League: sc.League,
	})

	now := time.Now()
	s.mu.Lock()
	s.cache[sc.League] = scanResult{opportunities: opps, scannedAt: now}
	s.mu.Unlock()

	s.observe(sc, events, quotes, opps, time.Since(start))

	if s.hub != nil {
		s.hub.BroadcastOpportunities(sc.League, opps)
		s.hub.BroadcastScan(ScanSummary{
			League:        sc.League,
			Contracts:     len(events),
			BookEvents:    len(quotes),
			Opportunities: len(opps),
			Duration:      time.Since(start).Round(time.Millisecond).String(),
			ScannedAt:     now,
		})
	}

	log.Printf("[SCAN] %s: %d contracts, %d book events, %d opportunities in %s",
		sc.League, len(events), len(quotes), len(opps), time.Since(start).Round(time.Millisecond))

	return opps
}

// fetchQuotes pulls game lines plus any configured outright fields,
// folding their events into one list. Each fetch degrades to nothing
// on error.
func (s *Scanner) fetchQuotes(ctx context.Context, sc SportConfig) []oddsfeed.Event {
	var quotes []oddsfeed.Event

	resp, err := s.odds.Odds(ctx, sc.OddsKey, sc.OddsMarkets)
	if err != nil {
		log.Printf("[SCAN] %s: odds fetch failed: %v", sc.League, err)
		s.recordError(sc.League, "oddsfeed")
	} else {
		quotes = append(quotes, resp.Events...)
		s.updateQuota(resp.Quota)
	}

	for _, key := range sc.OutrightKeys {
		resp, err := s.odds.Odds(ctx, key, oddsfeed.MarketOutrights)
		if err != nil {
			log.Printf("[SCAN] %s: outrights fetch failed (%s): %v", sc.League, key, err)
			s.recordError(sc.League, "oddsfeed")
			continue
		}
		quotes = append(quotes, resp.Events...)
		s.updateQuota(resp.Quota)
	}

	return quotes
}

// Opportunities returns the cached result for a league, or nil when
// no scan has completed within the cache TTL.
func (s *Scanner) Opportunities(league string) []matchengine.Opportunity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.cache[league]
	if !ok || time.Since(res.scannedAt) > s.cacheTTL {
		return nil
	}
	return res.opportunities
}

// AllOpportunities returns every cached, unexpired result keyed by
// league.
func (s *Scanner) AllOpportunities() map[string][]matchengine.Opportunity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]matchengine.Opportunity, len(s.cache))
	for league, res := range s.cache {
		if time.Since(res.scannedAt) > s.cacheTTL {
			continue
		}
		out[league] = res.opportunities
	}
	return out
}

// Quota returns the most recent odds feed quota observation.
func (s *Scanner) Quota() oddsfeed.Quota {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quota
}

func (s *Scanner) updateQuota(q oddsfeed.Quota) {
	s.mu.Lock()
	s.quota = q
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.UpdateQuota(q.Remaining, q.Used)
	}
	if s.hub != nil {
		s.hub.BroadcastQuota(q.Remaining, q.Used)
	}
}

func (s *Scanner) recordError(league, source string) {
	if s.metrics != nil {
		s.metrics.RecordScanError(league, source)
	}
}

func (s *Scanner) observe(sc SportConfig, events []gamma.Event, quotes []oddsfeed.Event, opps []matchengine.Opportunity, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	s.metrics.RecordScan(sc.League, "ok", elapsed.Seconds())
	s.metrics.UpdateInputs(sc.League, len(events), len(quotes))

	byQuality := map[string]int{}
	var evPercents []float64
	for i := range opps {
		if opps[i].Quality != "" {
			byQuality[string(opps[i].Quality)]++
		}
		if opps[i].EVPercent != nil {
			evPercents = append(evPercents, *opps[i].EVPercent)
		}
	}
	s.metrics.RecordOpportunities(sc.League, byQuality, evPercents)
}
