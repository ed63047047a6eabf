// edgewired is the EV scanner daemon. It periodically pulls Polymarket
// sports contracts and sportsbook lines, matches them, and serves the
// resulting opportunities over HTTP and WebSocket.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/edgewire/edgewire/pkg/matchengine"
	"github.com/edgewire/edgewire/pkg/metrics"
	"github.com/edgewire/edgewire/pkg/oddsfeed"
	"github.com/edgewire/edgewire/pkg/polymarket/gamma"
	"github.com/edgewire/edgewire/pkg/scanner"
	"github.com/edgewire/edgewire/pkg/streaming"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Flags
	httpAddr         = flag.String("http", ":8080", "HTTP server address")
	interval         = flag.Duration("interval", 2*time.Minute, "Scan interval")
	sportsFlag       = flag.String("sports", "", "Comma-separated leagues to scan (default: all)")
	stake            = flag.Float64("stake", matchengine.DefaultStake, "Reference stake in dollars for EV figures")
	includeUnmatched = flag.Bool("include-unmatched", false, "Emit opportunities with no sportsbook line")
	oddsKey          = flag.String("odds-key", "", "The Odds API key (or ODDS_API_KEY env)")
	oddsRegions      = flag.String("odds-regions", "us", "Bookmaker regions to query")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("Starting edgewire EV scanner")

	key := *oddsKey
	if key == "" {
		key = os.Getenv("ODDS_API_KEY")
	}
	if key == "" {
		log.Fatal("No odds API key provided (use -odds-key or ODDS_API_KEY)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	d := newDaemon(key)

	go d.hub.Run()
	go d.startHTTP()
	go d.scanner.Run(ctx, *interval)

	log.Printf("Scanner running (sports=%s, interval=%s, http=%s)", sportsList(), *interval, *httpAddr)
	log.Printf("WebSocket streaming available at ws://%s/ws", *httpAddr)
	log.Println("Press Ctrl+C to stop")

	<-sigCh
	log.Println("Shutting down...")
	cancel()

	q := d.scanner.Quota()
	log.Printf("Final odds quota: %d used, %d remaining", q.Used, q.Remaining)
	log.Println("Goodbye!")
}

type daemon struct {
	scanner *scanner.Scanner
	hub     *streaming.Hub
	metrics *metrics.ScannerMetrics
}

func newDaemon(oddsAPIKey string) *daemon {
	d := &daemon{
		hub:     streaming.NewHub(),
		metrics: metrics.NewScannerMetrics(),
	}
	d.hub.OnClientCount(d.metrics.UpdateStreamClients)

	engine := matchengine.NewEngine(&matchengine.Config{
		Stake:            *stake,
		IncludeUnmatched: *includeUnmatched,
	})

	d.scanner = scanner.New(scanner.Config{
		Contracts: gamma.NewClient(),
		Odds:      oddsfeed.NewClient(oddsAPIKey, oddsfeed.WithRegions(*oddsRegions)),
		Engine:    engine,
		Sports:    scanner.SelectSports(sportsList()),
		Hub:       d.hub,
		Metrics:   d.metrics,
		CacheTTL:  3 * *interval,
	})

	return d
}

func sportsList() []string {
	if *sportsFlag == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(*sportsFlag, ",") {
		if s = strings.TrimSpace(strings.ToLower(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (d *daemon) startHTTP() {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// All cached opportunities, or one league via ?league=nba.
	mux.HandleFunc("/api/opportunities", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if league := r.URL.Query().Get("league"); league != "" {
			opps := d.scanner.Opportunities(strings.ToLower(league))
			if opps == nil {
				opps = []matchengine.Opportunity{}
			}
			json.NewEncoder(w).Encode(opps)
			return
		}
		json.NewEncoder(w).Encode(d.scanner.AllOpportunities())
	})

	// Odds feed quota state.
	mux.HandleFunc("/api/quota", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(d.scanner.Quota())
	})

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.HandlerFor(d.metrics.Registry(), promhttp.HandlerOpts{}))

	// WebSocket streaming endpoint
	mux.HandleFunc("/ws", d.hub.ServeWS)

	server := &http.Server{
		Addr:         *httpAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("HTTP server listening on %s", *httpAddr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("HTTP server error: %v", err)
	}
}
