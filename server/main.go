//go:build !js
// +build !js

package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/pion/logging"
	"github.com/pion/randutil"
	"github.com/simukka/ukg-math-adventure/audio"
	"github.com/simukka/ukg-math-adventure/game"
)

//go:embed index.html
var indexHTML []byte

const (
	requestIDLength = 8
	requestIDRunes  = "abcdefghijklmnopqrstuvwxyz0123456789"
	maxBodyBytes    = 4 << 10
	maxSpeechText   = 300
)

// Server proxies the encouragement and speech providers and serves the game.
type Server struct {
	provider  Provider
	limiter   *ClientLimiter
	staticDir string
	timeout   time.Duration
	started   time.Time
	log       logging.LeveledLogger
}

// NewServer wires the routes. A nil provider makes both provider endpoints
// answer 503 so the client falls back.
func NewServer(provider Provider, limiter *ClientLimiter, staticDir string, log logging.LeveledLogger) *Server {
	return &Server{
		provider:  provider,
		limiter:   limiter,
		staticDir: staticDir,
		timeout:   game.ProviderTimeout,
		started:   time.Now(),
		log:       log,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve embedded index.html at root path
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		// Serve other static files from disk
		http.FileServer(http.Dir(s.staticDir)).ServeHTTP(w, r)
	})

	api := func(h http.HandlerFunc) http.Handler {
		return s.withRequestID(s.limiter.Middleware(h))
	}
	mux.Handle(game.EncouragementPath, api(s.handleEncouragement))
	mux.Handle(game.SpeechPath, api(s.handleSpeech))
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

type ctxKey struct{}

// withRequestID tags each API request with a random ID for the logs.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := randutil.GenerateCryptoRandomString(requestIDLength, requestIDRunes)
		if err != nil {
			id = "-"
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

// providerError maps a provider failure to a status code.
func (s *Server) providerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNoAPIKey):
		http.Error(w, "provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, context.DeadlineExceeded):
		s.log.Warnf("[%s] %s: provider timed out", requestID(r), r.URL.Path)
		http.Error(w, "provider timed out", http.StatusGatewayTimeout)
	default:
		s.log.Errorf("[%s] %s: %v", requestID(r), r.URL.Path, err)
		http.Error(w, "provider failed", http.StatusBadGateway)
	}
}

func (s *Server) handleEncouragement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req game.EncouragementRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if s.provider == nil {
		s.providerError(w, r, ErrNoAPIKey)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	text, err := s.provider.Encourage(ctx, req.Score, req.Correct)
	if err != nil {
		s.providerError(w, r, err)
		return
	}
	s.log.Debugf("[%s] encouragement score=%d correct=%t: %q", requestID(r), req.Score, req.Correct, text)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(game.EncouragementResponse{Text: text})
}

func (s *Server) handleSpeech(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req game.SpeechRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" || len(text) > maxSpeechText {
		http.Error(w, "text must be 1-300 bytes", http.StatusBadRequest)
		return
	}
	if s.provider == nil {
		s.providerError(w, r, ErrNoAPIKey)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	pcm, err := s.provider.Speak(ctx, text)
	if err != nil {
		s.providerError(w, r, err)
		return
	}
	s.log.Debugf("[%s] speech %q: %s of PCM", requestID(r), text, humanize.Bytes(uint64(len(pcm))))

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("X-Sample-Rate", fmt.Sprint(audio.AudioConfig.SpeechSampleRate))
	w.Write(pcm)
}

// Health is the /api/health body.
type Health struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Provider bool   `json:"provider"`
	Clients  int    `json:"clients"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Health{
		Status:   "healthy",
		Uptime:   durafmt.Parse(time.Since(s.started)).LimitFirstN(2).String(),
		Provider: s.provider != nil,
		Clients:  s.limiter.Len(),
	})
}

// parseLogLevel maps a flag value to a pion log level.
func parseLogLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(s) {
	case "disabled", "off":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	}
	return logging.LogLevelInfo, fmt.Errorf("unknown log level %q", s)
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	logLevel := flag.String("log-level", "info", "Log level: error, warn, info, debug, trace")
	perClient := flag.Duration("rate", 500*time.Millisecond, "Minimum interval between provider requests per client")
	burst := flag.Int("burst", 5, "Provider request burst per client")
	trustProxy := flag.Bool("trust-proxy", false, "Key rate limits by X-Forwarded-For; only behind a proxy that sets it")
	flag.Parse()

	factory := logging.NewDefaultLoggerFactory()
	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	factory.DefaultLogLevel = level
	log := factory.NewLogger("server")

	var provider Provider
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		provider = NewGeminiClient(key, factory.NewLogger("provider"))
	} else {
		log.Warn("GEMINI_API_KEY not set, provider endpoints will answer 503")
	}

	limiter := NewClientLimiter(*perClient, *burst, 10*time.Minute)
	limiter.TrustProxy = *trustProxy
	go limiter.Run(time.Minute, nil)

	srv := NewServer(provider, limiter, *staticDir, log)
	addr := fmt.Sprintf(":%d", *port)
	log.Infof("UKG Math Adventure server starting on http://localhost%s", addr)
	log.Infof("Serving static files from: %s", *staticDir)

	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Errorf("server: %v", err)
		os.Exit(1)
	}
}
