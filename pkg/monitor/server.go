// Package monitor serves the link state over HTTP and websocket.
package monitor

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/telelink/pkg/framework"
	"github.com/robotalks/telelink/pkg/link"
)

// StateSource provides link state snapshots.
type StateSource interface {
	State() link.State
}

// Status is the JSON form of a link state.
type Status struct {
	link.State
	// Q is the last orientation sample as [w, x, y, z].
	Q          []float64  `json:"q,omitempty"`
	SampleTime *time.Time `json:"sample_time,omitempty"`
}

// StatusOf converts a link state.
func StatusOf(st link.State) Status {
	s := Status{State: st}
	if sample := st.LastSample; !sample.IsZero() {
		s.Q = []float64{sample.Q.Real, sample.Q.Imag, sample.Q.Jmag, sample.Q.Kmag}
		s.SampleTime = &sample.Time
	}
	return s
}

// Server serves GET /status, GET /orientation and a /ws stream of Status.
type Server struct {
	Addr     string
	Interval time.Duration
	Source   StateSource

	doneOnce sync.Once
	done     chan struct{}
}

var (
	addr     = ""
	interval = 100 * time.Millisecond
)

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&addr, "monitor", addr, "Monitor HTTP listen address, e.g. :8080. Empty to disable.")
	flag.DurationVar(&interval, "monitor-interval", interval, "Websocket push interval.")
}

// Addr returns the listen address from flags.
func Addr() string {
	return addr
}

// NewServer creates a Server with the flag settings.
func NewServer(source StateSource) *Server {
	return &Server{Addr: addr, Interval: interval, Source: source}
}

// Name implements framework.Named.
func (s *Server) Name() string {
	return "monitor"
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.serveStatus)
	mux.HandleFunc("/orientation", s.serveOrientation)
	mux.Handle("/ws", websocket.Handler(s.stream))
	return mux
}

// Run implements framework.Runnable.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler()}
	glog.Infof("monitor: listening on %s", s.Addr)
	defer close(s.stopped())
	err := fx.RunWithContextCloser(ctx, srv, srv.ListenAndServe)
	if err == http.ErrServerClosed || ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *Server) stopped() chan struct{} {
	s.doneOnce.Do(func() { s.done = make(chan struct{}) })
	return s.done
}

func (s *Server) serveStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, StatusOf(s.Source.State()))
}

func (s *Server) serveOrientation(w http.ResponseWriter, r *http.Request) {
	st := StatusOf(s.Source.State())
	if st.Q == nil {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, struct {
		Q    []float64 `json:"q"`
		Time time.Time `json:"time"`
	}{st.Q, *st.SampleTime})
}

func (s *Server) stream(ws *websocket.Conn) {
	defer ws.Close()
	interval := s.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := websocket.JSON.Send(ws, StatusOf(s.Source.State())); err != nil {
			glog.V(2).Infof("monitor: %s: %v", ws.Request().RemoteAddr, err)
			return
		}
		select {
		case <-ticker.C:
		case <-s.stopped():
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Warningf("monitor: json encode error: %v", err)
	}
}
