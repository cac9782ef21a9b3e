package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/clock"
	"github.com/akyairhashvil/slotgrid/internal/countdown"
	"github.com/akyairhashvil/slotgrid/internal/schedule"
	"github.com/akyairhashvil/slotgrid/internal/util"
	"github.com/gin-gonic/gin"
)

// DefaultAddr is used when no listen address is configured.
const DefaultAddr = "127.0.0.1:3000"

// Server exposes today's slots over HTTP and gates page links the same way
// the grid does: a page is reachable only while its countdown is running.
type Server struct {
	addr      string
	sched     schedule.Config
	clock     clock.Clock
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP server for sched.
func NewServer(addr string, sched schedule.Config, clk clock.Clock) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if clk == nil {
		clk = clock.System
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		sched:  sched,
		clock:  clk,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler returns the routed engine.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/slots", s.handleSlots)
	// Pages live at the same paths the slot targets advertise, e.g. /page2.
	r.GET("/:target", s.handlePage)
	return r
}

// Start begins serving HTTP requests in the background.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = s.clock.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			util.LogError("http server", err)
		}
	}()
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type slotJSON struct {
	Index     int       `json:"index"`
	Title     string    `json:"title"`
	Target    string    `json:"target,omitempty"`
	End       time.Time `json:"end"`
	Remaining int       `json:"remaining_seconds"`
	Display   string    `json:"display"`
	Expired   bool      `json:"expired"`
}

func (s *Server) snapshot() []slotJSON {
	now := s.clock.Now()
	descs := schedule.Descriptors(s.sched.Slots(now))
	out := make([]slotJSON, 0, len(descs))
	for i, d := range descs {
		rem := countdown.Remaining(d.End, now)
		item := slotJSON{
			Index:     i + 1,
			Title:     d.Title,
			End:       d.End,
			Remaining: rem,
			Display:   countdown.FormatRemaining(rem),
			Expired:   rem == 0,
		}
		if rem > 0 {
			item.Target = d.Target
		}
		out = append(out, item)
	}
	return out
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": s.clock.Now().Sub(s.startTime).String(),
	})
}

func (s *Server) handleSlots(c *gin.Context) {
	slots := s.snapshot()
	c.JSON(http.StatusOK, gin.H{
		"slots": slots,
		"count": len(slots),
	})
}

func (s *Server) handlePage(c *gin.Context) {
	n, ok := schedule.TargetIndex("/" + c.Param("target"))
	slots := s.snapshot()
	if !ok || n > len(slots) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such page"})
		return
	}
	slot := slots[n-1]
	if slot.Expired {
		c.JSON(http.StatusGone, gin.H{"error": countdown.ExpiredLabel, "title": slot.Title})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":             "Page " + strconv.Itoa(n),
		"card":              slot.Title,
		"remaining_seconds": slot.Remaining,
		"display":           slot.Display,
	})
}
