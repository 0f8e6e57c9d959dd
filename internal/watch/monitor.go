package watch

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pilebones/go-udev/netlink"

	"crate/internal/logging"
)

// defaultDebounce suppresses the event bursts a single insertion produces;
// partitions surface several add/change uevents back to back.
const defaultDebounce = 2 * time.Second

// Handler is invoked for each debounced media event with the device name
// that triggered it.
type Handler func(ctx context.Context, device string)

// Monitor watches udev netlink events for removable media.
type Monitor struct {
	logger   *slog.Logger
	handler  Handler
	debounce time.Duration

	mu       sync.Mutex
	conn     *netlink.UEventConn
	quit     chan struct{}
	running  bool
	lastFire time.Time
}

// Option adjusts monitor construction.
type Option func(*Monitor)

// WithDebounce overrides the default event debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.debounce = d
		}
	}
}

// NewMonitor creates a monitor that invokes handler for removable-media
// events.
func NewMonitor(logger *slog.Logger, handler Handler, opts ...Option) *Monitor {
	m := &Monitor{
		logger:   logging.NewComponentLogger(logger, "watch"),
		handler:  handler,
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start connects to the udev netlink socket and begins listening. It fails
// when the socket cannot be opened; watching is the sole purpose of the
// caller, so there is no degraded mode.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return errors.New("monitor already running")
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		return errors.Join(errors.New("connect to netlink socket"), err)
	}

	m.conn = conn
	m.quit = make(chan struct{})
	m.running = true

	quit := m.quit
	go m.monitorLoop(ctx, quit)

	m.logger.Info("media monitor started",
		logging.String(logging.FieldEventType, "watch_started"),
	)
	return nil
}

// Stop shuts down the monitor. Safe to call multiple times.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	if m.quit != nil {
		close(m.quit)
		m.quit = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.running = false

	m.logger.Info("media monitor stopped",
		logging.String(logging.FieldEventType, "watch_stopped"),
	)
}

// Running reports whether the monitor is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) monitorLoop(ctx context.Context, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)

	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return
	}

	monitorQuit := conn.Monitor(queue, errs, buildMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			m.handleEvent(ctx, uevent)
		case err := <-errs:
			m.logger.Warn("media monitor error",
				logging.Error(err),
				logging.String(logging.FieldEventType, "watch_error"),
			)
		}
	}
}

// buildMatcher matches block-subsystem partition add/change events, the
// shape removable media produces on insertion.
func buildMatcher() netlink.Matcher {
	action := "add|change"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "block",
			"DEVTYPE":   "partition",
		},
	})
	return rules
}

func (m *Monitor) handleEvent(ctx context.Context, uevent netlink.UEvent) {
	device := extractDeviceName(uevent)
	if device == "" {
		m.logger.Debug("ignoring event without device name",
			logging.String("action", string(uevent.Action)),
			logging.String("kobj", uevent.KObj),
		)
		return
	}

	if !m.shouldFire(time.Now()) {
		m.logger.Debug("event debounced",
			logging.String("device", device),
		)
		return
	}

	m.logger.Info("removable media detected",
		logging.String(logging.FieldEventType, "watch_media_detected"),
		logging.String("device", device),
		logging.String("action", string(uevent.Action)),
	)

	if m.handler != nil {
		m.handler(ctx, device)
	}
}

// shouldFire records the trigger time and reports whether enough time passed
// since the previous trigger.
func (m *Monitor) shouldFire(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.lastFire.IsZero() && now.Sub(m.lastFire) < m.debounce {
		return false
	}
	m.lastFire = now
	return true
}

// extractDeviceName gets the device path from a uevent, falling back to the
// last DEVPATH segment when DEVNAME is absent.
func extractDeviceName(uevent netlink.UEvent) string {
	if devname := uevent.Env["DEVNAME"]; devname != "" {
		return devname
	}

	devpath := uevent.Env["DEVPATH"]
	if devpath == "" {
		return ""
	}
	parts := strings.Split(devpath, "/")
	if len(parts) == 0 {
		return ""
	}
	return "/dev/" + parts[len(parts)-1]
}
