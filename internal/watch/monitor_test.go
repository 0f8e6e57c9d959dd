package watch

import (
	"testing"
	"time"

	"github.com/pilebones/go-udev/netlink"

	"crate/internal/logging"
)

func TestNewMonitorDefaults(t *testing.T) {
	m := NewMonitor(logging.NewNop(), nil)
	if m == nil {
		t.Fatal("expected non-nil monitor")
	}
	if m.debounce != defaultDebounce {
		t.Fatalf("expected default debounce, got %v", m.debounce)
	}
	if m.Running() {
		t.Fatal("unstarted monitor must not report running")
	}
}

func TestWithDebounce(t *testing.T) {
	m := NewMonitor(logging.NewNop(), nil, WithDebounce(50*time.Millisecond))
	if m.debounce != 50*time.Millisecond {
		t.Fatalf("expected 50ms debounce, got %v", m.debounce)
	}

	ignored := NewMonitor(logging.NewNop(), nil, WithDebounce(-time.Second))
	if ignored.debounce != defaultDebounce {
		t.Fatalf("negative debounce must keep default, got %v", ignored.debounce)
	}
}

func TestStopWithoutStartIsNoop(t *testing.T) {
	m := NewMonitor(logging.NewNop(), nil)
	m.Stop()
	m.Stop()
	if m.Running() {
		t.Fatal("stopped monitor must not report running")
	}
}

func TestShouldFireDebounces(t *testing.T) {
	m := NewMonitor(logging.NewNop(), nil, WithDebounce(time.Second))
	base := time.Now()

	if !m.shouldFire(base) {
		t.Fatal("first event must fire")
	}
	if m.shouldFire(base.Add(200 * time.Millisecond)) {
		t.Fatal("event inside debounce window must not fire")
	}
	if !m.shouldFire(base.Add(2 * time.Second)) {
		t.Fatal("event after debounce window must fire")
	}
}

func TestExtractDeviceName(t *testing.T) {
	withDevname := netlink.UEvent{Env: map[string]string{"DEVNAME": "/dev/sdb1"}}
	if got := extractDeviceName(withDevname); got != "/dev/sdb1" {
		t.Fatalf("expected /dev/sdb1, got %q", got)
	}

	withDevpath := netlink.UEvent{Env: map[string]string{"DEVPATH": "/devices/pci0000/usb1/block/sdb/sdb1"}}
	if got := extractDeviceName(withDevpath); got != "/dev/sdb1" {
		t.Fatalf("expected /dev/sdb1 from DEVPATH, got %q", got)
	}

	empty := netlink.UEvent{Env: map[string]string{}}
	if got := extractDeviceName(empty); got != "" {
		t.Fatalf("expected empty device name, got %q", got)
	}
}
