// Package machine streams generated motion-code programs to a controller
// over a serial link.
package machine

import (
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/tarm/serial"
)

// tracer writes to trace with key 'tangcut.machine'
func tracer() tracing.Trace {
	return tracing.Select("tangcut.machine")
}

// Port is the transport to a motion controller. The abstraction allows a
// mock implementation for testing next to the native serial one.
type Port interface {
	io.ReadWriteCloser
}

// PortConfig holds serial port configuration.
type PortConfig struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate (USB CDC controllers ignore this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultPortConfig returns the configuration common GRBL-style
// controllers expect.
func DefaultPortConfig(device string) *PortConfig {
	return &PortConfig{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 0,
	}
}

// OpenPort opens a native serial port.
func OpenPort(cfg *PortConfig) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	tracer().Infof("opened %s at %d baud", cfg.Device, cfg.Baud)
	return port, nil
}
