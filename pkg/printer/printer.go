package printer

import (
	"context"
	"fmt"
	"net"
	"os"
	"slices"
	"sync"
	"time"
)

// Printer sends raw ESC/POS data to a thermal printer.
type Printer interface {
	// Print sends one complete job.
	Print(ctx context.Context, data []byte) error
	// Close releases the printer connection/handle.
	Close() error
	// IsConnected reports whether the device is reachable right now.
	IsConnected() bool
}

// Options selects and configures a printer backend
type Options struct {
	Type        string // usb, network or none
	USBPath     string // e.g. /dev/usb/lp0
	Address     string // e.g. 192.168.1.100:9100
	DialTimeout time.Duration
}

// --- USB Printer (writes to device file, e.g. /dev/usb/lp0) ---

type usbPrinter struct {
	path string
	mu   sync.Mutex
}

// NewUSBPrinter creates a printer that writes to a USB device file.
func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
}

func (p *usbPrinter) Print(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// one job at a time, or receipts interleave on paper
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to USB device %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) Close() error {
	return nil
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// --- Network Printer (raw TCP, port 9100) ---

type networkPrinter struct {
	address string
	dialer  net.Dialer
}

// NewNetworkPrinter creates a printer that connects via TCP.
// Address should include port, e.g. "192.168.1.100:9100".
func NewNetworkPrinter(address string, dialTimeout time.Duration) Printer {
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	return &networkPrinter{
		address: address,
		dialer:  net.Dialer{Timeout: dialTimeout},
	}
}

func (p *networkPrinter) Print(ctx context.Context, data []byte) error {
	conn, err := p.dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(10 * time.Second)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetWriteDeadline(deadline)

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, err := p.dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null Printer (keeps the last job, used when no printer is configured) ---

// NullPrinter accepts every job without hardware and remembers the last one.
type NullPrinter struct {
	mu   sync.Mutex
	last []byte
	jobs int
}

// NewNullPrinter creates a printer for environments without hardware.
func NewNullPrinter() *NullPrinter {
	return &NullPrinter{}
}

func (p *NullPrinter) Print(ctx context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = slices.Clone(data)
	p.jobs++
	return nil
}

func (p *NullPrinter) Close() error {
	return nil
}

func (p *NullPrinter) IsConnected() bool {
	return false
}

// LastJob returns the bytes of the most recent job and the job count
func (p *NullPrinter) LastJob() ([]byte, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.last), p.jobs
}

// New creates the Printer selected by opts.Type.
func New(opts Options) (Printer, error) {
	switch opts.Type {
	case "usb":
		if opts.USBPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for USB printer type")
		}
		return NewUSBPrinter(opts.USBPath), nil
	case "network":
		if opts.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewNetworkPrinter(opts.Address, opts.DialTimeout), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", opts.Type)
	}
}
