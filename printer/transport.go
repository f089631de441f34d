package printer

import (
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Transport is the byte sink a printer writes to.
type Transport interface {
	Write([]byte) (int, error)
	Close() error
}

// Opener opens the transport named by an identifier.
type Opener interface {
	Open(identifier string) (Transport, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(identifier string) (Transport, error)

func (f OpenerFunc) Open(identifier string) (Transport, error) { return f(identifier) }

// -------------------- RAW --------------------

// RawTransport passes bytes straight through to conn.
type RawTransport struct {
	conn   io.WriteCloser
	mu     sync.Mutex
	closed bool
}

func (r *RawTransport) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, io.ErrClosedPipe
	}
	return r.conn.Write(b)
}

func (r *RawTransport) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	return r.conn.Close()
}

func (r *RawTransport) Writable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.closed
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// -------------------- Dialer --------------------

// Defaults of the serial line and the network transports.
const (
	DefaultBaudRate    = 9600
	DefaultLPDQueue    = "lp"
	DefaultDialTimeout = 5 * time.Second
	lpdPort            = "515"
)

// Dialer opens transports from identifiers:
//
//	/dev/ttyS0, COM3          serial port, 8N1 without flow control
//	usb:0416:5011             USB printer by vendor and product id (hex)
//	tcp://10.0.0.5:9100       raw socket; port 515 speaks LPD
//	lpd://10.0.0.5[:515]/lp   LPD queue, the job is sent on close
//	spooler:POS-58            Windows print spooler (windows only)
type Dialer struct {
	BaudRate    int
	LPDQueue    string
	DialTimeout time.Duration
}

type endpointKind int

const (
	kindSerial endpointKind = iota
	kindUSB
	kindTCP
	kindLPD
	kindSpooler
)

type endpoint struct {
	kind     endpointKind
	addr     string
	queue    string
	vid, pid uint16
}

func parseIdentifier(identifier string) (endpoint, error) {
	id := strings.TrimSpace(identifier)
	lower := strings.ToLower(id)
	switch {
	case id == "":
		return endpoint{}, fmt.Errorf("empty printer identifier")

	case strings.HasPrefix(lower, "usb:"):
		parts := strings.Split(id[len("usb:"):], ":")
		if len(parts) != 2 {
			return endpoint{}, fmt.Errorf("usb identifier %q: want usb:VID:PID", identifier)
		}
		vid, err := strconv.ParseUint(parts[0], 16, 16)
		if err != nil {
			return endpoint{}, fmt.Errorf("usb identifier %q: vendor id: %w", identifier, err)
		}
		pid, err := strconv.ParseUint(parts[1], 16, 16)
		if err != nil {
			return endpoint{}, fmt.Errorf("usb identifier %q: product id: %w", identifier, err)
		}
		return endpoint{kind: kindUSB, addr: id, vid: uint16(vid), pid: uint16(pid)}, nil

	case strings.HasPrefix(lower, "tcp://"):
		addr := id[len("tcp://"):]
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return endpoint{}, fmt.Errorf("tcp identifier %q: %w", identifier, err)
		}
		return endpoint{kind: kindTCP, addr: addr}, nil

	case strings.HasPrefix(lower, "lpd://"):
		u, err := url.Parse(id)
		if err != nil {
			return endpoint{}, fmt.Errorf("lpd identifier %q: %w", identifier, err)
		}
		if u.Hostname() == "" {
			return endpoint{}, fmt.Errorf("lpd identifier %q: missing host", identifier)
		}
		port := u.Port()
		if port == "" {
			port = lpdPort
		}
		return endpoint{
			kind:  kindLPD,
			addr:  net.JoinHostPort(u.Hostname(), port),
			queue: strings.Trim(u.Path, "/"),
		}, nil

	case strings.HasPrefix(lower, "spooler:"):
		name := strings.TrimSpace(id[len("spooler:"):])
		if name == "" {
			return endpoint{}, fmt.Errorf("spooler identifier %q: missing printer name", identifier)
		}
		return endpoint{kind: kindSpooler, addr: name}, nil
	}
	return endpoint{kind: kindSerial, addr: id}, nil
}

func (d *Dialer) baudRate() int {
	if d.BaudRate > 0 {
		return d.BaudRate
	}
	return DefaultBaudRate
}

func (d *Dialer) queue(q string) string {
	if q != "" {
		return q
	}
	if d.LPDQueue != "" {
		return d.LPDQueue
	}
	return DefaultLPDQueue
}

func (d *Dialer) timeout() time.Duration {
	if d.DialTimeout > 0 {
		return d.DialTimeout
	}
	return DefaultDialTimeout
}

// Open implements Opener.
func (d *Dialer) Open(identifier string) (Transport, error) {
	ep, err := parseIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	switch ep.kind {
	case kindUSB:
		return openUSB(ep.vid, ep.pid)
	case kindSpooler:
		return openSpooler(ep.addr)
	case kindTCP, kindLPD:
		conn, err := net.DialTimeout("tcp", ep.addr, d.timeout())
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", ep.addr, err)
		}
		if _, port, _ := net.SplitHostPort(ep.addr); ep.kind == kindLPD || port == lpdPort {
			return NewLPDTransport(conn, d.queue(ep.queue)), nil
		}
		return &RawTransport{conn: conn}, nil
	}
	return openSerial(ep.addr, d.baudRate())
}
