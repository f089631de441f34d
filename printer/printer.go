package printer

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/AlexStarov/graphprint-GoLang-lib/command"
	imgInternal "github.com/AlexStarov/graphprint-GoLang-lib/image"
	logInternal "github.com/AlexStarov/graphprint-GoLang-lib/log"
)

var (
	// ErrTransportUnavailable is returned by Open when the transport cannot
	// be opened. The printer stays closed.
	ErrTransportUnavailable = errors.New("transport unavailable")

	// ErrClosed is returned by directives issued on a closed printer.
	ErrClosed = errors.New("printer is closed")

	// ErrNotReady is returned by PrintImage when the transport is not open
	// and writable. Nothing is written.
	ErrNotReady = errors.New("printer is not ready")

	// ErrInvalidImage is returned by PrintImage for images that cannot be
	// framed. Nothing is written.
	ErrInvalidImage = imgInternal.ErrInvalidImage
)

// openSettle is how long the serial line needs after opening.
const openSettle = 10 * time.Millisecond

// Printer is a session with one printer. It owns its transport; calls are
// serialized but the session is not meant to be shared between goroutines.
type Printer struct {
	t      Transport
	name   string
	opener Opener

	wait     func(time.Duration)
	conv     *imgInternal.Converter
	defaults State
	state    State

	sync.Mutex
}

// Option configures a Printer.
type Option func(*Printer)

// WithDelay replaces time.Sleep for the settle pauses of the protocol.
func WithDelay(wait func(time.Duration)) Option {
	return func(p *Printer) { p.wait = wait }
}

// WithConverter sets how PrintImage rasterizes images.
func WithConverter(c *imgInternal.Converter) Option {
	return func(p *Printer) { p.conv = c }
}

// WithDefaults sets the state pushed by Init and restored by Reset.
func WithDefaults(s State) Option {
	return func(p *Printer) { p.defaults = s }
}

func newPrinter(opts []Option) *Printer {
	p := &Printer{
		wait:     time.Sleep,
		conv:     imgInternal.NewConverter(),
		defaults: DefaultState(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.state = p.defaults
	return p
}

// NewSession returns a closed printer that opens its transport through
// opener.
func NewSession(opener Opener, opts ...Option) *Printer {
	p := newPrinter(opts)
	p.opener = opener
	return p
}

// NewPrinter returns an open printer writing to w. If w is an io.Closer it
// is closed with the printer.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := newPrinter(opts)
	if t, ok := w.(Transport); ok {
		p.t = t
	} else {
		p.t = &RawTransport{conn: nopCloser{w}}
	}
	p.name = fmt.Sprintf("%T", w)
	return p
}

// Open acquires the transport named by identifier.
func (p *Printer) Open(identifier string) error {
	p.Lock()
	defer p.Unlock()

	if p.t != nil {
		return fmt.Errorf("open %s: already open on %s", identifier, p.name)
	}
	if p.opener == nil {
		return fmt.Errorf("open %s: %w: no opener configured", identifier, ErrTransportUnavailable)
	}

	t, err := p.opener.Open(identifier)
	if err != nil {
		logInternal.Errlog.Error().Err(err).Str("device", identifier).Msg("failed to open printer")
		return fmt.Errorf("open %s: %w: %w", identifier, ErrTransportUnavailable, err)
	}

	p.t = t
	p.name = identifier
	p.state = p.defaults
	logInternal.Stdlog.Info().Str("device", identifier).Msg("printer opened")
	p.wait(openSettle)
	return nil
}

// Close releases the transport. Closing a closed printer does nothing.
func (p *Printer) Close() error {
	p.Lock()
	defer p.Unlock()

	if p.t == nil {
		return nil
	}
	err := p.t.Close()
	p.t = nil
	logInternal.Stdlog.Info().Str("device", p.name).Msg("printer closed")
	if err != nil {
		return fmt.Errorf("close %s: %w", p.name, err)
	}
	return nil
}

// CloseConnection is an alias for Close.
func (p *Printer) CloseConnection() error {
	return p.Close()
}

// IsOpen reports whether the printer holds a transport.
func (p *Printer) IsOpen() bool {
	p.Lock()
	defer p.Unlock()
	return p.t != nil
}

// Ready reports whether the transport is open and writable.
func (p *Printer) Ready() bool {
	p.Lock()
	defer p.Unlock()
	return p.ready()
}

func (p *Printer) ready() bool {
	if p.t == nil {
		return false
	}
	if w, ok := p.t.(interface{ Writable() bool }); ok {
		return w.Writable()
	}
	return true
}

// State returns the configuration the printer is believed to hold.
func (p *Printer) State() State {
	p.Lock()
	defer p.Unlock()
	return p.state
}

// Write writes buf to the printer unchanged.
func (p *Printer) Write(buf []byte) (int, error) {
	p.Lock()
	defer p.Unlock()

	if p.t == nil {
		return 0, ErrClosed
	}
	if err := p.write(buf); err != nil {
		return 0, err
	}
	return len(buf), nil
}

// Apply encodes d and writes it, pausing where the protocol asks to.
func (p *Printer) Apply(d command.Directive) error {
	p.Lock()
	defer p.Unlock()
	return p.apply(d)
}

// Init resets the printer and pushes the default configuration, in order.
// It stops at the first failing directive.
func (p *Printer) Init() error {
	p.Lock()
	defer p.Unlock()

	for _, d := range p.defaults.InitDirectives() {
		if err := p.apply(d); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}
	return nil
}

func (p *Printer) apply(d command.Directive) error {
	if p.t == nil {
		return fmt.Errorf("%s: %w", d.Name(), ErrClosed)
	}

	for _, step := range d.Encode() {
		if step.Pause > 0 {
			p.wait(step.Pause)
			continue
		}
		if err := p.write(step.Data); err != nil {
			logInternal.Errlog.Error().Err(err).Str("directive", d.Name()).Msg("write failed")
			return fmt.Errorf("%s: %w", d.Name(), err)
		}
	}

	p.state.apply(d, p.defaults)
	logInternal.Stdlog.Debug().Str("directive", d.Name()).Msg("sent")
	return nil
}

// write hands b to the transport; a short write counts as a failure.
func (p *Printer) write(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	n, err := p.t.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return io.ErrShortWrite
	}
	return nil
}
