// Package command encodes printer directives into the byte stream the
// firmware understands. Encoding is pure: the same directive always yields
// the same sequence, and nothing here touches a transport.
package command

import "time"

// Control characters used as opcode prefixes.
const (
	LF  = 0x0A
	DC2 = 0x12
	Esc = 0x1B
	GS  = 0x1D
)

// SettleDelay is the pause the firmware needs after a reset and between the
// two halves of the sleep-time command.
const SettleDelay = 50 * time.Millisecond

// Step is one element of a command sequence: either bytes to write or, when
// Pause is set, a wait before the next step.
type Step struct {
	Data  []byte
	Pause time.Duration
}

// Sequence is the ordered list of steps produced for one directive.
type Sequence []Step

func write(b ...byte) Step { return Step{Data: b} }

func pause(d time.Duration) Step { return Step{Pause: d} }

// Bytes returns the bytes of s in order, without the pauses.
func (s Sequence) Bytes() []byte {
	var n int
	for _, st := range s {
		n += len(st.Data)
	}
	out := make([]byte, 0, n)
	for _, st := range s {
		out = append(out, st.Data...)
	}
	return out
}

// Pauses returns the total wait time of s.
func (s Sequence) Pauses() time.Duration {
	var d time.Duration
	for _, st := range s {
		d += st.Pause
	}
	return d
}

// Directive is one printer command. The set is closed: only types in this
// package implement it.
type Directive interface {
	Encode() Sequence
	Name() string
	directive()
}

// Encode is a shorthand for d.Encode().Bytes().
func Encode(d Directive) []byte {
	return d.Encode().Bytes()
}
