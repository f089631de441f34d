package printer

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	logInternal "github.com/AlexStarov/graphprint-GoLang-lib/log"
)

const lpdAckTimeout = 5 * time.Second

// LPDTransport buffers everything written and submits it as one RFC 1179
// print job on Close.
type LPDTransport struct {
	conn   net.Conn
	queue  string
	jobBuf bytes.Buffer
	closed bool
	mu     sync.Mutex
}

func NewLPDTransport(conn net.Conn, queue string) *LPDTransport {
	if queue == "" {
		queue = DefaultLPDQueue
	}
	return &LPDTransport{conn: conn, queue: queue}
}

func (l *LPDTransport) Write(data []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0, io.ErrClosedPipe
	}
	return l.jobBuf.Write(data)
}

func (l *LPDTransport) Writable() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.closed
}

// Close sends the buffered job, if any, and closes the connection.
func (l *LPDTransport) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true

	if l.jobBuf.Len() == 0 {
		return l.conn.Close()
	}
	if err := l.flushJob(); err != nil {
		_ = l.conn.Close()
		return err
	}
	return l.conn.Close()
}

func (l *LPDTransport) flushJob() error {
	host, _ := os.Hostname()
	if host == "" {
		host = "localhost"
	}
	user := os.Getenv("USER")
	if user == "" {
		user = "graphprint"
	}
	hostShort := host
	if i := strings.IndexByte(hostShort, '.'); i > 0 {
		hostShort = hostShort[:i]
	}

	jobID := int(time.Now().UnixNano() % 1000)
	dfName := fmt.Sprintf("dfA%03d%s", jobID, hostShort)
	cfName := fmt.Sprintf("cfA%03d%s", jobID, hostShort)

	// H host, P user, J job name, N source name, l print raw data file
	control := fmt.Sprintf("H%s\nP%s\nJgraphprint-%03d\nN%s\nl%s\n", host, user, jobID, dfName, dfName)
	data := l.jobBuf.Bytes()

	logInternal.Stdlog.Debug().Str("queue", l.queue).Int("bytes", len(data)).Msg("sending LPD job")

	if err := l.command(0x02, l.queue+"\n", nil, "receive job"); err != nil {
		return err
	}
	if err := l.command(0x02, strconv.Itoa(len(control))+" "+cfName+"\n", []byte(control), "control file"); err != nil {
		return err
	}
	if err := l.command(0x03, strconv.Itoa(len(data))+" "+dfName+"\n", data, "data file"); err != nil {
		return err
	}

	l.jobBuf.Reset()
	return nil
}

// command writes op + line, then body and a NUL when body is set, and waits
// for the zero acknowledgement.
func (l *LPDTransport) command(op byte, line string, body []byte, stage string) error {
	msg := append([]byte{op}, line...)
	if body != nil {
		msg = append(msg, body...)
		msg = append(msg, 0)
	}
	if err := writeAll(l.conn, msg); err != nil {
		return fmt.Errorf("LPD %s: %w", stage, err)
	}
	return readAck(l.conn, stage)
}

func readAck(conn net.Conn, stage string) error {
	_ = conn.SetReadDeadline(time.Now().Add(lpdAckTimeout))
	defer conn.SetReadDeadline(time.Time{})

	ack := make([]byte, 1)
	if _, err := io.ReadFull(conn, ack); err != nil {
		return fmt.Errorf("LPD %s: reading ack: %w", stage, err)
	}
	if ack[0] != 0 {
		return fmt.Errorf("LPD %s: not acknowledged (0x%02x)", stage, ack[0])
	}
	return nil
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}
