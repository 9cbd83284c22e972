package edgetts

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Outbound frame paths.
const (
	pathSpeechConfig = "speech.config"
	pathSSML         = "ssml"
)

// speechConfigBody pins the output format and the metadata events we want
// from the service. The format is the service's standard MP3 stream; callers
// can play it without transcoding.
const speechConfigBody = `{"context":{"synthesis":{"audio":{"metadataoptions":{"sentenceBoundaryEnabled":"false","wordBoundaryEnabled":"true"},"outputFormat":"audio-24khz-48kbitrate-mono-mp3"}}}}`

// frameStream is a lazy, finite, forward-only sequence of frames from one
// synthesis exchange. It is not restartable; retrying needs a fresh session.
type frameStream interface {
	Frames() <-chan Frame
	Errs() <-chan error
	Close() error
}

// exchanger runs one duplex synthesis exchange. Swapped for a fake in tests.
type exchanger interface {
	exchange(ctx context.Context, sess session, requestID, ssml string) (frameStream, error)
}

// wsExchanger dials the negotiated endpoint and performs the exchange over a
// websocket: configuration frame, SSML frame, then frames in until turn.end.
type wsExchanger struct {
	dialer  *websocket.Dialer
	timeout time.Duration
	logger  *log.Logger
}

func (x *wsExchanger) exchange(ctx context.Context, sess session, requestID, ssml string) (frameStream, error) {
	// The token window may have closed while the attempt waited in a retry
	// backoff; dialing with a stale token earns a rejection, so renegotiate.
	if sess.expired(time.Now()) {
		if x.logger != nil {
			x.logger.Printf("edgetts: session %s expired before use, renegotiating", sess.ConnectionID)
		}
		sess = newSession(sess.endpoint, time.Now())
	}

	conn, resp, err := x.dialer.DialContext(ctx, sess.URL, requestHeaders())
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
			return nil, &RateLimitedError{
				RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
				Err:        err,
			}
		}
		if resp != nil {
			return nil, &NegotiationError{Err: fmt.Errorf("handshake rejected with status %d: %w", resp.StatusCode, err)}
		}
		return nil, &NegotiationError{Err: err}
	}

	// One deadline covers the whole exchange, from first byte sent to the
	// completion signal.
	deadline := time.Now().Add(x.timeout)
	_ = conn.SetReadDeadline(deadline)
	_ = conn.SetWriteDeadline(deadline)

	now := time.Now()
	config := encodeTextFrame(pathSpeechConfig, "", "application/json; charset=utf-8", speechConfigBody, now)
	if err := conn.WriteMessage(websocket.TextMessage, config); err != nil {
		conn.Close()
		return nil, &TransportError{Stage: "send", Err: err}
	}
	payload := encodeTextFrame(pathSSML, requestID, "application/ssml+xml", ssml, now)
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		conn.Close()
		return nil, &TransportError{Stage: "send", Err: err}
	}

	t := &transceiver{
		conn:   conn,
		frames: make(chan Frame, 32),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	t.wg.Add(1)
	go t.readLoop()
	return t, nil
}

// transceiver owns one open websocket and pumps its messages, parsed and in
// arrival order, into the frames channel until the completion signal.
type transceiver struct {
	conn      *websocket.Conn
	frames    chan Frame
	errs      chan error
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func (t *transceiver) Frames() <-chan Frame { return t.frames }

func (t *transceiver) Errs() <-chan error { return t.errs }

// Close tears the stream down. Safe to call more than once and concurrently
// with the read loop.
func (t *transceiver) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.done)
		err = t.conn.Close()
		t.wg.Wait()
	})
	return err
}

func (t *transceiver) readLoop() {
	defer t.wg.Done()

	for {
		select {
		case <-t.done:
			return
		default:
		}

		msgType, msg, err := t.conn.ReadMessage()
		if err != nil {
			t.fail(&TransportError{Stage: "receive", Err: err})
			return
		}

		var frame Frame
		switch msgType {
		case websocket.TextMessage:
			frame, err = parseTextFrame(msg)
		case websocket.BinaryMessage:
			frame, err = parseBinaryFrame(msg)
		default:
			continue
		}
		if err != nil {
			t.fail(&TransportError{Stage: "frame", Err: err})
			return
		}

		if frame.Path == pathTurnEnd {
			close(t.frames)
			_ = t.conn.Close()
			return
		}

		select {
		case <-t.done:
			return
		case t.frames <- frame:
		}
	}
}

func (t *transceiver) fail(err error) {
	select {
	case <-t.done:
	case t.errs <- err:
	default:
	}
}

func requestHeaders() http.Header {
	h := http.Header{}
	h.Set("Pragma", "no-cache")
	h.Set("Cache-Control", "no-cache")
	h.Set("Origin", "chrome-extension://jdiccldimpdaibmpdkjnbmckianbfold")
	h.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36 Edg/130.0.0.0")
	return h
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
