package edgetts

import (
	"fmt"
	"time"
)

// The synthesis pipeline fails with exactly one of the error types below so
// callers can decide user-visible messaging with errors.As. Transient kinds
// (NegotiationError, RateLimitedError, TransportError) are retried by the
// client before being surfaced; the rest are surfaced immediately.

// InvalidOptionError reports a malformed or unsupported synthesis option.
// It is a local validation failure and never triggers a network call.
type InvalidOptionError struct {
	Option string
	Value  string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %s=%q: %s", e.Option, e.Value, e.Reason)
}

// UnknownVoiceError reports that neither a voice identifier nor a language
// tag could be resolved against the voice catalog.
type UnknownVoiceError struct {
	Query string
}

func (e *UnknownVoiceError) Error() string {
	return fmt.Sprintf("unknown voice or language %q", e.Query)
}

// NegotiationError reports a failure to establish a session with the
// synthesis service: network failure during dial or an HTTP-level rejection
// of the handshake.
type NegotiationError struct {
	Err error
}

func (e *NegotiationError) Error() string {
	return fmt.Sprintf("session negotiation failed: %v", e.Err)
}

func (e *NegotiationError) Unwrap() error { return e.Err }

// RateLimitedError reports that the service throttled the handshake.
// RetryAfter is zero when the service gave no hint.
type RateLimitedError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited by service (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited by service: %v", e.Err)
}

func (e *RateLimitedError) Unwrap() error { return e.Err }

// TransportError reports a mid-stream failure: connection drop, protocol
// desync or a missed deadline. The session that produced it is dead; a
// retry needs a fresh one.
type TransportError struct {
	Stage string // "send", "receive" or "frame"
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Stage, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// EmptyResultError reports that the service accepted the request but
// produced no audio. This is a terminal condition, not a transport fault.
type EmptyResultError struct {
	Voice string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("service produced no audio for voice %s", e.Voice)
}
