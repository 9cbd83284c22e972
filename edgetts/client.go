// Package edgetts is a client for Microsoft Edge's browser-embedded speech
// synthesis service. It turns a (text, voice, prosody) tuple into a single
// playable MP3 buffer over the service's streaming websocket protocol, with
// response caching, single-flight coalescing of identical requests and a
// bounded retry policy for transient failures.
package edgetts

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"

	"github.com/lukasbauer/edgevox/internal/cache"
)

const mediaTypeMP3 = "audio/mpeg"

// Audio is the result of one synthesis: the concatenated encoded audio
// payload and its media type. Immutable once produced; len(Data) is the
// total byte length.
type Audio struct {
	Data      []byte
	MediaType string
}

// CacheStore persists cache entries beyond the process lifetime. The
// in-memory cache works without one; a store makes repeat requests cheap
// across restarts. Load returns (nil, nil) on a miss.
type CacheStore interface {
	Load(ctx context.Context, fingerprint string) (*Audio, error)
	Save(ctx context.Context, fingerprint string, audio *Audio) error
}

// Config holds client configuration. The zero value is usable.
type Config struct {
	// DefaultVoice is the fallback when a requested voice is unknown and
	// strict mode is off. Must name a catalog voice. Default en-US-JennyNeural.
	DefaultVoice string

	// StrictVoices makes unknown voices fail instead of falling back.
	StrictVoices bool

	// Timeout bounds one exchange, from first byte sent to the completion
	// signal. Default 20s.
	Timeout time.Duration

	// MaxRetries is the number of additional attempts after a transient
	// failure. Default 2; negative disables retries.
	MaxRetries int

	// CacheSize bounds the in-memory result cache (LRU). Default 128.
	CacheSize int

	// Store optionally persists cache entries across restarts.
	Store CacheStore

	Logger *log.Logger

	// Endpoint overrides the service endpoint; used by tests.
	Endpoint string
}

// Client drives the synthesis pipeline. Safe for concurrent use; the result
// cache is the only state shared across calls.
type Client struct {
	cfg    Config
	x      exchanger
	cache  *cache.Cache[*Audio]
	store  CacheStore
	logger *log.Logger

	retryInitial time.Duration
	chunkDelay   time.Duration
}

// NewClient creates a client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.DefaultVoice == "" {
		cfg.DefaultVoice = "en-US-JennyNeural"
	}
	if !KnownVoice(cfg.DefaultVoice) {
		return nil, &UnknownVoiceError{Query: cfg.DefaultVoice}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 2
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 128
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	memo, err := cache.New[*Audio](cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:    cfg,
		x:      &wsExchanger{dialer: websocket.DefaultDialer, timeout: cfg.Timeout, logger: logger},
		cache:  memo,
		store:  cfg.Store,
		logger: logger,

		retryInitial: 500 * time.Millisecond,
		chunkDelay:   100 * time.Millisecond,
	}, nil
}

// Synthesize converts text to speech. voiceOrLanguage is either a voice
// identifier ("en-US-GuyNeural") or a language tag ("en-US", resolved to
// that language's default voice). Options may override the voice and the
// prosody deltas.
//
// With useCache true, identical requests are served from the cache and
// concurrent identical requests coalesce into a single remote call. With
// useCache false both cache read and write are bypassed.
//
// Empty text (or text with no speakable characters) is rejected with
// InvalidOptionError before any network activity.
func (c *Client) Synthesize(ctx context.Context, text, voiceOrLanguage string, opts Options, useCache bool) (*Audio, error) {
	req, err := c.buildRequest(text, voiceOrLanguage, opts)
	if err != nil {
		return nil, err
	}

	if !useCache {
		return c.run(ctx, req)
	}

	fp := req.fingerprint()
	if audio, ok := c.cache.Get(fp); ok {
		return audio, nil
	}

	return c.cache.Do(ctx, fp, func() (*Audio, error) {
		// A finished flight may have populated the cache while we queued.
		if audio, ok := c.cache.Get(fp); ok {
			return audio, nil
		}
		if c.store != nil {
			audio, err := c.store.Load(ctx, fp)
			if err != nil {
				c.logger.Printf("edgetts: cache store load failed: %v", err)
			} else if audio != nil {
				c.cache.Add(fp, audio)
				return audio, nil
			}
		}
		audio, err := c.run(ctx, req)
		if err != nil {
			return nil, err
		}
		c.cache.Add(fp, audio)
		if c.store != nil {
			if err := c.store.Save(ctx, fp, audio); err != nil {
				c.logger.Printf("edgetts: cache store save failed: %v", err)
			}
		}
		return audio, nil
	})
}

// WarmUp issues a tiny throwaway synthesis to prime DNS, TLS and connection
// state so the first real request does not pay the cold-start cost. The
// cache is bypassed.
func (c *Client) WarmUp(ctx context.Context) error {
	_, err := c.Synthesize(ctx, "init", c.cfg.DefaultVoice, Options{}, false)
	return err
}

// buildRequest validates and canonicalizes one call into an immutable
// request. All failures here are local; no network is touched.
func (c *Client) buildRequest(text, voiceOrLanguage string, opts Options) (request, error) {
	if len(opts.Extra) > 0 {
		names := make([]string, 0, len(opts.Extra))
		for name := range opts.Extra {
			names = append(names, name)
		}
		sort.Strings(names)
		name := names[0]
		reason := "unrecognized option"
		if legacyOptions[name] {
			reason = "option was removed from this service"
		}
		return request{}, &InvalidOptionError{Option: name, Value: opts.Extra[name], Reason: reason}
	}

	cleaned := strings.TrimSpace(cleanText(text))
	if cleaned == "" {
		return request{}, &InvalidOptionError{Option: "text", Value: text, Reason: "text must be non-empty"}
	}

	rate, err := normalizeProsody("rate", opts.Rate, DefaultRate)
	if err != nil {
		return request{}, err
	}
	volume, err := normalizeProsody("volume", opts.Volume, DefaultVolume)
	if err != nil {
		return request{}, err
	}
	pitch, err := normalizeProsody("pitch", opts.Pitch, DefaultPitch)
	if err != nil {
		return request{}, err
	}

	voice, err := c.resolveVoice(voiceOrLanguage, opts)
	if err != nil {
		return request{}, err
	}

	return request{Text: cleaned, Voice: voice, Rate: rate, Volume: volume, Pitch: pitch}, nil
}

// resolveVoice picks the concrete voice identifier. An explicit unknown
// voice falls back to the configured default unless strict mode is on; a
// voiceOrLanguage value that is neither a voice nor a known language tag is
// an UnknownVoiceError.
func (c *Client) resolveVoice(voiceOrLanguage string, opts Options) (string, error) {
	strict := opts.StrictVoices || c.cfg.StrictVoices

	if opts.Voice != "" {
		if KnownVoice(opts.Voice) {
			return opts.Voice, nil
		}
		if strict {
			return "", &UnknownVoiceError{Query: opts.Voice}
		}
		c.logger.Printf("edgetts: unknown voice %q, falling back to %s", opts.Voice, c.cfg.DefaultVoice)
		return c.cfg.DefaultVoice, nil
	}

	if KnownVoice(voiceOrLanguage) {
		return voiceOrLanguage, nil
	}
	if voice, ok := DefaultVoiceFor(voiceOrLanguage); ok {
		return voice, nil
	}
	return "", &UnknownVoiceError{Query: voiceOrLanguage}
}

// run drives the pipeline for one validated request: sentence chunking,
// per-chunk synthesis with retries, reassembly in order.
func (c *Client) run(ctx context.Context, req request) (*Audio, error) {
	chunks := splitSentences(req.Text)
	if len(chunks) == 0 {
		return nil, &InvalidOptionError{Option: "text", Value: req.Text, Reason: "text has no speakable characters"}
	}

	var buf bytes.Buffer
	for i, chunk := range chunks {
		if i > 0 {
			// Politeness pause between turns; the service throttles
			// back-to-back requests on one client.
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.chunkDelay):
			}
		}

		data, err := c.synthesizeChunk(ctx, req, chunk)
		if err != nil {
			var empty *EmptyResultError
			if errors.As(err, &empty) && len(chunks) > 1 {
				c.logger.Printf("edgetts: chunk %d/%d produced no audio, skipping", i+1, len(chunks))
				continue
			}
			return nil, err
		}
		buf.Write(data)
	}

	if buf.Len() == 0 {
		return nil, &EmptyResultError{Voice: req.Voice}
	}
	return &Audio{Data: buf.Bytes(), MediaType: mediaTypeMP3}, nil
}

// synthesizeChunk runs one chunk through the exchange with the retry
// policy: transient failures get up to MaxRetries extra attempts with
// exponential backoff, each on a fresh session.
func (c *Client) synthesizeChunk(ctx context.Context, req request, chunk string) ([]byte, error) {
	ssml := buildSSML(chunk, req.Voice, req.Rate, req.Volume, req.Pitch)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInitial
	bo.MaxInterval = 4 * time.Second
	bo.MaxElapsedTime = 0 // bounded by attempt count, not wall clock
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.maxRetries())), ctx)

	var out []byte
	op := func() error {
		data, err := c.attempt(ctx, req.Voice, ssml)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			var limited *RateLimitedError
			if errors.As(err, &limited) && limited.RetryAfter > 0 {
				c.waitHint(ctx, limited.RetryAfter)
			}
			c.logger.Printf("edgetts: attempt failed, will retry: %v", err)
			return err
		}
		out = data
		return nil
	}
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return out, nil
}

// attempt performs one full exchange on a fresh session. Sessions are
// single-use and are never reused after a transport failure.
func (c *Client) attempt(ctx context.Context, voice, ssml string) ([]byte, error) {
	sess := newSession(c.cfg.Endpoint, time.Now())
	stream, err := c.x.exchange(ctx, sess, newConnectionID(), ssml)
	if err != nil {
		return nil, err
	}
	defer stream.Close()
	return collectAudio(ctx, stream, voice)
}

// collectAudio reassembles the binary frames of one exchange strictly in
// arrival order. A failure discards any partially reassembled buffer; the
// retry policy owns recovery.
func collectAudio(ctx context.Context, stream frameStream, voice string) ([]byte, error) {
	var buf bytes.Buffer
	sawAudio := false
	for {
		select {
		case <-ctx.Done():
			_ = stream.Close()
			return nil, ctx.Err()
		case err := <-stream.Errs():
			return nil, err
		case frame, ok := <-stream.Frames():
			if !ok {
				if !sawAudio {
					return nil, &EmptyResultError{Voice: voice}
				}
				return buf.Bytes(), nil
			}
			if frame.IsAudio() {
				sawAudio = true
				buf.Write(frame.Audio)
			}
		}
	}
}

func (c *Client) maxRetries() int {
	if c.cfg.MaxRetries < 0 {
		return 0
	}
	return c.cfg.MaxRetries
}

// waitHint honors a Retry-After hint before the regular backoff kicks in.
func (c *Client) waitHint(ctx context.Context, d time.Duration) {
	const maxHint = 30 * time.Second
	if d > maxHint {
		d = maxHint
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// retryable reports whether an error class may be retried: negotiation
// failures, throttling and mid-stream transport faults. Validation errors
// and empty results are surfaced immediately.
func retryable(err error) bool {
	var negotiation *NegotiationError
	var limited *RateLimitedError
	var transport *TransportError
	return errors.As(err, &negotiation) || errors.As(err, &limited) || errors.As(err, &transport)
}
