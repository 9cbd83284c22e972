package edgetts

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	trustedClientToken = "6A5AA1D4EAFF4E9FB37E23D68491D6F4"
	defaultEndpoint    = "wss://speech.platform.bing.com/consumer/speech/synthesize/readaloud/edge/v1"

	secGECVersion = "1-130.0.2849.68"

	// Seconds between the Windows file-time epoch (1601) and the Unix epoch.
	winEpochOffset = 11644473600

	// The security token is derived from the clock rounded down to this
	// window; the service rejects tokens from a closed window.
	tokenWindow = 5 * time.Minute
)

// session is one negotiated connection to the synthesis service: a freshly
// generated connection identifier, the endpoint URL embedding the
// clock-derived security token, and the expiry of that token's window.
// Sessions are single-use and owned by exactly one attempt.
type session struct {
	endpoint     string
	ConnectionID string
	URL          string
	Expires      time.Time
}

// newSession negotiates a session against the given endpoint. The handshake
// is purely computational: the service authorizes connections by a SHA-256
// token over the rounded clock, so no extra round-trip happens here. Network
// rejections surface at dial time.
func newSession(endpoint string, now time.Time) session {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	windowStart := now.UTC().Truncate(tokenWindow)
	id := newConnectionID()
	url := fmt.Sprintf("%s?TrustedClientToken=%s&Sec-MS-GEC=%s&Sec-MS-GEC-Version=%s&ConnectionId=%s",
		endpoint, trustedClientToken, securityToken(windowStart), secGECVersion, id)
	return session{
		endpoint:     endpoint,
		ConnectionID: id,
		URL:          url,
		Expires:      windowStart.Add(tokenWindow),
	}
}

// expired reports whether the session's token window has closed. A session
// that sat in a retry queue past its window must be renegotiated before use.
func (s session) expired(now time.Time) bool {
	return !now.UTC().Before(s.Expires)
}

// securityToken computes the Sec-MS-GEC value for a token window: the
// uppercase SHA-256 hex of the window start in Windows file-time ticks
// concatenated with the trusted client token.
func securityToken(windowStart time.Time) string {
	ticks := (windowStart.Unix() + winEpochOffset) * 10_000_000
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d%s", ticks, trustedClientToken)))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// newConnectionID returns a 32 character hex identifier, one per session or
// request frame.
func newConnectionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
