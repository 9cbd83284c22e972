package edgetts

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// Frame paths used by the synthesis stream.
const (
	pathTurnStart     = "turn.start"
	pathTurnEnd       = "turn.end"
	pathAudioMetadata = "audio.metadata"
	pathResponse      = "response"
	pathAudio         = "audio"
)

// Frame is one message in the synthesis stream: either control metadata
// (turn boundaries, word boundaries, completion signal) or raw audio bytes.
// Frames arrive ordered and are processed in arrival order.
type Frame struct {
	Path  string
	Meta  []byte // raw body of a metadata frame
	Audio []byte // payload of a binary frame, nil otherwise
}

// IsAudio reports whether the frame carries audio payload bytes.
func (f Frame) IsAudio() bool { return f.Path == pathAudio }

// parseTextFrame decodes a metadata message: "Key:Value" header lines,
// a blank line, then the body.
func parseTextFrame(msg []byte) (Frame, error) {
	head, body, found := strings.Cut(string(msg), "\r\n\r\n")
	if !found {
		return Frame{}, fmt.Errorf("metadata frame without header separator")
	}
	headers := parseHeaders(head)
	path, ok := headers["Path"]
	if !ok {
		return Frame{}, fmt.Errorf("metadata frame without Path header")
	}
	return Frame{Path: path, Meta: []byte(body)}, nil
}

// parseBinaryFrame decodes an audio message: a 2-byte big-endian header
// length, the headers, then the audio payload.
func parseBinaryFrame(msg []byte) (Frame, error) {
	if len(msg) < 2 {
		return Frame{}, fmt.Errorf("binary frame shorter than its length prefix")
	}
	headerLen := int(binary.BigEndian.Uint16(msg[:2]))
	if len(msg) < 2+headerLen {
		return Frame{}, fmt.Errorf("binary frame header length %d exceeds message size %d", headerLen, len(msg))
	}
	headers := parseHeaders(string(msg[2 : 2+headerLen]))
	if headers["Path"] != pathAudio {
		return Frame{}, fmt.Errorf("binary frame with unexpected path %q", headers["Path"])
	}
	return Frame{Path: pathAudio, Audio: msg[2+headerLen:]}, nil
}

func parseHeaders(head string) map[string]string {
	headers := make(map[string]string)
	for _, line := range strings.Split(head, "\r\n") {
		if k, v, ok := strings.Cut(line, ":"); ok {
			headers[k] = v
		}
	}
	return headers
}

// encodeTextFrame serializes an outbound metadata message. requestID may be
// empty for connection-scoped messages like speech.config.
func encodeTextFrame(path, requestID, contentType, body string, now time.Time) []byte {
	var b strings.Builder
	if requestID != "" {
		b.WriteString("X-RequestId:" + requestID + "\r\n")
	}
	b.WriteString("Content-Type:" + contentType + "\r\n")
	b.WriteString("X-Timestamp:" + frameTimestamp(now) + "\r\n")
	b.WriteString("Path:" + path + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// encodeBinaryAudioFrame serializes an audio message in the service's wire
// shape; production code only reads these, the test server writes them.
func encodeBinaryAudioFrame(requestID string, payload []byte) []byte {
	headers := "X-RequestId:" + requestID + "\r\nContent-Type:audio/mpeg\r\nPath:" + pathAudio + "\r\n"
	buf := make([]byte, 2, 2+len(headers)+len(payload))
	binary.BigEndian.PutUint16(buf, uint16(len(headers)))
	buf = append(buf, headers...)
	return append(buf, payload...)
}

// frameTimestamp renders the wall clock the way the service's own clients
// do; the service parses this format only.
func frameTimestamp(now time.Time) string {
	return now.UTC().Format("Mon Jan 02 2006 15:04:05 GMT+0000 (Coordinated Universal Time)")
}
