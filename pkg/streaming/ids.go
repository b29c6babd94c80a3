package streaming

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedEventID is returned when an event ID does not carry a
// parseable embedded sequence number. Callers treat it as "resume from the
// beginning" with a logged warning rather than failing the stream.
var ErrMalformedEventID = errors.New("malformed event id")

// MintEventID builds an event ID in the {timestamp_ms}_{seq:04d}_{random8hex}
// format. The fixed-width seq keeps lexicographic and chronological order
// aligned within a millisecond; the random suffix guards against collisions
// across processes.
func MintEventID(seq int64) string {
	return fmt.Sprintf("%d_%04d_%s", time.Now().UnixMilli(), seq, randomHex8())
}

// ParseEventSeq extracts the embedded sequence number from an event ID.
// This is the resume primitive: a watcher presenting this ID expects only
// events with a strictly greater seq.
func ParseEventSeq(id string) (int64, error) {
	parts := strings.Split(id, "_")
	if len(parts) < 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedEventID, id)
	}
	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedEventID, id)
	}
	return seq, nil
}

func randomHex8() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
