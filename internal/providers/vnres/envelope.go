package vnres

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEnvelope signals a response body that matched neither the strict
// JSONP wrapper nor the tolerant brace-scan fallback.
var ErrEnvelope = errors.New("vnres: malformed envelope")

// ErrFeedStatus signals a non-200 HTTP status from the feed host.
var ErrFeedStatus = errors.New("vnres: unexpected feed status")

var (
	schedulePattern = regexp.MustCompile(`(?s)matches_\d+\((.*)\)`)
	detailPattern   = regexp.MustCompile(`(?s)detail\((.*)\)`)
)

// extractEnvelope parses a feed response. The strict JSONP wrapper for the
// endpoint is tried first; if it is absent or its payload does not parse,
// the outermost {...} span is parsed instead, ignoring any surrounding
// noise. The envelope code is left for the caller to interpret: a non-200
// code means "no data", not a malformed response.
func extractEnvelope(text string, strict *regexp.Regexp) (envelope, error) {
	if m := strict.FindStringSubmatch(text); m != nil {
		var env envelope
		if err := json.Unmarshal([]byte(m[1]), &env); err == nil {
			return env, nil
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return envelope{}, fmt.Errorf("%w: no JSON object in response", ErrEnvelope)
	}

	var env envelope
	if err := json.Unmarshal([]byte(text[start:end+1]), &env); err != nil {
		return envelope{}, fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	return env, nil
}
