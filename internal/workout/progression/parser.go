package progression

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrNoValidJSON means the advisor's text contained no parseable JSON
// object. Callers recover via the fallback recommendation, never by
// retrying.
var ErrNoValidJSON = errors.New("no valid json in advisor response")

// ParseRecommendations pulls the per-exercise recommendation map out of the
// advisor's freeform text. The text is expected to contain exactly one JSON
// object, possibly surrounded by prose, so everything outside the first "{"
// and the last "}" is ignored. Entries whose value is not an object are
// dropped with a warning instead of failing the whole response.
func ParseRecommendations(text string) (map[string]Recommendation, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return nil, fmt.Errorf("%w: no object found", ErrNoValidJSON)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoValidJSON, err)
	}

	// some models wrap the map in a "recommendations" envelope
	if inner, ok := raw["recommendations"]; ok && len(raw) == 1 {
		var unwrapped map[string]json.RawMessage
		if err := json.Unmarshal(inner, &unwrapped); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoValidJSON, err)
		}
		raw = unwrapped
	}

	recommendations := make(map[string]Recommendation, len(raw))
	for exercise, value := range raw {
		if !bytes.HasPrefix(bytes.TrimSpace(value), []byte("{")) {
			log.Warnf("dropping recommendation for %q, value is not an object", exercise)
			continue
		}
		var rec Recommendation
		if err := json.Unmarshal(value, &rec); err != nil {
			log.Warnf("dropping malformed recommendation for %q: %s", exercise, err)
			continue
		}
		recommendations[exercise] = rec
	}

	return recommendations, nil
}
