// Package scores holds the leaderboard: score records, submission
// validation, the append-only JSON file store and an HTTP client for
// the score API.
package scores

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameLen is the longest stored name, in characters.
	MaxNameLen = 20
	// DefaultLimit is the size of the public leaderboard.
	DefaultLimit = 10
	// MaxScore is the largest score kept. Larger submissions are capped
	// so values survive a round trip through JSON numbers.
	MaxScore = 1 << 53
)

// ErrInvalidPayload is returned for submissions without a usable name
// or numeric score.
var ErrInvalidPayload = errors.New("invalid payload")

// Record is one leaderboard entry. At is the submission time in Unix
// milliseconds.
type Record struct {
	Name  string `json:"name"`
	Score int64  `json:"score"`
	At    int64  `json:"at"`
}

// Normalize validates a submission and returns the stored name and score.
// The name is trimmed and cut to MaxNameLen characters; the score is
// floored and clamped to [0, MaxScore].
func Normalize(name string, score float64) (string, int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, ErrInvalidPayload
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "", 0, ErrInvalidPayload
	}

	if utf8.RuneCountInString(name) > MaxNameLen {
		name = string([]rune(name)[:MaxNameLen])
	}

	floored := math.Floor(score)
	switch {
	case floored < 0:
		floored = 0
	case floored > MaxScore:
		floored = MaxScore
	}
	return name, int64(floored), nil
}

// submission mirrors the POST body. Fields stay raw so their JSON types
// can be checked before decoding.
type submission struct {
	Name  json.RawMessage `json:"name"`
	Score json.RawMessage `json:"score"`
}

// DecodeSubmission parses a POST body. The name must be a JSON string and
// the score a JSON number; anything else is ErrInvalidPayload.
func DecodeSubmission(body []byte) (string, float64, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return "", 0, ErrInvalidPayload
	}

	var sub submission
	if err := json.Unmarshal(body, &sub); err != nil {
		return "", 0, ErrInvalidPayload
	}

	if !isJSONString(sub.Name) || !isJSONNumber(sub.Score) {
		return "", 0, ErrInvalidPayload
	}

	var name string
	if err := json.Unmarshal(sub.Name, &name); err != nil {
		return "", 0, ErrInvalidPayload
	}
	var score float64
	if err := json.Unmarshal(sub.Score, &score); err != nil {
		return "", 0, ErrInvalidPayload
	}
	return name, score, nil
}

func isJSONString(raw json.RawMessage) bool {
	return len(raw) > 0 && raw[0] == '"'
}

func isJSONNumber(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// Top returns at most n records ordered by score, highest first. Equal
// scores keep their original order. The input is not modified and the
// result is never nil.
func Top(records []Record, n int) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
