package scores

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		inScore   float64
		wantName  string
		wantScore int64
		wantErr   bool
	}{
		{"trims and floors", "  Alice  ", 12.7, "Alice", 12, false},
		{"negative clamps to zero", "Bob", -5, "Bob", 0, false},
		{"negative fraction clamps to zero", "Bob", -0.5, "Bob", 0, false},
		{"truncates long names", strings.Repeat("x", 30), 1, strings.Repeat("x", 20), 1, false},
		{"counts characters not bytes", strings.Repeat("é", 25), 1, strings.Repeat("é", 20), 1, false},
		{"caps huge scores", "Max", 1e300, "Max", MaxScore, false},
		{"empty name", "", 10, "", 0, true},
		{"blank name", "   \t ", 10, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, score, err := Normalize(tt.inName, tt.inScore)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestDecodeSubmission(t *testing.T) {
	tests := []struct {
		body      string
		wantName  string
		wantScore float64
		wantErr   bool
	}{
		{`{"name":"Alice","score":12.7}`, "Alice", 12.7, false},
		{`{"name":"  Bob ","score":-3}`, "  Bob ", -3, false},
		{`{"score":10,"name":"Eve","extra":true}`, "Eve", 10, false},
		{`{"name":"Alice","score":"12"}`, "", 0, true},
		{`{"name":42,"score":12}`, "", 0, true},
		{`{"name":null,"score":12}`, "", 0, true},
		{`{"name":"Alice","score":null}`, "", 0, true},
		{`{"name":"Alice"}`, "", 0, true},
		{`{"score":5}`, "", 0, true},
		{`[]`, "", 0, true},
		{`not json`, "", 0, true},
		{``, "", 0, true},
	}

	for _, tt := range tests {
		name, score, err := DecodeSubmission([]byte(tt.body))
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPayload, "body %s", tt.body)
			continue
		}
		require.NoError(t, err, "body %s", tt.body)
		assert.Equal(t, tt.wantName, name)
		assert.Equal(t, tt.wantScore, score)
	}
}

func TestTop(t *testing.T) {
	records := []Record{
		{Name: "a", Score: 10, At: 1},
		{Name: "b", Score: 30, At: 2},
		{Name: "c", Score: 10, At: 3},
		{Name: "d", Score: 20, At: 4},
	}

	top := Top(records, 3)

	require.Len(t, top, 3)
	assert.Equal(t, []string{"b", "d", "a"}, names(top))
	assert.Equal(t, "a", records[0].Name, "input must not be reordered")

	assert.Equal(t, []string{"b", "d", "a", "c"}, names(Top(records, 10)))
}

func TestTopEmpty(t *testing.T) {
	top := Top(nil, DefaultLimit)

	assert.NotNil(t, top)
	assert.Empty(t, top)
}

func TestTopCapsAtLimit(t *testing.T) {
	records := make([]Record, 25)
	for i := range records {
		records[i] = Record{Name: "p", Score: int64(i)}
	}

	top := Top(records, DefaultLimit)

	require.Len(t, top, DefaultLimit)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Score, top[i].Score)
	}
	assert.Equal(t, int64(24), top[0].Score)
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}
