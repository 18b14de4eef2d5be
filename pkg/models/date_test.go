package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateTruncatesToUTCMidnight(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	// 23:30 EST on Jan 5 is already Jan 6 in UTC.
	d := NewDate(time.Date(2026, 1, 5, 23, 30, 0, 0, est))

	assert.Equal(t, "2026-01-06", d.String())
	assert.Equal(t, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestDateAddDays(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", d.AddDays(1).String())
	assert.Equal(t, "2026-02-27", d.AddDays(-1).String())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-08-28")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-28"`, string(b))

	var got Date
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, got.Equal(d))
}

func TestDateUnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"28/08/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-08-28", d.String())

	var fromText Date
	require.NoError(t, fromText.Scan("2026-08-28 00:00:00+00:00"))
	assert.True(t, fromText.Equal(d))

	var fromNull Date
	require.NoError(t, fromNull.Scan(nil))
	assert.True(t, fromNull.IsZero())
}
