package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantTime time.Time
		wantKind Kind
		wantErr  error
	}{
		{
			name:     "valid start",
			line:     "2024-01-01, 09:00\tstart",
			wantTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
			wantKind: KindStart,
		},
		{
			name:     "valid stop",
			line:     "2024-12-31, 23:59\tstop",
			wantTime: time.Date(2024, 12, 31, 23, 59, 0, 0, time.Local),
			wantKind: KindStop,
		},
		{
			name:     "trailing newline tolerated",
			line:     "2024-01-01, 09:00\tstart\n",
			wantTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
			wantKind: KindStart,
		},
		{
			name:     "kind case-insensitive",
			line:     "2024-01-01, 09:00\tSTART",
			wantTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
			wantKind: KindStart,
		},
		{name: "missing tab", line: "2024-01-01, 09:00 start", wantErr: ErrRecordParse},
		{name: "too many fields", line: "2024-01-01, 09:00\tstart\textra", wantErr: ErrRecordParse},
		{name: "empty line", line: "", wantErr: ErrRecordParse},
		{name: "bad date", line: "2024-13-01, 09:00\tstart", wantErr: ErrRecordParse},
		{name: "seconds not allowed", line: "2024-01-01, 09:00:30\tstart", wantErr: ErrRecordParse},
		{name: "missing comma", line: "2024-01-01 09:00\tstart", wantErr: ErrRecordParse},
		{name: "unknown kind", line: "2024-01-01, 09:00\tresume", wantErr: ErrRecordParse},
		{name: "fields swapped", line: "start\t2024-01-01, 09:00", wantErr: ErrRecordParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseRecord(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, rec, "failed parse must not return a partial record")
				return
			}
			require.NoError(t, err)
			assert.True(t, rec.Time.Equal(tt.wantTime), "time %v != %v", rec.Time, tt.wantTime)
			assert.Equal(t, tt.wantKind, rec.Kind)
		})
	}
}

func TestRecordRoundTrip(t *testing.T) {
	records := []Record{
		{Time: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local), Kind: KindStart},
		{Time: time.Date(2024, 6, 15, 17, 30, 0, 0, time.Local), Kind: KindStop},
		{Time: time.Date(1999, 12, 31, 0, 1, 0, 0, time.Local), Kind: KindStart},
	}

	for _, rec := range records {
		parsed, err := ParseRecord(rec.String())
		require.NoError(t, err)
		assert.True(t, parsed.Time.Equal(rec.Time))
		assert.Equal(t, rec.Kind, parsed.Kind)
	}
}

func TestRecordString(t *testing.T) {
	rec := Record{Time: time.Date(2024, 3, 7, 8, 5, 0, 0, time.Local), Kind: KindStop}
	assert.Equal(t, "2024-03-07, 08:05\tstop", rec.String())
}

func TestDateKey(t *testing.T) {
	morning := Record{Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)}
	evening := Record{Time: time.Date(2024, 1, 2, 23, 59, 0, 0, time.Local)}
	nextDay := Record{Time: time.Date(2024, 1, 3, 0, 0, 0, 0, time.Local)}

	assert.Equal(t, 20240102, morning.DateKey())
	assert.Equal(t, morning.DateKey(), evening.DateKey())
	assert.Less(t, evening.DateKey(), nextDay.DateKey())
}
