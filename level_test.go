package logkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelsResolve(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		wantRank int
		wantName string
		wantOK   bool
	}{
		{"name", "warning", 4, "warning", true},
		{"level", LevelFatal, 6, "fatal", true},
		{"int zero", 0, 0, "trace", true},
		{"int64", int64(3), 3, "info", true},
		{"uint8", uint8(5), 5, "error", true},
		{"unknown name", "notice", 0, "", false},
		{"wrong case", "INFO", 0, "", false},
		{"negative", -1, 0, "", false},
		{"too high", 7, 0, "", false},
		{"float", 3.0, 0, "", false},
		{"nil", nil, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, name, ok := Levels.Resolve(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRank, rank)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestLevelTable(t *testing.T) {
	assert.Equal(t, 7, Levels.Len())
	assert.Equal(t, []string{"trace", "debug", "verbose", "info", "warning", "error", "fatal"}, Levels.Names())
	assert.Equal(t, "verbose", Levels.Name(2))
	assert.Empty(t, Levels.Name(9))

	names := Levels.Names()
	names[0] = "mutated"
	assert.Equal(t, "trace", Levels.Name(0))

	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "12", Level(12).String())
}

func TestTimeFormats(t *testing.T) {
	ts := time.Date(2024, 12, 31, 23, 59, 58, 7e6, time.FixedZone("CET", 3600))

	tests := map[string]string{
		"dateTimeMs": "2024-12-31 22:59:58.007",
		"dateTime":   "2024-12-31 22:59:58",
		"timeMs":     "22:59:58.007",
		"time":       "22:59:58",
	}
	for name, want := range tests {
		tf, ok := TimeFormatByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, tf.Name)
		assert.Equal(t, want, tf.Format(ts), name)
	}

	_, ok := TimeFormatByName("iso")
	assert.False(t, ok)
}
