package logkit

import "strconv"

// Level is a severity rank in the level table.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelVerbose
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// monLevelName is the level name carried by monitoring records.
const monLevelName = "mon"

// LevelTable is the ordered list of level names; a name's rank is its index.
type LevelTable struct {
	names []string
	ranks map[string]int
}

// Levels is the process-wide level table.
var Levels = newLevelTable("trace", "debug", "verbose", "info", "warning", "error", "fatal")

func newLevelTable(names ...string) *LevelTable {
	t := &LevelTable{
		names: names,
		ranks: make(map[string]int, len(names)),
	}
	for i, name := range names {
		t.ranks[name] = i
	}
	return t
}

// Len returns the number of levels.
func (t *LevelTable) Len() int { return len(t.names) }

// Name returns the name for rank, or "" when rank is out of range.
func (t *LevelTable) Name(rank int) string {
	if rank < 0 || rank >= len(t.names) {
		return emptyString
	}
	return t.names[rank]
}

// Names returns a copy of the level names in rank order.
func (t *LevelTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Resolve normalizes a level given as a Level, any integer kind or a level
// name into its rank and name. ok is false for unknown names, out-of-range
// ranks and every other type.
func (t *LevelTable) Resolve(v any) (rank int, name string, ok bool) {
	switch lv := v.(type) {
	case string:
		rank, ok = t.ranks[lv]
		if !ok {
			return 0, emptyString, false
		}
		return rank, lv, true
	case Level:
		return t.byRank(int64(lv))
	case int:
		return t.byRank(int64(lv))
	case int8:
		return t.byRank(int64(lv))
	case int16:
		return t.byRank(int64(lv))
	case int32:
		return t.byRank(int64(lv))
	case int64:
		return t.byRank(lv)
	case uint:
		return t.byRank(int64(lv))
	case uint8:
		return t.byRank(int64(lv))
	case uint16:
		return t.byRank(int64(lv))
	case uint32:
		return t.byRank(int64(lv))
	default:
		return 0, emptyString, false
	}
}

func (t *LevelTable) byRank(r int64) (int, string, bool) {
	if r < 0 || r >= int64(len(t.names)) {
		return 0, emptyString, false
	}
	return int(r), t.names[r], true
}

// String returns the level name, or the rank in digits when it is outside
// the table.
func (l Level) String() string {
	if name := Levels.Name(int(l)); name != emptyString {
		return name
	}
	return strconv.Itoa(int(l))
}
