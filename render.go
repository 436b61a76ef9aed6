package logkit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Station-Manager/logkit/internal/ansi"
	"github.com/Station-Manager/logkit/internal/format"
	json "github.com/goccy/go-json"
	"go.uber.org/atomic"
)

// StyleOptions control how RenderText lays out a line.
type StyleOptions struct {
	Color  bool
	Indent bool
	// IncludeIDMeta adds the host(pid) identity tag.
	IncludeIDMeta bool
	// IncludeCommonMeta adds level, time, domain and code tags.
	IncludeCommonMeta bool
	// IncludeUserMeta adds the record's Meta as JSON.
	IncludeUserMeta bool
	TimeFormat      TimeFormat
}

// DefaultStyle is the style a Logger hands to new transports.
var DefaultStyle = StyleOptions{
	Indent:            true,
	IncludeCommonMeta: true,
	IncludeUserMeta:   true,
	TimeFormat:        TimeOnly,
}

type styleKey struct {
	color, indent, idMeta, commonMeta, userMeta bool
	timeFormat                                  uint64
}

// key returns the style's cache signature. ok is false when the time
// format has no identity and the line must not be shared.
func (o StyleOptions) key() (k styleKey, ok bool) {
	tf := o.timeFormat()
	if tf.id == 0 && o.IncludeCommonMeta {
		return styleKey{}, false
	}
	return styleKey{
		color:      o.Color,
		indent:     o.Indent,
		idMeta:     o.IncludeIDMeta,
		commonMeta: o.IncludeCommonMeta,
		userMeta:   o.IncludeUserMeta,
		timeFormat: tf.id,
	}, true
}

// timeFormat returns the effective time format; a nil Format means TimeOnly.
func (o StyleOptions) timeFormat() TimeFormat {
	if o.TimeFormat.Format == nil {
		return TimeOnly
	}
	return o.TimeFormat
}

// renders counts cache misses; tests use it to observe reuse.
var renders atomic.Int64

type levelTag struct {
	text, color string
}

var levelTags = map[string]levelTag{
	"trace":      {"[TRACE]", ansi.BrightBlack},
	"debug":      {"[DEBUG]", ansi.Dim},
	"verbose":    {"[VERB.]", ansi.Blue},
	"info":       {"[INFO.]", ansi.BrightWhite},
	"warning":    {"[WARN.]", ansi.BrightYellow},
	"error":      {"[ERROR]", ansi.Red},
	"fatal":      {"[FATAL]", ansi.BrightRed + ansi.Bold},
	monLevelName: {"[ MON ]", ansi.Cyan},
}

// RenderText renders rec as one text line. The result is cached on the
// record per style signature, so transports sharing a style render once.
func RenderText(opts StyleOptions, rec *Record) string {
	render := func() string {
		renders.Inc()
		return renderLine(opts, rec)
	}
	key, ok := opts.key()
	if !ok {
		return render()
	}
	return rec.cache.getOrRender(key, render)
}

func renderLine(opts StyleOptions, rec *Record) string {
	var b strings.Builder
	c := opts.Color

	if opts.IncludeCommonMeta {
		b.WriteString(levelString(c, rec.LevelName))
		b.WriteByte(' ')

		b.WriteString(ansi.Wrap(c, ansi.BrightCyan, opts.timeFormat().Format(rec.Time)))
		b.WriteByte(' ')
	}

	if opts.IncludeIDMeta {
		if c {
			b.WriteString(ansi.Yellow + rec.Hostname + ansi.BrightBlack + "(" + strconv.Itoa(rec.PID) + ")" + ansi.Reset)
		} else {
			b.WriteString(rec.Hostname + "(" + strconv.Itoa(rec.PID) + ")")
		}
		b.WriteByte(' ')
	}

	if opts.IncludeCommonMeta {
		if rec.Domain != emptyString {
			b.WriteString(ansi.Wrap(c, ansi.Magenta, "<"+rec.Domain+">"))
			b.WriteByte(' ')
		}
		if rec.Code != nil {
			b.WriteString(ansi.Wrap(c, ansi.Green, "#"+fmt.Sprint(rec.Code)))
			b.WriteByte(' ')
		}
	}

	if opts.IncludeUserMeta && rec.Meta != nil {
		if meta := metaString(rec.Meta); meta != emptyString {
			b.WriteString(ansi.Wrap(c, ansi.Blue, meta))
			b.WriteByte(' ')
		}
	}

	if opts.IncludeIDMeta || opts.IncludeCommonMeta || opts.IncludeUserMeta {
		b.WriteString(ansi.Wrap(c, ansi.BrightBlack, "--"))
		b.WriteByte(' ')
	}

	body := MessageText(c, rec)
	if opts.Indent {
		body = strings.ReplaceAll(body, "\n", "\n    ")
	}
	b.WriteString(body)

	if rec.Stack != nil {
		b.WriteByte('\n')
		b.WriteString(format.InspectStack(c, rec.Stack))
	}

	return b.String()
}

func levelString(color bool, name string) string {
	tag, ok := levelTags[name]
	if !ok {
		tag = levelTag{text: "[" + (name + ".    ")[:5] + "]", color: ansi.Dim}
	}
	return ansi.Wrap(color, tag.color, tag.text)
}

// metaString serializes meta as JSON, or returns "" when it serializes to an
// empty object or cannot be serialized.
func metaString(meta map[string]any) string {
	data, err := json.Marshal(meta)
	if err != nil {
		return emptyString
	}
	if s := string(data); s != "{}" {
		return s
	}
	return emptyString
}

// MessageText renders only the message body of rec: monitoring pairs,
// deferred templates, errors and raw values each through their own path;
// strings pass through unchanged.
func MessageText(color bool, rec *Record) string {
	if rec.Mon != nil {
		return monString(color, rec.Mon)
	}

	switch m := rec.Message.(type) {
	case string:
		return m
	case FormatArgs:
		return format.FormatColor(color, m.Template, m.Args...)
	case *FormatArgs:
		if m == nil {
			return format.Inspect(color, nil)
		}
		return format.FormatColor(color, m.Template, m.Args...)
	case error:
		return format.InspectError(color, m)
	default:
		return format.Inspect(color, m)
	}
}

func monString(color bool, mon map[string]any) string {
	keys := make([]string, 0, len(mon))
	for k := range mon {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('\n')
	for _, k := range keys {
		b.WriteString(ansi.Wrap(color, ansi.Green, k))
		b.WriteString(": ")
		b.WriteString(ansi.Wrap(color, ansi.Cyan, fmt.Sprint(mon[k])))
		b.WriteByte('\n')
	}
	return b.String()
}
