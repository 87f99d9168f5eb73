package layout

import (
	"regexp"
	"strconv"
	"strings"
)

// field describes one named placeholder: its literal name, its fixed
// identity index (used in named-index mode), and the field width baked
// into the positional conversion.
type field struct {
	name  string
	index int
	width string
}

var fields = []field{
	{name: "timestamp", index: 0, width: ""},
	{name: "threadid", index: 1, width: "8"},
	{name: "loglevel", index: 2, width: "-7"},
	{name: "message", index: 3, width: ""},
	{name: "tag", index: 4, width: ""},
}

var fieldsByName = func() map[string]field {
	m := make(map[string]field, len(fields))
	for _, f := range fields {
		m[f.name] = f
	}
	return m
}()

var placeholderPattern = regexp.MustCompile(`\{(timestamp|threadid|loglevel|message|tag)\}`)

// alreadyTransformed reports whether s already looks like a positional
// format string, in which case Transform must leave it untouched.
func alreadyTransformed(s string) bool {
	return strings.Contains(s, "%s") || strings.Contains(s, "%d")
}

// Transform rewrites layout's named placeholders into a positional
// format string with the field widths timestamp:unpadded,
// threadid:8, loglevel:-7, message:unpadded, tag:unpadded.
//
// When useZeroBasedIncrementalIndexes is false, each placeholder uses
// its fixed identity index (timestamp=0, threadid=1, loglevel=2,
// message=3, tag=4) regardless of where it appears in layout. When
// true, indices are instead assigned 0, 1, 2… in the order each
// distinct placeholder first appears, so a caller can pass only the
// fields the layout actually uses, in that same order.
//
// If layout already contains "%s" or "%d" — it has already been
// transformed, or was never a named-placeholder template to begin with
// — Transform returns it unchanged.
func Transform(layoutStr string, useZeroBasedIncrementalIndexes bool) string {
	if alreadyTransformed(layoutStr) {
		return layoutStr
	}

	nextIndex := 0
	seen := make(map[string]int)

	return placeholderPattern.ReplaceAllStringFunc(layoutStr, func(match string) string {
		name := match[1 : len(match)-1]
		f := fieldsByName[name]

		index := f.index
		if useZeroBasedIncrementalIndexes {
			if i, ok := seen[name]; ok {
				index = i
			} else {
				index = nextIndex
				seen[name] = index
				nextIndex++
			}
		}

		return "%" + strconv.Itoa(index) + ":" + f.width + "s"
	})
}
