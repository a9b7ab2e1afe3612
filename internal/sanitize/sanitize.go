// Package sanitize coerces near-JSON model output into parseable JSON by
// stripping unescaped double quotes that the model left inside "text" and
// "meaning" field values.
//
// This is not a general JSON repair routine. It is a narrow heuristic tuned
// to one completion model's typical failure mode and relies on '@' as a
// sentinel character: behavior is undefined when the input itself contains
// '@'. The sentinel was chosen because it is statistically absent from song
// lyrics and their explanations.
package sanitize

import (
	"regexp"
	"strings"
)

const sentinel = "@"

// The mark passes, in application order. Each pattern swaps quotes that must
// survive for the sentinel; everything still quoted afterwards is stray.
var (
	// "text": " / "meaning": " key-opening sequences. Whitespace after the
	// colon is captured so clean input round-trips unchanged.
	fieldOpenRe = regexp.MustCompile(`"(text|meaning)":(\s*)"`)

	// Integer-literal object keys like "1".
	intKeyRe = regexp.MustCompile(`"([0-9]+)"`)

	// Quoted runs whose content starts with the literal field names, left
	// over when the model repeats a key inside a value.
	fieldEchoRe = regexp.MustCompile(`"((?:text|meaning)[^"]*)"`)

	// Value-closing quotes: a quote directly before a comma plus
	// whitespace, a closing brace, or a line terminator is presumed to
	// legitimately end a value. Quotes inside a value followed by ", "
	// are misclassified by this rule; that fragility is inherited from
	// the upstream rule set and deliberately not second-guessed.
	valueCloseRe = regexp.MustCompile(`"(,\s|}|\n)`)
)

// CleanQuotes rewrites text so that stray, unescaped double quotes embedded
// in "text"/"meaning" values are removed while structurally required quotes
// are preserved. The passes must run in this exact order: each step's output
// feeds the next.
func CleanQuotes(text string) string {
	step1 := fieldOpenRe.ReplaceAllString(text, sentinel+"${1}"+sentinel+":${2}"+sentinel)
	step2 := intKeyRe.ReplaceAllString(step1, sentinel+"${1}"+sentinel)
	step3 := fieldEchoRe.ReplaceAllString(step2, sentinel+"${1}"+sentinel)
	step4 := valueCloseRe.ReplaceAllString(step3, sentinel+"${1}")

	// Everything still quoted is embedded content; drop it.
	step5 := strings.ReplaceAll(step4, `"`, "")

	// Restore the marked quotes.
	return strings.ReplaceAll(step5, sentinel, `"`)
}
