package loop

import (
	"regexp"
	"sync"
)

// promisePadding matches the whitespace allowed around the phrase inside a
// promise tag. RE2's \s is ASCII only, so Unicode spaces and the BOM are added.
const promisePadding = `[\s\v\p{Z}\x{FEFF}]*`

// promisePatterns caches compiled patterns by phrase.
var promisePatterns sync.Map

// DetectPromise reports whether response contains <promise>phrase</promise>
// anywhere. Tag names are case-insensitive and whitespace around the phrase
// inside the tag is ignored; the phrase itself must match exactly.
func DetectPromise(response, phrase string) bool {
	if phrase == "" {
		return false
	}
	return promisePattern(phrase).MatchString(response)
}

func promisePattern(phrase string) *regexp.Regexp {
	if re, ok := promisePatterns.Load(phrase); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`<(?i:promise)>` + promisePadding + regexp.QuoteMeta(phrase) + promisePadding + `</(?i:promise)>`)
	actual, _ := promisePatterns.LoadOrStore(phrase, re)
	return actual.(*regexp.Regexp)
}

// PromiseTag formats phrase the way a response must carry it.
func PromiseTag(phrase string) string {
	return "<promise>" + phrase + "</promise>"
}
