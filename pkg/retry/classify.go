// Package retry classifies errors raised by the fetch layer and marketplace
// backends, then drives a retry policy tailored to each class. The engine
// never imports a concrete HTTP client — it is handed an operation closure
// and a sleep function, so tests can run it without real delays.
package retry

import "strings"

// Class is the outcome of classifying an error string.
type Class string

// Recognized error classes, in descending priority order when a message
// matches more than one pattern set.
const (
	ClassConfig    Class = "config"
	ClassSession   Class = "session"
	ClassPermanent Class = "permanent"
	ClassTransient Class = "transient"
)

// configPatterns indicate a misconfiguration the operator must fix; never
// worth retrying.
var configPatterns = []string{
	"api key",
	"credentials",
	"not configured",
	"missing configuration",
	"invalid configuration",
	"unauthorized client",
}

// sessionPatterns indicate the caller's session/auth state needs refreshing
// once; worth exactly one retry after an on-session-error hook runs.
var sessionPatterns = []string{
	"captcha",
	"login required",
	"401",
	"bot detection",
	"robot",
	"access denied",
	"session expired",
	"verify you are human",
}

// permanentPatterns indicate the request can never succeed as issued.
var permanentPatterns = []string{
	"404",
	"not found",
	"out of stock",
	"no longer available",
	"410",
	"gone",
	"discontinued",
}

// transientPatterns indicate a retryable, likely-temporary failure. This is
// also the default classification for unrecognized errors, since it is the
// safe choice for idempotent GETs.
var transientPatterns = []string{
	"timeout",
	"503",
	"502",
	"504",
	"429",
	"connection reset",
	"connection refused",
	"temporary failure",
	"eof",
	"i/o timeout",
}

// Classify maps an error to a Class by lowercased keyword match, checking
// pattern sets in priority order config > session > permanent > transient
// so that e.g. "API key timeout" classifies as config rather than
// transient, and "CAPTCHA not found" as session rather than permanent.
func Classify(err error) Class {
	if err == nil {
		return ClassTransient
	}
	return ClassifyMessage(err.Error())
}

// ClassifyMessage classifies a raw message string (useful when the caller
// only has response text, not a Go error).
func ClassifyMessage(msg string) Class {
	lower := strings.ToLower(msg)

	if matchesAny(lower, configPatterns) {
		return ClassConfig
	}
	if matchesAny(lower, sessionPatterns) {
		return ClassSession
	}
	if matchesAny(lower, permanentPatterns) {
		return ClassPermanent
	}
	if matchesAny(lower, transientPatterns) {
		return ClassTransient
	}
	return ClassTransient
}

func matchesAny(haystack string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(haystack, p) {
			return true
		}
	}
	return false
}
