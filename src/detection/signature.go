// backend/src/detection/signature.go
package detection

import (
	"strings"
	"unicode"
)

// UnknownSignature is the signature assigned to descriptions that carry no
// usable merchant text (empty or fully numeric input).
const UnknownSignature = "unknown"

const (
	// A trailing run of at least this many digits is treated as a
	// reference/transaction number and stripped.
	trailingDigitRunMin = 4

	// Interior digit tokens are stripped only once this many alphabetic
	// tokens remain, so short merchant names like "ATM 123" keep their
	// distinguishing digits.
	minAlphaTokensForDigitStrip = 3
)

// referenceMarkers are tokens that introduce a reference number. When the
// number itself is stripped from the tail, the marker goes with it.
var referenceMarkers = map[string]struct{}{
	"ref":          {},
	"reference":    {},
	"no":           {},
	"num":          {},
	"number":       {},
	"id":           {},
	"txn":          {},
	"trans":        {},
	"conf":         {},
	"confirmation": {},
	"auth":         {},
}

// Normalize canonicalizes a raw transaction description into a merchant
// signature: lower-cased, trailing reference numbers stripped, punctuation
// replaced by spaces, whitespace collapsed. It never fails; input with no
// usable text normalizes to UnknownSignature. Deterministic and independent
// of any other transaction.
func Normalize(description string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(description) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	tokens = stripReferenceTail(tokens)

	if countAlphaTokens(tokens) >= minAlphaTokensForDigitStrip {
		kept := tokens[:0]
		for _, tok := range tokens {
			if !isDigitRun(tok) {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}

	if countAlphaTokens(tokens) == 0 {
		return UnknownSignature
	}
	return strings.Join(tokens, " ")
}

// stripReferenceTail removes trailing reference numbers (digit runs of
// trailingDigitRunMin or more) together with the marker token that
// introduced them, e.g. "overdraft fee ref 4471829" -> "overdraft fee".
func stripReferenceTail(tokens []string) []string {
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if !isDigitRun(last) || len(last) < trailingDigitRunMin {
			break
		}
		tokens = tokens[:len(tokens)-1]
		if len(tokens) > 0 {
			if _, ok := referenceMarkers[tokens[len(tokens)-1]]; ok {
				tokens = tokens[:len(tokens)-1]
			}
		}
	}
	return tokens
}

func isDigitRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func countAlphaTokens(tokens []string) int {
	count := 0
	for _, tok := range tokens {
		for _, r := range tok {
			if unicode.IsLetter(r) {
				count++
				break
			}
		}
	}
	return count
}
