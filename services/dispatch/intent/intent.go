// Package intent classifies free-text driver replies into dispatch commands.
package intent

import (
	"strings"
	"unicode"
)

// Intent is the command a driver reply expresses
type Intent string

const (
	Accept   Intent = "ACCEPT"
	Decline  Intent = "DECLINE"
	Start    Intent = "START"
	Complete Intent = "COMPLETE"
	Unknown  Intent = "UNKNOWN"
)

type phraseSet struct {
	intent  Intent
	phrases []string
}

// Checked in order; the first set with a match wins, so a reply holding both an
// accept and a decline phrase is an ACCEPT.
var phraseSets = []phraseSet{
	{Accept, []string{"1", "yes", "y", "accept", "accepted", "ok", "okay", "confirm", "confirmed", "sure"}},
	{Decline, []string{"2", "no", "n", "decline", "declined", "reject", "cant", "cannot", "unavailable"}},
	{Start, []string{"start", "started", "starting", "on my way", "omw", "picked up", "pickup", "go"}},
	{Complete, []string{"done", "complete", "completed", "finished", "finish", "dropped off", "end"}},
}

// Parse returns the first intent whose phrase equals the normalized text or
// appears in it as a whole-word sequence. Anything else is Unknown.
func Parse(text string) Intent {
	words := strings.Fields(Normalize(text))
	if len(words) == 0 {
		return Unknown
	}

	for _, set := range phraseSets {
		for _, phrase := range set.phrases {
			if containsSequence(words, strings.Fields(phrase)) {
				return set.intent
			}
		}
	}
	return Unknown
}

// Normalize lowercases text, drops punctuation and collapses whitespace
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func containsSequence(words, seq []string) bool {
	if len(seq) == 0 || len(seq) > len(words) {
		return false
	}
outer:
	for i := 0; i+len(seq) <= len(words); i++ {
		for j := range seq {
			if words[i+j] != seq[j] {
				continue outer
			}
		}
		return true
	}
	return false
}
