package lifecycle

import (
	"regexp"
	"strings"

	"github.com/tomoki/misuki/internal/database"
)

// pastTenseRe gates completion detection: the message has to sound like a
// report of something already done, optionally anchored by a time adverb
// ("watched it last night", "went there earlier").
var pastTenseRe = regexp.MustCompile(`(?i)\b(?:just\s+|already\s+|finally\s+)?(watched|saw|went|did|finished)\b(?:\s+\S+)*?(?:\s+(?:yesterday|earlier|today|tonight|last\s+night|this\s+morning|this\s+afternoon))?`)

const (
	minOverlapWords = 2
	minWordLength   = 4
)

// DetectCompletion checks whether a message reports one of the pending
// events as done. An event qualifies when at least two of its description
// words longer than three characters appear in the message; the first
// qualifying event wins. nil means no completion was detected.
func DetectCompletion(message string, pending []database.FutureEvent) *int64 {
	if !pastTenseRe.MatchString(message) {
		return nil
	}

	msg := strings.ToLower(message)
	for _, ev := range pending {
		if descriptionOverlap(ev.Description, msg) >= minOverlapWords {
			id := ev.ID
			return &id
		}
	}

	return nil
}

// descriptionOverlap counts the description's significant words that appear
// as substrings of the message
func descriptionOverlap(description, message string) int {
	count := 0
	for _, word := range strings.Fields(strings.ToLower(description)) {
		if len(word) >= minWordLength && strings.Contains(message, word) {
			count++
		}
	}
	return count
}
