package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoki/misuki/internal/database"
)

func pendingFixture() []database.FutureEvent {
	return []database.FutureEvent{
		{ID: 1, Description: "watch a movie", EventType: database.EventTypeWatchingMovie},
		{ID: 2, Description: "meeting sara", EventType: database.EventTypeMeetingSomeone},
		{ID: 3, Description: "visit the aquarium", EventType: database.EventTypeGoingSomewhere},
	}
}

func TestDetectCompletionMatchesEvent(t *testing.T) {
	id := DetectCompletion("I watched the movie last night, it was great", pendingFixture())
	require.NotNil(t, id)
	assert.Equal(t, int64(1), *id)

	id = DetectCompletion("just finished my meeting with sara", pendingFixture())
	require.NotNil(t, id)
	assert.Equal(t, int64(2), *id)

	id = DetectCompletion("we visited the aquarium and saw a shark", pendingFixture())
	require.NotNil(t, id)
	assert.Equal(t, int64(3), *id)
}

func TestDetectCompletionRequiresPastTense(t *testing.T) {
	// Mentions the event without reporting it done
	assert.Nil(t, DetectCompletion("I can't wait to watch the movie", pendingFixture()))
	assert.Nil(t, DetectCompletion("meeting sara soon", pendingFixture()))
}

func TestDetectCompletionRequiresWordOverlap(t *testing.T) {
	// Past tense but about something else entirely
	assert.Nil(t, DetectCompletion("I finished my homework", pendingFixture()))
}

func TestDetectCompletionFirstQualifyingWins(t *testing.T) {
	events := []database.FutureEvent{
		{ID: 10, Description: "watch the new movie"},
		{ID: 11, Description: "watch a movie with mia"},
	}

	id := DetectCompletion("I watched the movie yesterday", events)
	require.NotNil(t, id)
	assert.Equal(t, int64(10), *id)
}

func TestDetectCompletionEmptyPending(t *testing.T) {
	assert.Nil(t, DetectCompletion("I watched the movie", nil))
}
