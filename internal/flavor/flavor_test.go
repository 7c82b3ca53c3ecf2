package flavor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{ n int }

func (r fixedRand) Intn(n int) int { return r.n % n }

func TestLibrary_FeedbackMatchesOutcome(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary(fixedRand{n: 0})

	ok, err := lib.Feedback(ctx, "React Dashboard", true)
	require.NoError(t, err)
	assert.Equal(t, successFeedback[0], ok)

	bad, err := lib.Feedback(ctx, "React Dashboard", false)
	require.NoError(t, err)
	assert.Equal(t, failureFeedback[0], bad)
	assert.NotEqual(t, ok, bad)
}

func TestLibrary_DrawsAcrossTheWholeSet(t *testing.T) {
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < len(horoscopes); i++ {
		lib := NewLibrary(fixedRand{n: i})
		line, err := lib.Horoscope(ctx, 1)
		require.NoError(t, err)
		seen[line] = true
	}
	assert.Len(t, seen, len(horoscopes))
}

func TestLibrary_PoolsAreNonEmptyAndDistinct(t *testing.T) {
	require.NotEmpty(t, successFeedback)
	require.NotEmpty(t, failureFeedback)
	require.NotEmpty(t, horoscopes)

	for _, s := range successFeedback {
		assert.NotContains(t, failureFeedback, s)
	}
}
