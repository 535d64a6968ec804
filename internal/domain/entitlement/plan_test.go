package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitsFor(t *testing.T) {
	t.Run("free tier quotas", func(t *testing.T) {
		limits, err := LimitsFor(TierFree)
		require.NoError(t, err)
		assert.Equal(t, 3, limits.Documents)
		assert.Equal(t, 5, limits.Quizzes)
		assert.Equal(t, 5, limits.Flashcards)
		assert.Equal(t, 5, limits.Summaries)
		assert.Equal(t, 3, limits.MindMaps)
		assert.False(t, limits.OfflineAccess)
		assert.False(t, limits.Transcription)
		assert.False(t, limits.Planning)
	})

	for _, tier := range []PlanTier{TierMonthly, TierYearly, TierAdmin} {
		t.Run(string(tier)+" tier is unlimited", func(t *testing.T) {
			limits, err := LimitsFor(tier)
			require.NoError(t, err)
			for _, kind := range AllResourceKinds {
				limit, err := limits.For(kind)
				require.NoError(t, err)
				assert.Equal(t, Unlimited, limit)
			}
			assert.True(t, limits.OfflineAccess)
			assert.True(t, limits.Transcription)
			assert.True(t, limits.Planning)
		})
	}

	t.Run("unknown tier", func(t *testing.T) {
		_, err := LimitsFor(PlanTier("platinum"))
		assert.Error(t, err)
	})
}

func TestLimitsForCoversEveryKind(t *testing.T) {
	limits, err := LimitsFor(TierFree)
	require.NoError(t, err)

	for _, kind := range AllResourceKinds {
		_, err := limits.For(kind)
		assert.NoError(t, err, "kind %s", kind)
	}

	_, err = limits.For(ResourceKind("essays"))
	assert.Error(t, err)
}

func TestStorableTiers(t *testing.T) {
	assert.True(t, StorableTiers[TierFree])
	assert.True(t, StorableTiers[TierMonthly])
	assert.True(t, StorableTiers[TierYearly])
	// Admin is derived from the user role, never persisted on a row.
	assert.False(t, StorableTiers[TierAdmin])
}
