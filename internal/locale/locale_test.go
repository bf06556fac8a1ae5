package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	assert.Same(t, &EN, Get("en"))
	assert.Same(t, Default, Get("xx-unknown"))
	assert.Same(t, Default, Get(""))
}

func TestENBundleComplete(t *testing.T) {
	b := Get("en")

	require.NotEmpty(t, b.Letter1.Filename)
	require.NotEmpty(t, b.Letter2.Filename)
	assert.NotEqual(t, b.Letter1.Filename, b.Letter2.Filename,
		"the two artifact slots must not collide on disk")
	assert.NotEmpty(t, b.Letter1.Content)
	assert.NotEmpty(t, b.Letter2.Content)

	assert.NotEmpty(t, b.Fallback, "remote failures need a canned reply")
	assert.NotEmpty(t, b.Prompt, "remote generation needs the persona prompt")
	assert.NotEmpty(t, b.APIKeyPrompt)
	assert.NotEmpty(t, b.IdleSpamPool, "the nag loop picks from this pool")
	assert.NotEmpty(t, b.SessionSoftWarning)
	assert.NotEmpty(t, b.SessionHardWarning)
}

func TestENResponseTable(t *testing.T) {
	b := Get("en")

	// Spot-check keys the resolver builds from live diagnostics.
	for _, key := range []string{"ts-2322", "ts-2304", "eslint-semi", "eslint-no-var"} {
		assert.Contains(t, b.Responses, key)
		assert.NotEmpty(t, b.Responses[key])
	}
	assert.NotContains(t, b.Responses, "", "empty key would shadow the miss path")
}
