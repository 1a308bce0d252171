package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModerateFlagsDenyListedTerm(t *testing.T) {
	engine := NewEngine([]string{"spam", "scam"})

	result := engine.Moderate("this is spam content")
	assert.False(t, result.Accepted)
	assert.Equal(t, "spam", result.Term)
}

func TestModerateAcceptsCleanText(t *testing.T) {
	engine := NewEngine([]string{"spam", "scam"})

	result := engine.Moderate("happy birthday!")
	assert.True(t, result.Accepted)
	assert.Empty(t, result.Term)
}

func TestModerateCaseInsensitive(t *testing.T) {
	engine := NewEngine([]string{"Spam"})

	assert.False(t, engine.Moderate("total SPAM here").Accepted)
	assert.False(t, engine.Moderate("sPaM").Accepted)
}

func TestModerateSubstringNotWholeWord(t *testing.T) {
	engine := NewEngine([]string{"spam"})

	assert.False(t, engine.Moderate("antispammer").Accepted)
}

func TestNewEngineFromConfig(t *testing.T) {
	engine := NewEngineFromConfig("spam, scam ,, fraud")

	assert.False(t, engine.Moderate("a scam for sure").Accepted)
	assert.False(t, engine.Moderate("FRAUD alert").Accepted)
	assert.True(t, engine.Moderate("a friendly wish").Accepted)
}

func TestEmptyDenyListAcceptsEverything(t *testing.T) {
	engine := NewEngineFromConfig("")

	assert.True(t, engine.Moderate("anything at all").Accepted)
}
