package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

func TestClassifyBuy(t *testing.T) {
	c := Classify("I want to buy a house in Lahore")

	assert.Equal(t, domain.IntentBuy, c.Intent)
	assert.Greater(t, c.Confidence, 0.0)
	assert.NotEmpty(t, c.Reasoning)
}

func TestClassifyRent(t *testing.T) {
	c := Classify("any apartments for rent on a monthly lease?")

	assert.Equal(t, domain.IntentRent, c.Intent)
	assert.Greater(t, c.Confidence, 0.0)
}

func TestClassifyNoKeywords(t *testing.T) {
	c := Classify("xyz")

	assert.Equal(t, domain.IntentUnknown, c.Intent)
	assert.Equal(t, 0.0, c.Confidence)
}

func TestClassifyConfidenceIsShareOfTotal(t *testing.T) {
	// One buy keyword, one rent keyword: buy wins the tie by declaration
	// order at half the total score.
	c := Classify("buy or rent?")

	assert.Equal(t, domain.IntentBuy, c.Intent)
	assert.InDelta(t, 0.5, c.Confidence, 1e-9)
}

func TestClassifyCountsRepeatedKeywords(t *testing.T) {
	c := Classify("sell sell sell, just help me sell")

	assert.Equal(t, domain.IntentSell, c.Intent)
	assert.Equal(t, 1.0, c.Confidence)
}

func TestClassifyDeterministic(t *testing.T) {
	msg := "looking for a rental, maybe a short term lease"
	first := Classify(msg)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(msg))
	}
}
