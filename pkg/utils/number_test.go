package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRounding(t *testing.T) {
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(66.6666))
	assert.Equal(t, 66.7, RoundWithOneDecimalPlace(66.6666))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 33.3, RoundWithOneDecimalPlace(33.333))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 75.0, Percentage(3, 4))
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 0.0, Percentage(0, 10))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, 12)

	assert.NotEqual(t, NewDealID(), NewDealID())
}
