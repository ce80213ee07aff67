package snub

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polywythoff/cosettable"
	"github.com/katalvlaran/polywythoff/descriptor"
)

func TestTranslateExtraEvenLength(t *testing.T) {
	got, err := translateExtra(descriptor.Word{0, 1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, cosettable.Word{letterR, letterS}, got)
}

func TestTranslateExtraOddLengthIsDoubled(t *testing.T) {
	// (0,1,2) has odd length, so it doubles to (0,1,2,0,1,2) before
	// splitting into pairs: (0,1),(2,0),(1,2) -> [r],[s⁻¹,r⁻¹],[s].
	got, err := translateExtra(descriptor.Word{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, cosettable.Word{letterR, letterSInv, letterRInv, letterS}, got)
}

func TestTranslateExtraUnknownPair(t *testing.T) {
	_, err := translateExtra(descriptor.Word{0, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUntranslatable))
}
