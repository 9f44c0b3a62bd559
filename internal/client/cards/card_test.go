package cards

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoSource(t *testing.T) {
	card := NewDemoSource().Current()

	assert.Equal(t, "user_12345", card.ProfileID)
	assert.Equal(t, "9876", card.PanLast4())
	assert.Equal(t, "Jaison", card.Nickname)
	assert.Equal(t, "en", card.Language)
}

func TestPanDigest(t *testing.T) {
	card := NewDemoSource().Current()

	digest := card.PanDigest()
	raw, err := hex.DecodeString(digest)
	require.NoError(t, err)
	assert.Len(t, raw, digestKeyLen)

	// stable for the same card
	assert.Equal(t, digest, card.PanDigest())

	// salted by profile: same pan, different profile, different digest
	other := card
	other.ProfileID = "user_67890"
	assert.NotEqual(t, digest, other.PanDigest())

	// the digest never contains the pan itself
	assert.NotContains(t, digest, "4111")
}

func TestPanLast4_ShortPan(t *testing.T) {
	card := Card{pan: "42"}
	assert.Equal(t, "42", card.PanLast4())
}
