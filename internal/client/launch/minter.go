// Package launch mints encrypted launch tokens that carry a cardholder
// identity to the app party.
package launch

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/client/cards"
	"github.com/dmitrijs2005/voyagegate/internal/cryptox"
	"github.com/dmitrijs2005/voyagegate/internal/identity"
	"github.com/google/uuid"
)

// Minter seals cardholder identities into launch-token envelopes using
// the pre-shared key.
type Minter struct {
	sharedKey []byte
}

func NewMinter(sharedKey []byte) *Minter {
	return &Minter{sharedKey: sharedKey}
}

// Mint builds an identity payload for the card and seals it. The nonce
// carries the issue time so the receiving side can reject stale tokens;
// the uuid suffix keeps two tokens minted in the same second distinct.
func (m *Minter) Mint(card cards.Card, now time.Time) (string, error) {
	payload := identity.Payload{
		ProfileID: card.ProfileID,
		PanLast4:  card.PanLast4(),
		PanHash:   card.PanDigest(),
		Language:  card.Language,
		Nickname:  card.Nickname,
		Nonce:     newNonce(now),
	}

	envelope, err := cryptox.Seal(m.sharedKey, payload)
	if err != nil {
		return "", fmt.Errorf("sealing launch token: %w", err)
	}
	return envelope, nil
}

func newNonce(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d_%s", now.Unix(), suffix)
}
