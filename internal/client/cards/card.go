// Package cards provides the client party's view of the cardholder it
// acts for. The full PAN never leaves this package; callers get the
// display suffix and a one-way digest suitable for correlation.
package cards

import (
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters for the PAN digest. Deliberately modest: the
// digest is a correlation handle, not a password hash under attack.
const (
	digestTime    = 1
	digestMemory  = 64 * 1024
	digestThreads = 4
	digestKeyLen  = 32
)

// Card is a cardholder identity held by the client party.
type Card struct {
	ProfileID string
	pan       string
	Nickname  string
	Language  string
}

// Source yields the card the client party is currently acting for.
type Source interface {
	Current() Card
}

// PanLast4 returns the displayable suffix of the card number.
func (c Card) PanLast4() string {
	if len(c.pan) < 4 {
		return c.pan
	}
	return c.pan[len(c.pan)-4:]
}

// PanDigest returns a hex-encoded argon2id digest of the full card
// number, salted with the profile identifier so equal PANs on different
// profiles do not collide to the same handle.
func (c Card) PanDigest() string {
	digest := argon2.IDKey([]byte(c.pan), []byte(c.ProfileID), digestTime, digestMemory, digestThreads, digestKeyLen)
	return hex.EncodeToString(digest)
}

// DemoSource is a fixed single-cardholder source used in development
// and demos.
type DemoSource struct{}

func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

func (s *DemoSource) Current() Card {
	return Card{
		ProfileID: "user_12345",
		pan:       "4111111111119876",
		Nickname:  "Jaison",
		Language:  "en",
	}
}
