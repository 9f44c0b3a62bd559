// Package identity defines the payload carried inside a launch envelope.
package identity

import (
	"fmt"

	"github.com/dmitrijs2005/voyagegate/internal/common"
)

// Payload is the identity record the client party seals into a launch
// token. It exists only in transit: after a successful exchange the fields
// are persisted as a profile and the nonce is discarded.
type Payload struct {
	ProfileID string `json:"profile_id"`
	PanLast4  string `json:"pan_last_4"`
	PanHash   string `json:"pan_hash"`
	Language  string `json:"language"`
	Nickname  string `json:"nickname"`
	// Nonce has the form "<unix_seconds>_<random_suffix>" and is used only
	// by the replay guard.
	Nonce string `json:"nonce"`
}

// Validate checks the fields required for an exchange. It fails closed:
// the exchange service folds any validation error into the opaque
// envelope error before it reaches a caller.
func (p *Payload) Validate() error {
	if p.ProfileID == "" {
		return fmt.Errorf("%w: empty profile_id", common.ErrValidation)
	}
	if len(p.PanLast4) != 4 {
		return fmt.Errorf("%w: pan_last_4 must be 4 characters", common.ErrValidation)
	}
	if p.PanHash == "" {
		return fmt.Errorf("%w: empty pan_hash", common.ErrValidation)
	}
	if p.Nonce == "" {
		return fmt.Errorf("%w: empty nonce", common.ErrValidation)
	}
	return nil
}
