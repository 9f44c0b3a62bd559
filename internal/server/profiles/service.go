package profiles

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/common"
	"github.com/dmitrijs2005/voyagegate/internal/cryptox"
	"github.com/dmitrijs2005/voyagegate/internal/identity"
	"github.com/dmitrijs2005/voyagegate/internal/server/auth"
	"github.com/dmitrijs2005/voyagegate/internal/server/config"
	"github.com/dmitrijs2005/voyagegate/internal/server/replay"
)

// ExchangeResult is what a successful token exchange hands back to the
// caller: a bearer credential plus the decrypted identity payload.
type ExchangeResult struct {
	AccessToken string
	Payload     identity.Payload
}

// Service orchestrates the launch-token exchange: open the envelope,
// validate the payload, check nonce freshness, upsert the profile and
// issue the bearer credential.
type Service struct {
	repo                        Repository
	guard                       *replay.Guard
	sharedKey                   []byte
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, guard *replay.Guard, sharedKey []byte, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		guard:                       guard,
		sharedKey:                   sharedKey,
		jwtSecret:                   []byte(cfg.JWTSecret),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Exchange decrypts an envelope and trades it for a credential.
// Failures are either common.ErrEnvelope or common.ErrNonceExpired; the
// HTTP layer maps both to the same generic 400 so callers learn nothing
// about which check declined them.
func (s *Service) Exchange(ctx context.Context, envelope string, now time.Time) (*ExchangeResult, error) {

	var payload identity.Payload
	if err := cryptox.Open(s.sharedKey, envelope, &payload); err != nil {
		return nil, err
	}

	// missing or malformed fields fold into the opaque envelope error
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEnvelope, err)
	}

	if err := s.guard.Check(ctx, payload.Nonce, now); err != nil {
		return nil, err
	}

	profile, err := s.repo.Upsert(ctx, &Profile{
		ProfileID: payload.ProfileID,
		PanLast4:  payload.PanLast4,
		PanHash:   payload.PanHash,
		Language:  payload.Language,
		Nickname:  payload.Nickname,
	})
	if err != nil {
		return nil, fmt.Errorf("error upserting profile: %w", err)
	}

	token, err := auth.GenerateToken(profile.ProfileID, s.jwtSecret, s.accessTokenValidityDuration, now)
	if err != nil {
		return nil, fmt.Errorf("error issuing credential: %w", err)
	}

	return &ExchangeResult{AccessToken: token, Payload: payload}, nil
}

// UpdateLanguage applies an explicit profile update for the authenticated
// profile. A nil language is a no-op, matching the original exchange
// surface where the field is optional.
func (s *Service) UpdateLanguage(ctx context.Context, profileID string, language *string) error {
	if language == nil || *language == "" {
		return nil
	}

	if err := s.repo.UpdateLanguage(ctx, profileID, *language); err != nil {
		return fmt.Errorf("error updating language: %w", err)
	}

	return nil
}
