package booking

import (
	"context"
	"fmt"

	"tidyhouse/models"
	"tidyhouse/services/quote"

	"go.uber.org/zap"
)

// Submit finalizes the session. Order matters: validation runs before any
// external call, the submitting flag blocks a second submission while the
// checkout round trip is pending, and a checkout failure puts the session
// back into editing with every entered field intact.
func (s *DefaultSessionService) Submit(ctx context.Context, sessionID string) (string, *models.SessionResponse, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	if sess.Step != TotalSteps {
		return "", nil, ErrNotFinalStep
	}
	if sess.Status == models.SessionStatusSubmitting {
		return "", nil, ErrSubmitInFlight
	}

	if errs := ValidateFields(sess.Config, fieldsThrough(TotalSteps)); len(errs) > 0 {
		return "", response(sess, errs), nil
	}

	sess.Status = models.SessionStatusSubmitting
	if err := s.saveSession(ctx, sess); err != nil {
		return "", nil, err
	}

	price := quote.Calculate(sess.Config)
	checkoutURL, err := s.Checkout.CreateCheckoutSession(ctx, sess.Config, price)
	if err != nil {
		// Recoverable: keep the entered data so the user can retry.
		sess.Status = models.SessionStatusEditing
		if saveErr := s.saveSession(ctx, sess); saveErr != nil {
			s.Logger.Error("failed to restore session after checkout failure",
				zap.String("session", sessionID), zap.Error(saveErr))
		}
		return "", nil, fmt.Errorf("checkout failed: %w", err)
	}

	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		s.Logger.Warn("failed to clear submitted booking session",
			zap.String("session", sessionID), zap.Error(err))
	}

	s.Logger.Info("booking submitted to checkout",
		zap.String("session", sessionID), zap.Int("price", price))
	return checkoutURL, nil, nil
}
