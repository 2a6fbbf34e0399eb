package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tidyhouse/models"
	"tidyhouse/services/payment"
	"tidyhouse/services/quote"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "booking_session:"
	sessionTTL       = 30 * time.Minute
)

// DefaultSessionService implements SessionService on a redis-backed store.
type DefaultSessionService struct {
	Cache    *redis.Client
	Checkout payment.CheckoutService
	Logger   *zap.Logger
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// defaultConfig is the documented reset state of a fresh booking form.
func defaultConfig() models.BookingConfiguration {
	return models.BookingConfiguration{
		Bathrooms:     1,
		CleaningType:  models.CleaningTypeStandard,
		CleaningNeeds: models.FrequencyOneTime,
	}
}

func (s *DefaultSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var sess models.BookingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &sess, nil
}

func (s *DefaultSessionService) saveSession(ctx context.Context, sess *models.BookingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(sess.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func response(sess *models.BookingSession, errs map[string]string) *models.SessionResponse {
	if len(errs) == 0 {
		errs = nil
	}
	return &models.SessionResponse{
		SessionID: sess.SessionID,
		Step:      sess.Step,
		Config:    sess.Config,
		Quote:     quote.Calculate(sess.Config),
		Errors:    errs,
	}
}

// Start creates a fresh session at step 1 with default field values.
func (s *DefaultSessionService) Start(ctx context.Context) (*models.SessionResponse, error) {
	sess := &models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      1,
		Status:    models.SessionStatusEditing,
		Config:    defaultConfig(),
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	s.Logger.Debug("booking session started", zap.String("session", sess.SessionID))
	return response(sess, nil), nil
}

// Get returns the current session state with a fresh quote.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return response(sess, nil), nil
}

// EditField applies a single field edit. Values arrive as strings from form
// input; numeric and boolean fields are coerced here. Only the edited field
// is validated so the form can surface immediate feedback without flagging
// untouched fields.
func (s *DefaultSessionService) EditField(ctx context.Context, sessionID, field, value string) (*models.SessionResponse, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := applyField(&sess.Config, field, value); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	errs := make(map[string]string)
	if msg := ValidateField(sess.Config, field); msg != "" {
		errs[field] = msg
	}
	return response(sess, errs), nil
}

func applyField(cfg *models.BookingConfiguration, field, value string) error {
	switch field {
	case FieldHomeSize:
		cfg.HomeSize = value
	case FieldBathrooms:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			n = 0
		}
		cfg.Bathrooms = n
	case FieldCleaningType:
		cfg.CleaningType = value
	case FieldCleaningNeeds:
		cfg.CleaningNeeds = value
	case FieldIsNewCustomer:
		cfg.IsNewCustomer, _ = strconv.ParseBool(value)
	case FieldPreferredDate:
		cfg.PreferredDate = value
	case FieldTimeSlot:
		cfg.TimeSlot = value
	case FieldName:
		cfg.Name = value
	case FieldEmail:
		cfg.Email = value
	case FieldPhone:
		cfg.Phone = value
	case FieldAddress:
		cfg.Address = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// ToggleAddOn flips membership of a catalog add-on in the selected set.
func (s *DefaultSessionService) ToggleAddOn(ctx context.Context, sessionID, addOnID string) (*models.SessionResponse, error) {
	if _, ok := quote.AddOnByID(addOnID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAddOn, addOnID)
	}

	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Config.HasAddOn(addOnID) {
		kept := sess.Config.AddOns[:0]
		for _, a := range sess.Config.AddOns {
			if a != addOnID {
				kept = append(kept, a)
			}
		}
		sess.Config.AddOns = kept
	} else {
		sess.Config.AddOns = append(sess.Config.AddOns, addOnID)
	}

	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return response(sess, nil), nil
}

// Next validates all fields through the current step and advances on
// success. Validation failures leave the step unchanged and are reported in
// the response, not as an error.
func (s *DefaultSessionService) Next(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if errs := ValidateFields(sess.Config, fieldsThrough(sess.Step)); len(errs) > 0 {
		return response(sess, errs), nil
	}

	if sess.Step < TotalSteps {
		sess.Step++
		if err := s.saveSession(ctx, sess); err != nil {
			return nil, err
		}
	}
	return response(sess, nil), nil
}

// Back moves one step backward without validation. No-op at step 1.
func (s *DefaultSessionService) Back(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Step > 1 {
		sess.Step--
		if err := s.saveSession(ctx, sess); err != nil {
			return nil, err
		}
	}
	return response(sess, nil), nil
}
