package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/models"

	"github.com/google/uuid"
)

var (
	ErrDebounced               = errors.New("request repeated too quickly")
	ErrNoCancelURL             = errors.New("subscription has no cancellation link")
	ErrDirectoryOptionNotFound = errors.New("directory option not found")
	ErrUnsupportedStateCommand = errors.New("unsupported state command")
	ErrCommandIdentityMissing  = errors.New("custom entry id is required")
)

// DefaultSubscriptions is the starter list shown before anything is
// detected or entered.
func DefaultSubscriptions() []models.Subscription {
	renews := 5
	return []models.Subscription{
		{
			ID:               "netflix",
			Name:             "Netflix",
			PricePerMonthUSD: 15.49,
			CancelURL:        "https://www.netflix.com/cancelplan",
			WebsiteURL:       "https://www.netflix.com",
			Cadence:          models.CadenceMonth,
			RenewsInDays:     &renews,
			Source:           models.SourceDefault,
		},
		{
			ID:               "spotify",
			Name:             "Spotify",
			PricePerMonthUSD: 9.99,
			CancelURL:        "https://www.spotify.com/account/subscription/",
			WebsiteURL:       "https://www.spotify.com",
			Cadence:          models.CadenceMonth,
			Source:           models.SourceDefault,
		},
		{
			ID:               "adobe-cc",
			Name:             "Adobe Creative Cloud",
			PricePerMonthUSD: 52.99,
			CancelURL:        "https://account.adobe.com/plans",
			WebsiteURL:       "https://www.adobe.com",
			Cadence:          models.CadenceMonth,
			Source:           models.SourceDefault,
		},
	}
}

// SubscriptionService runs state transitions for an owner, persists the
// documents each one touches and renders the reconciled view.
type SubscriptionService struct {
	store     StateStoreInterface
	directory DirectoryServiceInterface
	debouncer DebouncerInterface
	audit     AuditServiceInterface
	metrics   MetricsRecorderInterface
	activity  ActivityLoggerInterface
	logger    *slog.Logger
	defaults  bool
	now       func() time.Time
	newID     func() string
}

func NewSubscriptionService(
	cfg *config.DirectoryConfig,
	store StateStoreInterface,
	directory DirectoryServiceInterface,
	debouncer DebouncerInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
	logger *slog.Logger,
) SubscriptionServiceInterface {
	return newSubscriptionService(cfg, store, directory, debouncer, audit, metrics, activity, logger)
}

func newSubscriptionService(
	cfg *config.DirectoryConfig,
	store StateStoreInterface,
	directory DirectoryServiceInterface,
	debouncer DebouncerInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
	logger *slog.Logger,
) *SubscriptionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubscriptionService{
		store:     store,
		directory: directory,
		debouncer: debouncer,
		audit:     audit,
		metrics:   metrics,
		activity:  activity,
		logger:    logger,
		defaults:  cfg.DefaultsEnabled,
		now:       time.Now,
		newID:     func() string { return "custom-" + uuid.NewString() },
	}
}

func (s *SubscriptionService) GetView(ctx context.Context, owner models.Owner) (*models.SubscriptionView, error) {
	state, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.render(state, s.base(ctx, state)), nil
}

func (s *SubscriptionService) Cancel(ctx context.Context, owner models.Owner, id string) (*models.SubscriptionView, error) {
	return s.transition(ctx, owner, "cancel", id, models.AuditActionSubscriptionCancel,
		func(state *models.SubscriptionState, base []models.Subscription) ([]models.DocumentKind, error) {
			return state.Cancel(base, id)
		})
}

func (s *SubscriptionService) Remove(ctx context.Context, owner models.Owner, id string) (*models.SubscriptionView, error) {
	return s.transition(ctx, owner, "remove", id, models.AuditActionSubscriptionRemove,
		func(state *models.SubscriptionState, base []models.Subscription) ([]models.DocumentKind, error) {
			return state.Remove(base, id)
		})
}

func (s *SubscriptionService) Restore(ctx context.Context, owner models.Owner, id string) (*models.SubscriptionView, error) {
	return s.transition(ctx, owner, "restore", id, models.AuditActionSubscriptionRestore,
		func(state *models.SubscriptionState, base []models.Subscription) ([]models.DocumentKind, error) {
			return state.Restore(base, id)
		})
}

func (s *SubscriptionService) PickFromDirectory(ctx context.Context, owner models.Owner, optionID string) (*models.SubscriptionView, error) {
	snapshot, err := s.directory.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	opt, ok := snapshot.Find(optionID)
	if !ok {
		return nil, ErrDirectoryOptionNotFound
	}

	return s.transition(ctx, owner, "pick", opt.ID, models.AuditActionDirectoryPicked,
		func(state *models.SubscriptionState, base []models.Subscription) ([]models.DocumentKind, error) {
			return state.PickFromDirectory(base, opt)
		})
}

func (s *SubscriptionService) EditPrice(ctx context.Context, owner models.Owner, id string, edit models.PriceEdit) (*models.SubscriptionView, error) {
	return s.transition(ctx, owner, "edit_price", id, models.AuditActionPriceUpdated,
		func(state *models.SubscriptionState, base []models.Subscription) ([]models.DocumentKind, error) {
			return state.EditPrice(base, id, edit)
		})
}

func (s *SubscriptionService) DiscardPending(ctx context.Context, owner models.Owner, id string) (*models.SubscriptionView, error) {
	return s.transition(ctx, owner, "discard", id, models.AuditActionPendingDiscarded,
		func(state *models.SubscriptionState, _ []models.Subscription) ([]models.DocumentKind, error) {
			return state.DiscardPending(id)
		})
}

func (s *SubscriptionService) AddCustom(ctx context.Context, owner models.Owner, input models.CustomEntryInput) (*models.SubscriptionView, error) {
	id := s.newID()
	return s.transition(ctx, owner, "add_custom", id, models.AuditActionCustomAdded,
		func(state *models.SubscriptionState, _ []models.Subscription) ([]models.DocumentKind, error) {
			return state.AddCustom(id, input), nil
		})
}

// ApplyCommand runs a whole-value write. Commands that carry an expected
// version fail with models.ErrStaleWrite when the stored document moved on.
func (s *SubscriptionService) ApplyCommand(ctx context.Context, owner models.Owner, cmd models.StateCommand) (*models.SubscriptionView, error) {
	if cmd == nil {
		return nil, ErrUnsupportedStateCommand
	}

	if _, ok := cmd.(models.ResetAllCommand); ok {
		if err := s.store.Reset(ctx, owner); err != nil {
			return nil, err
		}
		s.recordTransition(ctx, owner, cmd.CommandType(), "", models.AuditActionStateReset)
		return s.GetView(ctx, owner)
	}

	switch c := cmd.(type) {
	case models.UpsertCustomCommand:
		if models.NormalizeID(c.Entry.ID) == "" {
			return nil, ErrCommandIdentityMissing
		}
	case models.AddCustomCommand:
		if models.NormalizeID(c.Entry.ID) == "" {
			return nil, ErrCommandIdentityMissing
		}
	}

	state, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	dirty := state.Apply(cmd)
	if dirty == nil {
		if _, known := cmd.(models.AddCustomCommand); !known {
			return nil, ErrUnsupportedStateCommand
		}
	}

	if err := s.persist(ctx, owner, state, dirty, models.ExpectedVersion(cmd)); err != nil {
		return nil, err
	}
	if len(dirty) > 0 {
		s.recordTransition(ctx, owner, cmd.CommandType(), "", models.AuditActionStateWritten)
	}

	return s.render(state, s.base(ctx, state)), nil
}

// OpenCancel returns the cancellation link for id. Repeats for the same
// owner and subscription inside the debounce window are rejected.
func (s *SubscriptionService) OpenCancel(ctx context.Context, owner models.Owner, id string) (string, error) {
	key := "open-cancel:" + owner.Key + ":" + models.NormalizeID(id)
	if !s.debouncer.Allow(key) {
		s.metrics.IncrementCounter("request.debounced", map[string]string{"action": "open_cancel"})
		return "", ErrDebounced
	}

	sub, err := s.Find(ctx, owner, id)
	if err != nil {
		return "", err
	}

	if sub.CancelURL == "" || sub.CancelURL == models.PlaceholderCancelURL {
		return "", ErrNoCancelURL
	}
	return sub.CancelURL, nil
}

func (s *SubscriptionService) Find(ctx context.Context, owner models.Owner, id string) (*models.Subscription, error) {
	state, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	sub, ok := state.Find(s.base(ctx, state), id)
	if !ok {
		return nil, models.ErrSubscriptionNotFound
	}
	sub = decorate(sub, s.now())
	return &sub, nil
}

func (s *SubscriptionService) ActiveSubscriptions(ctx context.Context, owner models.Owner) ([]models.Subscription, error) {
	view, err := s.GetView(ctx, owner)
	if err != nil {
		return nil, err
	}
	return view.Active, nil
}

type transitionFunc func(state *models.SubscriptionState, base []models.Subscription) ([]models.DocumentKind, error)

func (s *SubscriptionService) transition(ctx context.Context, owner models.Owner, name, id, action string, fn transitionFunc) (*models.SubscriptionView, error) {
	state, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	base := s.base(ctx, state)
	dirty, err := fn(state, base)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, owner, state, dirty, 0); err != nil {
		return nil, err
	}
	s.recordTransition(ctx, owner, name, id, action)

	return s.render(state, base), nil
}

func (s *SubscriptionService) recordTransition(ctx context.Context, owner models.Owner, name, id, action string) {
	backend := "local"
	if owner.Remote {
		backend = "remote"
	}
	s.metrics.IncrementCounter("subscription.transition", map[string]string{"transition": name, "backend": backend})
	s.activity.LogTransition(ctx, owner, name, id)

	resource := models.AuditResourceSubscription
	if id == "" {
		resource = models.AuditResourceState
	}
	s.audit.Record(ctx, owner, action, resource, id, map[string]interface{}{"backend": backend})
}

// persist writes each dirty document and records its new version.
func (s *SubscriptionService) persist(ctx context.Context, owner models.Owner, state *models.SubscriptionState, dirty []models.DocumentKind, expectedVersion int) error {
	for _, kind := range dirty {
		var version int
		var err error

		switch kind {
		case models.DocumentDetected:
			version, err = s.store.SetDetected(ctx, owner, state.Detected, expectedVersion)
		case models.DocumentCanceled:
			version, err = s.store.SetCanceledIDs(ctx, owner, state.CanceledIDs, expectedVersion)
		case models.DocumentRemoved:
			version, err = s.store.SetRemovedIDs(ctx, owner, state.RemovedIDs, expectedVersion)
		case models.DocumentCustom:
			version, err = s.store.SetCustom(ctx, owner, state.Custom, expectedVersion)
		case models.DocumentPreferences:
			version, err = s.store.SetPreferences(ctx, owner, state.Preferences, expectedVersion)
		default:
			err = fmt.Errorf("unknown document kind %q", kind)
		}
		if err != nil {
			return err
		}
		state.Versions[kind] = version
	}
	return nil
}

// base is the default list followed by a placeholder for every detected
// vendor that is not already a default. Placeholders take their cancel link
// from the directory when one matches.
func (s *SubscriptionService) base(ctx context.Context, state *models.SubscriptionState) []models.Subscription {
	var base []models.Subscription
	if s.defaults {
		base = DefaultSubscriptions()
	}
	if len(state.Detected) == 0 {
		return base
	}

	known := make(models.IDSet, len(base))
	for _, sub := range base {
		known[sub.Key()] = struct{}{}
	}

	var options []models.DirectoryOption
	loaded := false
	for _, vendor := range state.Detected {
		if known.Has(vendor.ID) {
			continue
		}
		known[models.NormalizeID(vendor.ID)] = struct{}{}

		if !loaded {
			loaded = true
			if snapshot, err := s.directory.GetSnapshot(ctx); err == nil {
				options = snapshot.Options
			} else {
				s.logger.WarnContext(ctx, "directory unavailable for detected vendors",
					slog.String("error", err.Error()),
					slog.String("request_id", getRequestID(ctx)),
				)
			}
		}

		cancelURL := models.PlaceholderCancelURL
		if opt, ok := s.directory.Match(options, vendor); ok && opt.CancelURL != "" {
			cancelURL = opt.CancelURL
		}

		base = append(base, models.Subscription{
			ID:        vendor.ID,
			Name:      vendor.Name,
			CancelURL: cancelURL,
			Cadence:   models.CadenceMonth,
			Source:    models.SourceDetected,
		})
	}
	return base
}

func (s *SubscriptionService) render(state *models.SubscriptionState, base []models.Subscription) *models.SubscriptionView {
	view := Reconcile(ReconcileInput{
		Base:        base,
		Custom:      state.Custom,
		CanceledIDs: state.CanceledIDs,
		RemovedIDs:  state.RemovedIDs,
		Preferences: state.Preferences,
		Now:         s.now(),
	})
	view.Detected = state.Detected
	view.Versions = state.Versions
	return &view
}
