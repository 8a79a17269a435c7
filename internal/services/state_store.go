package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"subscription-tracker/internal/models"
	"subscription-tracker/internal/repositories"
)

// StateStore reads and writes an owner's state as whole-value documents.
// Signed-in owners live in the relational backend, signed-out owners in the
// in-process backend. Writes replace the stored value; expectedVersion > 0
// turns a write into a compare-and-swap.
type StateStore struct {
	remote   repositories.StateDocumentRepositoryInterface
	local    repositories.StateDocumentRepositoryInterface
	metrics  MetricsRecorderInterface
	activity ActivityLoggerInterface
	logger   *slog.Logger
}

func NewStateStore(
	remote repositories.StateDocumentRepositoryInterface,
	local repositories.StateDocumentRepositoryInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
	logger *slog.Logger,
) StateStoreInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &StateStore{
		remote:   remote,
		local:    local,
		metrics:  metrics,
		activity: activity,
		logger:   logger,
	}
}

func (s *StateStore) backend(owner models.Owner) repositories.StateDocumentRepositoryInterface {
	if owner.Remote {
		return s.remote
	}
	return s.local
}

// Load returns the owner's full state. Documents that fail to decode are
// treated as never written. For a signed-in owner that also carries a client
// id, the signed-out preferences are the fallback for any field the remote
// preferences document leaves out.
func (s *StateStore) Load(ctx context.Context, owner models.Owner) (*models.SubscriptionState, error) {
	docs, err := s.backend(owner).GetAll(ctx, owner.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	state := models.NewSubscriptionState()
	for _, doc := range docs {
		if err := s.decodeInto(state, doc); err != nil {
			s.logger.WarnContext(ctx, "ignoring undecodable state document",
				slog.String("owner", owner.Key),
				slog.String("kind", string(doc.Kind)),
				slog.String("error", err.Error()),
			)
			continue
		}
		state.Versions[doc.Kind] = doc.Version
	}

	prefs := models.DefaultPreferences()
	if local, ok := owner.Local(); ok && owner.Remote {
		if doc, err := s.local.Get(ctx, local.Key, models.DocumentPreferences); err == nil {
			var patch models.PreferencesPatch
			if json.Unmarshal([]byte(doc.Payload), &patch) == nil {
				prefs = prefs.Apply(&patch)
			}
		} else if !errors.Is(err, repositories.ErrStateDocumentNotFound) {
			s.logger.WarnContext(ctx, "failed to read local preferences", slog.String("error", err.Error()))
		}
	}
	state.Preferences = prefs.Apply(state.PreferencesPatch)

	return state, nil
}

func (s *StateStore) decodeInto(state *models.SubscriptionState, doc models.StateDocument) error {
	payload := []byte(doc.Payload)

	switch doc.Kind {
	case models.DocumentDetected:
		var vendors []models.DetectedVendor
		if err := json.Unmarshal(payload, &vendors); err != nil {
			return err
		}
		if vendors != nil {
			state.Detected = vendors
		}
	case models.DocumentCanceled:
		var ids []string
		if err := json.Unmarshal(payload, &ids); err != nil {
			return err
		}
		if ids != nil {
			state.CanceledIDs = ids
		}
	case models.DocumentRemoved:
		var ids []string
		if err := json.Unmarshal(payload, &ids); err != nil {
			return err
		}
		if ids != nil {
			state.RemovedIDs = ids
		}
	case models.DocumentCustom:
		var entries []models.Subscription
		if err := json.Unmarshal(payload, &entries); err != nil {
			return err
		}
		if entries != nil {
			state.Custom = entries
		}
	case models.DocumentPreferences:
		var patch models.PreferencesPatch
		if err := json.Unmarshal(payload, &patch); err != nil {
			return err
		}
		state.PreferencesPatch = &patch
	default:
		return fmt.Errorf("unknown document kind %q", doc.Kind)
	}
	return nil
}

func (s *StateStore) SetDetected(ctx context.Context, owner models.Owner, vendors []models.DetectedVendor, expectedVersion int) (int, error) {
	if vendors == nil {
		vendors = []models.DetectedVendor{}
	}
	return s.put(ctx, owner, models.DocumentDetected, vendors, expectedVersion)
}

func (s *StateStore) SetCanceledIDs(ctx context.Context, owner models.Owner, ids []string, expectedVersion int) (int, error) {
	if ids == nil {
		ids = []string{}
	}
	return s.put(ctx, owner, models.DocumentCanceled, ids, expectedVersion)
}

func (s *StateStore) SetRemovedIDs(ctx context.Context, owner models.Owner, ids []string, expectedVersion int) (int, error) {
	if ids == nil {
		ids = []string{}
	}
	return s.put(ctx, owner, models.DocumentRemoved, ids, expectedVersion)
}

func (s *StateStore) SetCustom(ctx context.Context, owner models.Owner, entries []models.Subscription, expectedVersion int) (int, error) {
	stored := make([]models.Subscription, len(entries))
	for i, entry := range entries {
		entry.Avatar = nil
		entry.RenewsInDays = nil
		stored[i] = entry
	}
	return s.put(ctx, owner, models.DocumentCustom, stored, expectedVersion)
}

// SetPreferences writes the full preferences. A signed-in owner's local copy
// is refreshed as well so both stay in step.
func (s *StateStore) SetPreferences(ctx context.Context, owner models.Owner, prefs models.Preferences, expectedVersion int) (int, error) {
	patch := prefs.Normalize().Patch()

	version, err := s.put(ctx, owner, models.DocumentPreferences, patch, expectedVersion)
	if err != nil {
		return 0, err
	}

	if local, ok := owner.Local(); ok && owner.Remote {
		if _, err := s.put(ctx, local, models.DocumentPreferences, patch, 0); err != nil {
			s.logger.WarnContext(ctx, "failed to mirror preferences locally", slog.String("error", err.Error()))
		}
	}

	return version, nil
}

func (s *StateStore) Reset(ctx context.Context, owner models.Owner) error {
	if err := s.backend(owner).DeleteAll(ctx, owner.Key); err != nil {
		return fmt.Errorf("failed to reset state: %w", err)
	}
	if local, ok := owner.Local(); ok && owner.Remote {
		if err := s.local.DeleteAll(ctx, local.Key); err != nil {
			s.logger.WarnContext(ctx, "failed to reset local state", slog.String("error", err.Error()))
		}
	}
	return nil
}

func (s *StateStore) put(ctx context.Context, owner models.Owner, kind models.DocumentKind, value interface{}, expectedVersion int) (int, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", kind, err)
	}

	doc := &models.StateDocument{
		OwnerKey: owner.Key,
		Kind:     kind,
		Payload:  string(payload),
	}

	if err := s.backend(owner).Put(ctx, doc, expectedVersion); err != nil {
		if errors.Is(err, models.ErrStaleWrite) {
			s.metrics.IncrementCounter("state.stale_write", map[string]string{"kind": string(kind)})
			s.activity.LogStaleWrite(ctx, owner, kind, expectedVersion)
			return 0, err
		}
		return 0, fmt.Errorf("failed to write %s: %w", kind, err)
	}

	return doc.Version, nil
}
