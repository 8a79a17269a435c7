package models

import (
	"errors"
	"strings"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidTransition    = errors.New("subscription cannot make this transition")
	ErrNotPending           = errors.New("subscription has no pending price")
	ErrAlreadyActive        = errors.New("subscription is already active")
)

const (
	DefaultCustomName    = "Custom service"
	PlaceholderCancelURL = "#"
)

// Visibility is the view a merged subscription is rendered in.
type Visibility int

const (
	VisibilityActive Visibility = iota
	VisibilityCanceled
	VisibilityRemoved
)

func (v Visibility) String() string {
	switch v {
	case VisibilityCanceled:
		return "canceled"
	case VisibilityRemoved:
		return "removed"
	default:
		return "active"
	}
}

// MergeSubscriptions combines the base list with custom entries keyed by
// normalized id. A custom entry replaces the base entry in place; custom
// entries without a base counterpart are appended in their own order.
func MergeSubscriptions(base, custom []Subscription) []Subscription {
	merged := make([]Subscription, 0, len(base)+len(custom))
	index := make(map[string]int, len(base)+len(custom))

	for _, sub := range base {
		key := sub.Key()
		if i, ok := index[key]; ok {
			merged[i] = sub
			continue
		}
		index[key] = len(merged)
		merged = append(merged, sub)
	}

	for _, sub := range custom {
		key := sub.Key()
		if i, ok := index[key]; ok {
			merged[i] = sub
			continue
		}
		index[key] = len(merged)
		merged = append(merged, sub)
	}

	return merged
}

// HiddenSet is removedIds plus preferences.hiddenIds.
func (s *SubscriptionState) HiddenSet() IDSet {
	return NewIDSet(s.RemovedIDs, s.Preferences.HiddenIDs)
}

// VisibilityOf reports the view id falls in. Removal is checked before
// cancellation.
func (s *SubscriptionState) VisibilityOf(id string) Visibility {
	if s.HiddenSet().Has(id) {
		return VisibilityRemoved
	}
	if ContainsID(s.CanceledIDs, id) {
		return VisibilityCanceled
	}
	return VisibilityActive
}

func (s *SubscriptionState) lookup(base []Subscription, id string) (Subscription, bool) {
	key := NormalizeID(id)
	for _, sub := range MergeSubscriptions(base, s.Custom) {
		if sub.Key() == key {
			return sub, true
		}
	}
	return Subscription{}, false
}

// Find returns the merged subscription with the given id.
func (s *SubscriptionState) Find(base []Subscription, id string) (Subscription, bool) {
	return s.lookup(base, id)
}

// Cancel moves an active subscription to the canceled view.
func (s *SubscriptionState) Cancel(base []Subscription, id string) ([]DocumentKind, error) {
	sub, ok := s.lookup(base, id)
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	if s.VisibilityOf(sub.ID) != VisibilityActive {
		return nil, ErrInvalidTransition
	}

	s.CanceledIDs = AddID(s.CanceledIDs, sub.ID)
	return []DocumentKind{DocumentCanceled}, nil
}

// Remove hides an active or canceled subscription. The canceled flag is
// kept so a later restore returns the entry to the canceled view.
func (s *SubscriptionState) Remove(base []Subscription, id string) ([]DocumentKind, error) {
	sub, ok := s.lookup(base, id)
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	if s.VisibilityOf(sub.ID) == VisibilityRemoved {
		return nil, ErrInvalidTransition
	}

	s.RemovedIDs = AddID(s.RemovedIDs, sub.ID)
	return []DocumentKind{DocumentRemoved}, nil
}

// Restore takes a removed subscription back to the view it was removed
// from, or a canceled one back to active.
func (s *SubscriptionState) Restore(base []Subscription, id string) ([]DocumentKind, error) {
	sub, ok := s.lookup(base, id)
	if !ok {
		return nil, ErrSubscriptionNotFound
	}

	switch s.VisibilityOf(sub.ID) {
	case VisibilityRemoved:
		var dirty []DocumentKind
		var removed bool
		if s.RemovedIDs, removed = RemoveID(s.RemovedIDs, sub.ID); removed {
			dirty = append(dirty, DocumentRemoved)
		}
		if s.Preferences.HiddenIDs, removed = RemoveID(s.Preferences.HiddenIDs, sub.ID); removed {
			dirty = append(dirty, DocumentPreferences)
		}
		return dirty, nil
	case VisibilityCanceled:
		s.CanceledIDs, _ = RemoveID(s.CanceledIDs, sub.ID)
		return []DocumentKind{DocumentCanceled}, nil
	default:
		return nil, ErrAlreadyActive
	}
}

// PickFromDirectory adds a directory option as a pending entry without a
// price. Picking an option that is already tracked but hidden unhides it.
func (s *SubscriptionState) PickFromDirectory(base []Subscription, opt DirectoryOption) ([]DocumentKind, error) {
	var dirty []DocumentKind
	var removed bool
	if s.RemovedIDs, removed = RemoveID(s.RemovedIDs, opt.ID); removed {
		dirty = append(dirty, DocumentRemoved)
	}
	if s.Preferences.HiddenIDs, removed = RemoveID(s.Preferences.HiddenIDs, opt.ID); removed {
		dirty = append(dirty, DocumentPreferences)
	}

	if _, exists := s.lookup(base, opt.ID); exists {
		if len(dirty) == 0 {
			return nil, ErrAlreadyActive
		}
		return dirty, nil
	}

	cancelURL := strings.TrimSpace(opt.CancelURL)
	if cancelURL == "" {
		cancelURL = PlaceholderCancelURL
	}

	s.Custom = append(s.Custom, Subscription{
		ID:           opt.ID,
		Name:         opt.Name,
		CancelURL:    cancelURL,
		Cadence:      CadenceMonth,
		PendingPrice: true,
		Source:       SourceDirectory,
	})
	return append(dirty, DocumentCustom), nil
}

// EditPrice writes a custom entry carrying the new price for id, creating
// one from the merged entry when needed. The pending flag is cleared.
func (s *SubscriptionState) EditPrice(base []Subscription, id string, edit PriceEdit) ([]DocumentKind, error) {
	sub, ok := s.lookup(base, id)
	if !ok {
		return nil, ErrSubscriptionNotFound
	}

	sub.PricePerMonthUSD = edit.PricePerMonthUSD
	if edit.Cadence != "" {
		sub.Cadence = edit.Cadence
	}
	sub.NextChargeAt = edit.NextChargeAt
	sub.NotifyEmail = edit.NotifyEmail
	sub.NotifyPush = edit.NotifyPush
	sub.PendingPrice = false
	if sub.Source == "" || sub.Source == SourceDefault || sub.Source == SourceDetected {
		sub.Source = SourceCustom
	}

	s.upsertCustom(sub)
	return []DocumentKind{DocumentCustom}, nil
}

// DiscardPending drops a pending directory pick entirely.
func (s *SubscriptionState) DiscardPending(id string) ([]DocumentKind, error) {
	i := s.FindCustom(id)
	if i < 0 || !s.Custom[i].PendingPrice {
		return nil, ErrNotPending
	}

	s.Custom = append(s.Custom[:i:i], s.Custom[i+1:]...)
	return []DocumentKind{DocumentCustom}, nil
}

// AddCustom appends a manually entered subscription under id.
func (s *SubscriptionState) AddCustom(id string, in CustomEntryInput) []DocumentKind {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = DefaultCustomName
	}

	cadence := in.Price.Cadence
	if cadence == "" {
		cadence = CadenceMonth
	}

	s.Custom = append(s.Custom, Subscription{
		ID:               id,
		Name:             name,
		PricePerMonthUSD: in.Price.PricePerMonthUSD,
		CancelURL:        in.CancelURL,
		Cadence:          cadence,
		NextChargeAt:     in.Price.NextChargeAt,
		NotifyEmail:      in.Price.NotifyEmail,
		NotifyPush:       in.Price.NotifyPush,
		Source:           SourceCustom,
	})
	return []DocumentKind{DocumentCustom}
}

// Reset clears every list and restores default preferences.
func (s *SubscriptionState) Reset() []DocumentKind {
	s.Detected = []DetectedVendor{}
	s.CanceledIDs = []string{}
	s.RemovedIDs = []string{}
	s.Custom = []Subscription{}
	s.Preferences = DefaultPreferences()
	return append([]DocumentKind(nil), AllDocumentKinds...)
}

// Apply runs a tagged whole-value command and reports what it changed.
func (s *SubscriptionState) Apply(cmd StateCommand) []DocumentKind {
	switch c := cmd.(type) {
	case SetPreferencesCommand:
		s.Preferences = c.Preferences.Normalize()
		return []DocumentKind{DocumentPreferences}
	case SetCanceledIDsCommand:
		s.CanceledIDs = append([]string{}, c.IDs...)
		return []DocumentKind{DocumentCanceled}
	case SetRemovedIDsCommand:
		s.RemovedIDs = append([]string{}, c.IDs...)
		return []DocumentKind{DocumentRemoved}
	case UpsertCustomCommand:
		s.upsertCustom(c.Entry)
		return []DocumentKind{DocumentCustom}
	case AddCustomCommand:
		if s.FindCustom(c.Entry.ID) >= 0 {
			return nil
		}
		s.Custom = append(s.Custom, c.Entry)
		return []DocumentKind{DocumentCustom}
	case ResetAllCommand:
		return s.Reset()
	}
	return nil
}

func (s *SubscriptionState) upsertCustom(entry Subscription) {
	entry.Avatar = nil
	entry.RenewsInDays = nil

	if i := s.FindCustom(entry.ID); i >= 0 {
		s.Custom[i] = entry
		return
	}
	s.Custom = append(s.Custom, entry)
}

// ExpectedVersion is the optimistic-concurrency version a command carries.
func ExpectedVersion(cmd StateCommand) int {
	switch c := cmd.(type) {
	case SetPreferencesCommand:
		return c.ExpectedVersion
	case SetCanceledIDsCommand:
		return c.ExpectedVersion
	case SetRemovedIDsCommand:
		return c.ExpectedVersion
	case UpsertCustomCommand:
		return c.ExpectedVersion
	case AddCustomCommand:
		return c.ExpectedVersion
	}
	return 0
}
