package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"subscription-tracker/internal/models"
)

var (
	// ErrUnknownCommandType is returned for a missing or unrecognised "type"
	ErrUnknownCommandType = errors.New("unknown state command type")
	// ErrMalformedCommand is returned when a payload does not match its type
	ErrMalformedCommand = errors.New("malformed state command")
)

// StateCommandRequest is the tagged body of POST /subscriptions/state.
// The "type" field selects exactly one payload shape; fields belonging to
// another shape are rejected.
type StateCommandRequest struct {
	Type    string
	Command models.StateCommand
}

type preferencesPayload struct {
	HiddenIDs       []string `json:"hiddenIds"`
	Sort            string   `json:"sort"`
	ShowSuggestions *bool    `json:"showSuggestions"`
}

type setPreferencesPayload struct {
	Type            string             `json:"type"`
	Preferences     preferencesPayload `json:"preferences"`
	ExpectedVersion int                `json:"expectedVersion"`
}

type setIDsPayload struct {
	Type            string   `json:"type"`
	IDs             []string `json:"ids"`
	ExpectedVersion int      `json:"expectedVersion"`
}

type customEntryPayload struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	PricePerMonthUSD PriceInput `json:"pricePerMonthUsd"`
	CancelURL        string     `json:"cancelUrl"`
	Cadence          string     `json:"cadence"`
	NextChargeAt     string     `json:"nextChargeAt"`
	WebsiteURL       string     `json:"websiteUrl"`
	NotifyEmail      bool       `json:"notifyEmail"`
	NotifyPush       bool       `json:"notifyPush"`
	PendingPrice     bool       `json:"pendingPrice"`
}

type customPayload struct {
	Type            string             `json:"type"`
	Entry           customEntryPayload `json:"entry"`
	ExpectedVersion int                `json:"expectedVersion"`
}

type resetPayload struct {
	Type string `json:"type"`
}

// UnmarshalJSON decodes the envelope, then the payload for its type
func (r *StateCommandRequest) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}

	r.Type = envelope.Type

	switch envelope.Type {
	case models.CommandSetPreferences:
		var p setPreferencesPayload
		if err := decodeStrict(data, &p); err != nil {
			return err
		}
		if err := checkVersion(p.ExpectedVersion); err != nil {
			return err
		}
		if p.Preferences.Sort != "" && !models.IsValidSortOrder(p.Preferences.Sort) {
			return fmt.Errorf("%w: preferences.sort must be name or price", ErrMalformedCommand)
		}
		prefs := models.DefaultPreferences()
		if p.Preferences.HiddenIDs != nil {
			prefs.HiddenIDs = p.Preferences.HiddenIDs
		}
		if p.Preferences.Sort != "" {
			prefs.Sort = p.Preferences.Sort
		}
		if p.Preferences.ShowSuggestions != nil {
			prefs.ShowSuggestions = *p.Preferences.ShowSuggestions
		}
		r.Command = models.SetPreferencesCommand{Preferences: prefs, ExpectedVersion: p.ExpectedVersion}

	case models.CommandSetCanceledIDs, models.CommandSetRemovedIDs:
		var p setIDsPayload
		if err := decodeStrict(data, &p); err != nil {
			return err
		}
		if err := checkVersion(p.ExpectedVersion); err != nil {
			return err
		}
		ids := cleanIDs(p.IDs)
		if envelope.Type == models.CommandSetCanceledIDs {
			r.Command = models.SetCanceledIDsCommand{IDs: ids, ExpectedVersion: p.ExpectedVersion}
		} else {
			r.Command = models.SetRemovedIDsCommand{IDs: ids, ExpectedVersion: p.ExpectedVersion}
		}

	case models.CommandUpsertCustom, models.CommandAddCustom:
		var p customPayload
		if err := decodeStrict(data, &p); err != nil {
			return err
		}
		if err := checkVersion(p.ExpectedVersion); err != nil {
			return err
		}
		entry, err := p.Entry.toSubscription()
		if err != nil {
			return err
		}
		if envelope.Type == models.CommandUpsertCustom {
			r.Command = models.UpsertCustomCommand{Entry: entry, ExpectedVersion: p.ExpectedVersion}
		} else {
			r.Command = models.AddCustomCommand{Entry: entry, ExpectedVersion: p.ExpectedVersion}
		}

	case models.CommandResetAll:
		var p resetPayload
		if err := decodeStrict(data, &p); err != nil {
			return err
		}
		r.Command = models.ResetAllCommand{}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommandType, envelope.Type)
	}

	return nil
}

func (e customEntryPayload) toSubscription() (models.Subscription, error) {
	id := strings.TrimSpace(e.ID)
	name := strings.TrimSpace(e.Name)
	if id == "" || name == "" {
		return models.Subscription{}, fmt.Errorf("%w: entry.id and entry.name are required", ErrMalformedCommand)
	}
	if !models.IsValidCadence(e.Cadence) {
		return models.Subscription{}, fmt.Errorf("%w: entry.cadence must be month or year", ErrMalformedCommand)
	}
	if !models.IsValidNextCharge(e.NextChargeAt) {
		return models.Subscription{}, fmt.Errorf("%w: entry.nextChargeAt must be YYYY-MM-DD", ErrMalformedCommand)
	}

	sub := models.Subscription{
		ID:           id,
		Name:         name,
		CancelURL:    strings.TrimSpace(e.CancelURL),
		Cadence:      e.Cadence,
		NextChargeAt: strings.TrimSpace(e.NextChargeAt),
		WebsiteURL:   strings.TrimSpace(e.WebsiteURL),
		NotifyEmail:  e.NotifyEmail,
		NotifyPush:   e.NotifyPush,
		PendingPrice: e.PendingPrice,
		Source:       models.SourceCustom,
	}

	// A pending directory pick is stored without a price; everything else
	// must carry a valid one.
	if e.PendingPrice && (e.PricePerMonthUSD == "" || e.PricePerMonthUSD == "0") {
		return sub, nil
	}

	price, err := e.PricePerMonthUSD.Float()
	if err != nil {
		return models.Subscription{}, err
	}
	sub.PricePerMonthUSD = price
	sub.PendingPrice = false
	return sub, nil
}

func decodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, models.ErrPriceNotNumeric) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}
	return nil
}

func checkVersion(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: expectedVersion must not be negative", ErrMalformedCommand)
	}
	return nil
}

func cleanIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = models.AddID(out, id)
	}
	return out
}
