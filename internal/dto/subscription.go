package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"subscription-tracker/internal/models"
)

// PriceInput is a price as typed by the user. Clients may send it as a JSON
// number or as a string; validation happens on the text either way.
type PriceInput string

// UnmarshalJSON accepts a JSON string, number or null
func (p *PriceInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*p = PriceInput(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("%w: %s", models.ErrPriceNotNumeric, string(trimmed))
	}
	*p = PriceInput(n.String())
	return nil
}

// Float parses and validates the price, rounded to cents
func (p PriceInput) Float() (float64, error) {
	value, err := models.ParsePrice(string(p))
	if err != nil {
		return 0, err
	}
	f, _ := value.Float64()
	return f, nil
}

// Subscription Request DTOs

// PriceEditRequest updates the price, cadence and reminders of a subscription
type PriceEditRequest struct {
	PricePerMonthUSD PriceInput `json:"pricePerMonthUsd" validate:"required,subscription_price"`
	Cadence          string     `json:"cadence" validate:"omitempty,cadence"`
	NextChargeAt     string     `json:"nextChargeAt" validate:"omitempty,iso_date"`
	NotifyEmail      bool       `json:"notifyEmail"`
	NotifyPush       bool       `json:"notifyPush"`
}

// ToPriceEdit converts a validated request into the domain edit
func (r *PriceEditRequest) ToPriceEdit() (models.PriceEdit, error) {
	price, err := r.PricePerMonthUSD.Float()
	if err != nil {
		return models.PriceEdit{}, err
	}
	return models.PriceEdit{
		PricePerMonthUSD: price,
		Cadence:          r.Cadence,
		NextChargeAt:     strings.TrimSpace(r.NextChargeAt),
		NotifyEmail:      r.NotifyEmail,
		NotifyPush:       r.NotifyPush,
	}, nil
}

// CustomSubscriptionRequest adds a manually entered subscription
type CustomSubscriptionRequest struct {
	Name             string     `json:"name" validate:"max=100"`
	PricePerMonthUSD PriceInput `json:"pricePerMonthUsd" validate:"required,subscription_price"`
	Cadence          string     `json:"cadence" validate:"omitempty,cadence"`
	NextChargeAt     string     `json:"nextChargeAt" validate:"omitempty,iso_date"`
	CancelURL        string     `json:"cancelUrl" validate:"omitempty,url,max=2048"`
	NotifyEmail      bool       `json:"notifyEmail"`
	NotifyPush       bool       `json:"notifyPush"`
}

// ToInput converts a validated request into the domain input
func (r *CustomSubscriptionRequest) ToInput() (models.CustomEntryInput, error) {
	edit := PriceEditRequest{
		PricePerMonthUSD: r.PricePerMonthUSD,
		Cadence:          r.Cadence,
		NextChargeAt:     r.NextChargeAt,
		NotifyEmail:      r.NotifyEmail,
		NotifyPush:       r.NotifyPush,
	}
	price, err := edit.ToPriceEdit()
	if err != nil {
		return models.CustomEntryInput{}, err
	}
	return models.CustomEntryInput{
		Name:      strings.TrimSpace(r.Name),
		Price:     price,
		CancelURL: strings.TrimSpace(r.CancelURL),
	}, nil
}

// DirectoryPickRequest adds a directory option as a pending subscription
type DirectoryPickRequest struct {
	OptionID string `json:"optionId" validate:"required,max=255"`
}

// Subscription Response DTOs

// OpenCancelResponse carries the cancellation page a client should open
type OpenCancelResponse struct {
	SubscriptionID string `json:"subscriptionId"`
	CancelURL      string `json:"cancelUrl"`
}
