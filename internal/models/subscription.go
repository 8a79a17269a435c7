package models

import (
	"strings"
	"time"
)

const (
	CadenceMonth = "month"
	CadenceYear  = "year"

	SourceDefault   = "default"
	SourceCustom    = "custom"
	SourceDetected  = "detected"
	SourceDirectory = "directory"

	// NextChargeLayout is the ISO-8601 calendar date format for nextChargeAt.
	NextChargeLayout = "2006-01-02"
)

// Subscription is a single tracked recurring charge as the user sees it.
// PricePerMonthUSD of 0 means the price has not been entered yet.
type Subscription struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	PricePerMonthUSD float64      `json:"pricePerMonthUsd"`
	CancelURL        string       `json:"cancelUrl"`
	Cadence          string       `json:"cadence,omitempty"`
	NextChargeAt     string       `json:"nextChargeAt,omitempty"`
	WebsiteURL       string       `json:"websiteUrl,omitempty"`
	RenewsInDays     *int         `json:"renewsInDays,omitempty"`
	NotifyEmail      bool         `json:"notifyEmail,omitempty"`
	NotifyPush       bool         `json:"notifyPush,omitempty"`
	PendingPrice     bool         `json:"pendingPrice,omitempty"`
	Source           string       `json:"source,omitempty"`
	Avatar           *BrandAvatar `json:"avatar,omitempty"`
}

// BrandAvatar is the initials badge rendered next to a subscription.
type BrandAvatar struct {
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

// Key is the normalized identity used for merging and exclusion checks.
func (s Subscription) Key() string {
	return NormalizeID(s.ID)
}

// EffectiveCadence defaults an unset cadence to monthly.
func (s Subscription) EffectiveCadence() string {
	if s.Cadence == "" {
		return CadenceMonth
	}
	return s.Cadence
}

// HasPrice reports whether a usable price has been entered.
func (s Subscription) HasPrice() bool {
	return s.PricePerMonthUSD > 0
}

// DaysUntilCharge derives renewsInDays from NextChargeAt relative to now.
// Past dates and unparsable values yield false.
func (s Subscription) DaysUntilCharge(now time.Time) (int, bool) {
	if s.NextChargeAt == "" {
		return 0, false
	}

	next, err := time.Parse(NextChargeLayout, s.NextChargeAt)
	if err != nil {
		return 0, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(next.Sub(today).Hours() / 24)
	if days < 0 {
		return 0, false
	}
	return days, true
}

// IsValidCadence accepts the empty cadence as the monthly default.
func IsValidCadence(cadence string) bool {
	switch cadence {
	case "", CadenceMonth, CadenceYear:
		return true
	}
	return false
}

// IsValidNextCharge accepts an empty value or a YYYY-MM-DD date.
func IsValidNextCharge(value string) bool {
	if value == "" {
		return true
	}
	_, err := time.Parse(NextChargeLayout, strings.TrimSpace(value))
	return err == nil
}

// SubscriptionView is the reconciled output rendered by clients.
type SubscriptionView struct {
	Active            []Subscription   `json:"active"`
	Canceled          []Subscription   `json:"canceled"`
	Removed           []Subscription   `json:"removed"`
	Detected          []DetectedVendor `json:"detected"`
	Preferences       Preferences      `json:"preferences"`
	ActiveCount       int              `json:"activeCount"`
	MonthlyTotalUSD   float64          `json:"monthlyTotalUsd"`
	MonthlySavingsUSD float64          `json:"monthlySavingsUsd"`
	Versions          DocumentVersions `json:"versions"`
}
