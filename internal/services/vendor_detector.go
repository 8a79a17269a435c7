package services

import (
	"regexp"

	"subscription-tracker/internal/models"
)

// VendorRule recognises one vendor in message metadata.
type VendorRule struct {
	ID      string
	Name    string
	Pattern *regexp.Regexp
}

// DefaultVendorRules is checked in order against every message. One message
// can name several vendors.
var DefaultVendorRules = []VendorRule{
	{ID: "amazon-prime", Name: "Amazon Prime", Pattern: regexp.MustCompile(`(?i)(amazon\.com|amazon prime|prime video|amazon digital)`)},
	{ID: "netflix", Name: "Netflix", Pattern: regexp.MustCompile(`(?i)netflix`)},
	{ID: "spotify", Name: "Spotify", Pattern: regexp.MustCompile(`(?i)spotify`)},
	{ID: "adobe-cc", Name: "Adobe Creative Cloud", Pattern: regexp.MustCompile(`(?i)adobe( creative| cc)?`)},
	{ID: "chatgpt", Name: "ChatGPT", Pattern: regexp.MustCompile(`(?i)(openai|chatgpt)`)},
	{ID: "youtube-premium", Name: "YouTube Premium", Pattern: regexp.MustCompile(`(?i)(youtube premium|youtube music)`)},
	{ID: "apple", Name: "Apple", Pattern: regexp.MustCompile(`(?i)(apple\.com/bill|apple receipt|itunes|app store)`)},
}

// VendorDetector maps billing messages to the vendors that sent them.
type VendorDetector struct {
	rules []VendorRule
}

func NewVendorDetector(rules []VendorRule) *VendorDetector {
	if rules == nil {
		rules = DefaultVendorRules
	}
	return &VendorDetector{rules: rules}
}

// Detect returns each matched vendor once, in order of first appearance.
// Every rule is tried against every message; within a message vendors are
// reported in rule order.
func (d *VendorDetector) Detect(messages []models.MessageMetadata) []models.DetectedVendor {
	detected := make([]models.DetectedVendor, 0)
	seen := make(map[string]bool)

	for _, msg := range messages {
		for _, rule := range d.rules {
			if seen[rule.ID] || !matches(rule, msg) {
				continue
			}
			seen[rule.ID] = true
			detected = append(detected, models.DetectedVendor{ID: rule.ID, Name: rule.Name})
		}
	}

	return detected
}

// matches tries from, subject, snippet and list id in that order.
func matches(rule VendorRule, msg models.MessageMetadata) bool {
	for _, field := range [...]string{msg.From, msg.Subject, msg.Snippet, msg.ListID} {
		if field != "" && rule.Pattern.MatchString(field) {
			return true
		}
	}
	return false
}
