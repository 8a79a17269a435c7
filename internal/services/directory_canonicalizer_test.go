package services

import (
	"math/rand"
	"testing"

	"subscription-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionIDs(options []models.DirectoryOption) []string {
	ids := make([]string, len(options))
	for i, opt := range options {
		ids[i] = opt.ID
	}
	return ids
}

func TestCanonicalizeDirectory_CollapsesFamilies(t *testing.T) {
	rows := []models.DirectoryRow{
		{Service: "ChatGPT Plus (iOS)", CancelURLHint: "https://apps.apple.com/account/subscriptions", Flow: "app-store"},
		{Service: "ChatGPT (web)", CancelURLHint: "https://example.com/chatgpt", Flow: "web"},
		{Service: "chatgpt team", CancelURLHint: "https://chatgpt.com/#settings/subscription", Flow: ""},
		{Service: "ChatGPT Android", CancelURLHint: "https://play.google.com/store/account/subscriptions", Flow: "play"},
		{Service: "Claude Pro", CancelURLHint: "https://claude.ai/settings/billing", Region: "global"},
		{Service: "Netflix", CancelURLHint: "https://www.netflix.com/cancelplan", Flow: "web"},
	}

	options := CanonicalizeDirectory(rows)

	require.Equal(t, []string{"chatgpt", "claude", "netflix"}, optionIDs(options))

	chatgpt := options[0]
	assert.Equal(t, "ChatGPT", chatgpt.Name)
	assert.Equal(t, "https://chatgpt.com/#settings/subscription", chatgpt.CancelURL)
	assert.Equal(t, "web", chatgpt.Flow, "an empty preferred value keeps the existing one")

	assert.Equal(t, "Claude", options[1].Name)
	assert.Equal(t, "global", options[1].Region)
}

func TestCanonicalizeDirectory_WebLabelBeatsPlainRow(t *testing.T) {
	rows := []models.DirectoryRow{
		{Service: "Claude (iOS)", CancelURLHint: "https://apps.apple.com/account/subscriptions"},
		{Service: "Claude (web)", CancelURLHint: "https://example.org/claude"},
		{Service: "Claude desktop", CancelURLHint: "https://example.org/desktop"},
	}

	options := CanonicalizeDirectory(rows)

	require.Len(t, options, 1)
	assert.Equal(t, "https://example.org/claude", options[0].CancelURL)
}

func TestCanonicalizeDirectory_WebHostBeatsWebLabel(t *testing.T) {
	rows := []models.DirectoryRow{
		{Service: "Claude (web)", CancelURLHint: "https://example.org/claude"},
		{Service: "Claude Pro", CancelURLHint: "https://www.anthropic.com/billing"},
		{Service: "Claude (web) mirror", CancelURLHint: "https://mirror.example.org"},
	}

	options := CanonicalizeDirectory(rows)

	require.Len(t, options, 1)
	assert.Equal(t, "https://www.anthropic.com/billing", options[0].CancelURL)
}

func TestCanonicalizeDirectory_IDsIndependentOfRowOrder(t *testing.T) {
	rows := ParseDirectoryCSV(sampleDirectoryCSV)
	rows = append(rows,
		models.DirectoryRow{Service: "ChatGPT (web)", CancelURLHint: "https://chatgpt.com/"},
		models.DirectoryRow{Service: "ChatGPT iOS"},
		models.DirectoryRow{Service: "netflix"},
		models.DirectoryRow{Service: "Ärzte Plus"},
		models.DirectoryRow{Service: "apple tv+"},
	)
	want := optionIDs(CanonicalizeDirectory(rows))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.DirectoryRow(nil), rows...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := CanonicalizeDirectory(shuffled)
		assert.Equal(t, want, optionIDs(got))

		seen := map[string]bool{}
		for _, opt := range got {
			assert.False(t, seen[opt.ID], "duplicate id %s", opt.ID)
			seen[opt.ID] = true
		}
	}
}

func TestSortOptionsByName_UsesCollationAndIsIdempotent(t *testing.T) {
	options := []models.DirectoryOption{
		{ID: "zattoo", Name: "Zattoo"},
		{ID: "arzte", Name: "Ärzte Plus"},
		{ID: "apple", Name: "apple tv+"},
		{ID: "audible", Name: "Audible"},
	}

	SortOptionsByName(options)
	first := optionIDs(options)
	assert.Equal(t, []string{"apple", "arzte", "audible", "zattoo"}, first)

	SortOptionsByName(options)
	assert.Equal(t, first, optionIDs(options))
}
