package services

import (
	"net/url"
	"sort"
	"strings"

	"subscription-tracker/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// serviceFamily collapses the many directory labels of one product ("ChatGPT
// Plus (iOS)", "ChatGPT (web)") onto a single canonical option.
type serviceFamily struct {
	prefix   string
	name     string
	webHosts []string
}

var serviceFamilies = []serviceFamily{
	{prefix: "chatgpt", name: "ChatGPT", webHosts: []string{"chatgpt.com", "openai.com", "help.openai.com"}},
	{prefix: "claude", name: "Claude", webHosts: []string{"claude.ai", "anthropic.com"}},
}

const (
	rankNone = iota
	rankWebLabel
	rankWebHost
)

type canonicalEntry struct {
	option models.DirectoryOption
	rank   int
}

// CanonicalizeDirectory folds rows into one option per canonical service,
// sorted by name with English collation. When several rows share an id, a
// row whose cancel URL is on the family's own web host wins over a row
// labelled "(web)", which wins over anything else; ties go to the later row.
func CanonicalizeDirectory(rows []models.DirectoryRow) []models.DirectoryOption {
	entries := make(map[string]*canonicalEntry)
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		raw := strings.TrimSpace(row.Service)
		if raw == "" {
			continue
		}

		family, hasFamily := familyOf(raw)
		name := raw
		if hasFamily {
			name = family.name
		}

		id := models.Slugify(name)
		if id == "" {
			continue
		}

		rank := preferenceRank(raw, row.CancelURLHint, family, hasFamily)
		incoming := models.DirectoryOption{
			ID:        id,
			Name:      name,
			CancelURL: strings.TrimSpace(row.CancelURLHint),
			Flow:      strings.TrimSpace(row.Flow),
			Region:    strings.TrimSpace(row.Region),
		}

		existing, ok := entries[id]
		if !ok {
			entries[id] = &canonicalEntry{option: incoming, rank: rank}
			order = append(order, id)
			continue
		}

		if rank > rankNone && rank >= existing.rank {
			existing.option.CancelURL = firstNonEmpty(incoming.CancelURL, existing.option.CancelURL)
			existing.option.Flow = firstNonEmpty(incoming.Flow, existing.option.Flow)
			existing.rank = rank
		}
	}

	options := make([]models.DirectoryOption, 0, len(order))
	for _, id := range order {
		options = append(options, entries[id].option)
	}

	SortOptionsByName(options)
	return options
}

// SortOptionsByName orders options with locale-aware collation; equal names
// fall back to id so the order is total.
func SortOptionsByName(options []models.DirectoryOption) {
	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(options, func(i, j int) bool {
		if c := col.CompareString(options[i].Name, options[j].Name); c != 0 {
			return c < 0
		}
		return options[i].ID < options[j].ID
	})
}

func familyOf(name string) (serviceFamily, bool) {
	lower := strings.ToLower(name)
	for _, family := range serviceFamilies {
		if strings.HasPrefix(lower, family.prefix) {
			return family, true
		}
	}
	return serviceFamily{}, false
}

func preferenceRank(label, cancelURL string, family serviceFamily, hasFamily bool) int {
	if hasFamily && hostMatches(cancelURL, family.webHosts) {
		return rankWebHost
	}
	if strings.Contains(strings.ToLower(label), "(web)") {
		return rankWebLabel
	}
	return rankNone
}

func hostMatches(rawURL string, hosts []string) bool {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return false
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	for _, h := range hosts {
		if host == h {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
