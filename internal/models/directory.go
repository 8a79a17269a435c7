package models

import "time"

// DirectoryRow is one parsed line of the cancellation directory CSV.
type DirectoryRow struct {
	Service       string
	CancelURLHint string
	Flow          string
	Region        string
	SupportHint   string
	KnownPaths    string
}

// DirectoryOption is the canonical entry for a service in the directory.
type DirectoryOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CancelURL string `json:"cancelUrl"`
	Flow      string `json:"flow"`
	Region    string `json:"region"`
}

// DirectorySnapshot is the directory as read from its source at one point.
type DirectorySnapshot struct {
	Options    []DirectoryOption
	ETag       string
	ModifiedAt time.Time
}

// Find returns the option with the given id.
func (s *DirectorySnapshot) Find(id string) (DirectoryOption, bool) {
	key := NormalizeID(id)
	for _, opt := range s.Options {
		if opt.ID == key {
			return opt, true
		}
	}
	return DirectoryOption{}, false
}
