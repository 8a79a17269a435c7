package models

// SubscriptionState is everything stored for one owner.
type SubscriptionState struct {
	Detected    []DetectedVendor `json:"detected"`
	CanceledIDs []string         `json:"canceledIds"`
	RemovedIDs  []string         `json:"removedIds"`
	Custom      []Subscription   `json:"custom"`
	Preferences Preferences      `json:"preferences"`

	// PreferencesPatch is the stored preferences document as written, kept
	// so a local copy can be merged field by field.
	PreferencesPatch *PreferencesPatch `json:"-"`
	Versions         DocumentVersions  `json:"-"`
}

func NewSubscriptionState() *SubscriptionState {
	return &SubscriptionState{
		Detected:    []DetectedVendor{},
		CanceledIDs: []string{},
		RemovedIDs:  []string{},
		Custom:      []Subscription{},
		Preferences: DefaultPreferences(),
		Versions:    DocumentVersions{},
	}
}

// FindCustom returns the index of the custom entry equivalent to id.
func (s *SubscriptionState) FindCustom(id string) int {
	key := NormalizeID(id)
	for i, entry := range s.Custom {
		if entry.Key() == key {
			return i
		}
	}
	return -1
}
