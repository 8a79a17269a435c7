package models

const (
	SortByName  = "name"
	SortByPrice = "price"
)

// Preferences are the per-owner display settings.
type Preferences struct {
	HiddenIDs       []string `json:"hiddenIds"`
	Sort            string   `json:"sort"`
	ShowSuggestions bool     `json:"showSuggestions"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		HiddenIDs:       []string{},
		Sort:            SortByName,
		ShowSuggestions: true,
	}
}

// PreferencesPatch is a stored preferences document where any field may be
// missing. Missing fields fall back to the other copy on merge.
type PreferencesPatch struct {
	HiddenIDs       *[]string `json:"hiddenIds,omitempty"`
	Sort            *string   `json:"sort,omitempty"`
	ShowSuggestions *bool     `json:"showSuggestions,omitempty"`
}

// Apply overlays every field present in the patch onto p.
func (p Preferences) Apply(patch *PreferencesPatch) Preferences {
	if patch == nil {
		return p
	}

	out := p
	if patch.HiddenIDs != nil {
		out.HiddenIDs = append([]string{}, (*patch.HiddenIDs)...)
	}
	if patch.Sort != nil && IsValidSortOrder(*patch.Sort) {
		out.Sort = *patch.Sort
	}
	if patch.ShowSuggestions != nil {
		out.ShowSuggestions = *patch.ShowSuggestions
	}
	return out.Normalize()
}

// Normalize fills zero values with defaults.
func (p Preferences) Normalize() Preferences {
	if p.HiddenIDs == nil {
		p.HiddenIDs = []string{}
	}
	if !IsValidSortOrder(p.Sort) {
		p.Sort = SortByName
	}
	return p
}

func (p Preferences) Patch() *PreferencesPatch {
	hidden := append([]string{}, p.HiddenIDs...)
	sort := p.Sort
	show := p.ShowSuggestions
	return &PreferencesPatch{HiddenIDs: &hidden, Sort: &sort, ShowSuggestions: &show}
}

func IsValidSortOrder(order string) bool {
	return order == SortByName || order == SortByPrice
}
