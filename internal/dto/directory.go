package dto

import "subscription-tracker/internal/models"

// DirectoryResponse is the full canonical directory
type DirectoryResponse struct {
	Options []models.DirectoryOption `json:"options"`
	Count   int                      `json:"count"`
}

// DirectorySearchResponse holds the best matches for a search query
type DirectorySearchResponse struct {
	Query   string                   `json:"query"`
	Results []models.DirectoryOption `json:"results"`
}
