package models

import "encoding/json"

// GenerationRequest is a prompt for the external text-generation API.
type GenerationRequest struct {
	Prompt   string
	System   string
	WantJSON bool
}

// GenerationResult holds the raw text and, when JSON was requested and
// could be extracted, the parsed payload.
type GenerationResult struct {
	Text string
	JSON json.RawMessage
}

// Insight is one observation about the user's active subscriptions.
type Insight struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SignInResult is returned once a Google sign-in completes.
type SignInResult struct {
	User         *User
	SessionToken string
	ExpiresIn    int64
}
