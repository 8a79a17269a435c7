package models

import "time"

// DetectedVendor is a service recognised in the user's billing email.
type DetectedVendor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MessageMetadata is the subset of a mail message the detector reads.
type MessageMetadata struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Snippet string `json:"snippet"`
	ListID  string `json:"listId"`
}

// ScanResult summarises one inbox scan.
type ScanResult struct {
	Detected        []DetectedVendor `json:"detected"`
	MessagesScanned int              `json:"messagesScanned"`
	ScannedAt       time.Time        `json:"scannedAt"`
}
