package models

// StateCommand is one whole-value write against an owner's state. Each
// concrete command carries only the payload its type needs.
type StateCommand interface {
	CommandType() string
}

const (
	CommandSetPreferences = "set_preferences"
	CommandSetCanceledIDs = "set_canceled_ids"
	CommandSetRemovedIDs  = "set_removed_ids"
	CommandUpsertCustom   = "upsert_custom"
	CommandAddCustom      = "add_custom"
	CommandResetAll       = "reset_all"
)

type SetPreferencesCommand struct {
	Preferences     Preferences
	ExpectedVersion int
}

type SetCanceledIDsCommand struct {
	IDs             []string
	ExpectedVersion int
}

type SetRemovedIDsCommand struct {
	IDs             []string
	ExpectedVersion int
}

// UpsertCustomCommand merges Entry into an existing custom entry with the
// same id, or appends it.
type UpsertCustomCommand struct {
	Entry           Subscription
	ExpectedVersion int
}

// AddCustomCommand appends Entry only when no custom entry has its id.
type AddCustomCommand struct {
	Entry           Subscription
	ExpectedVersion int
}

type ResetAllCommand struct{}

func (SetPreferencesCommand) CommandType() string { return CommandSetPreferences }
func (SetCanceledIDsCommand) CommandType() string { return CommandSetCanceledIDs }
func (SetRemovedIDsCommand) CommandType() string  { return CommandSetRemovedIDs }
func (UpsertCustomCommand) CommandType() string   { return CommandUpsertCustom }
func (AddCustomCommand) CommandType() string      { return CommandAddCustom }
func (ResetAllCommand) CommandType() string       { return CommandResetAll }

// PriceEdit is the validated content of a price/cadence/reminder edit.
type PriceEdit struct {
	PricePerMonthUSD float64
	Cadence          string
	NextChargeAt     string
	NotifyEmail      bool
	NotifyPush       bool
}

// CustomEntryInput describes a manually added subscription.
type CustomEntryInput struct {
	Name      string
	Price     PriceEdit
	CancelURL string
}
