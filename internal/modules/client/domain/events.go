package domain

// Extension message types relayed to the blocker.
const (
	MessageStart  = "START_SESSION"
	MessageUpdate = "UPDATE_BLOCKLIST"
	MessageEnd    = "END_SESSION"
)

// Notification kinds understood by the notifier.
const (
	NotifyStart     = "start"
	NotifyEnd       = "end"
	NotifyAbort     = "abort"
	NotifyBreakOver = "break_over"
)
