package dto

type Setting struct {
	Name  string
	Value string
	// Default is true when the user never stored a value.
	Default bool
}

type Preferences struct {
	NotificationsEnabled      bool
	NotificationSetupComplete bool
	ExtensionPromptShown      bool
	Volume                    float64
	Muted                     bool
}
