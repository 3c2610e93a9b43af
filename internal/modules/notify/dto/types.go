package dto

type Event struct {
	Kind    string
	Minutes int
	Title   string
}

// Delivery reports what a notification actually did.
type Delivery struct {
	Sounded bool
	Shown   bool
}

type Preferences struct {
	NotificationsEnabled bool
	Volume               float64
	Muted                bool
}
