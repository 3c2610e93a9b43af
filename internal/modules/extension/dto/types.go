package dto

type Entry struct {
	Type  string
	Value string
}

// Message is what the client relays to the blocker. Type is one of
// START_SESSION, UPDATE_BLOCKLIST or END_SESSION.
type Message struct {
	Type      string
	SessionID string
	Token     string
	Duration  int
	Blocklist []Entry
}

type Decision struct {
	URL      string
	Host     string
	Blocked  bool
	RuleID   int
	Reported bool
}

type Rule struct {
	ID     int
	Domain string
}

type Tab struct {
	ID      int
	URL     string
	Reloads int
}

type Status struct {
	Active    bool
	SessionID string
	Rules     []Rule
	Tabs      []Tab
}

type DoctorResult struct {
	Name            string
	Version         string
	Binary          string
	ManifestValid   bool
	BinaryReachable bool
	ChecksumValid   bool
	HandshakeOK     bool
	Error           string
}
