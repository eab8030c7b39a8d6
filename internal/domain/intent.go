package domain

type Action string

const (
	ActionSearch   Action = "search"
	ActionLaunch   Action = "launch"
	ActionPlay     Action = "play"
	ActionPower    Action = "power"
	ActionNavigate Action = "navigate"
	ActionVolume   Action = "volume"
	ActionUnknown  Action = "unknown"
)

type ParsedIntent struct {
	Action Action `json:"action"`
	Target string `json:"target,omitempty"`
	Query  string `json:"query,omitempty"`
}
