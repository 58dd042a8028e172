package model

// Scope identifies the caller of a request. Anonymous callers have an empty UserID.
type Scope struct {
	UserID string
	Source string // "web", "telegram"
}

const (
	SourceWeb      = "web"
	SourceTelegram = "telegram"
)
