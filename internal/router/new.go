package router

// Router classifies chat messages before any model call.
type Router interface {
	Classify(message string) Intent
}

// KeywordRouter is a stateless rule based Router.
type KeywordRouter struct {
	greetings []string
	thanks    []string
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter with the built-in keyword sets.
func New() *KeywordRouter {
	return &KeywordRouter{
		greetings: greetingTokens,
		thanks:    thanksTokens,
	}
}
