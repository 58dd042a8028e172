package router

// Keyword sets. Matching is a case-insensitive substring check, so "hi"
// also fires inside longer words; that looseness is accepted.
var (
	greetingTokens = []string{
		"hi", "hello", "hey", "greetings",
		"good morning", "good afternoon", "good evening", "howdy",
	}

	thanksTokens = []string{
		"thank", "thanks", "appreciate", "grateful", "thx",
	}
)

// Canned replies for messages that never reach the model.
const (
	ReplyGreeting = "Hello! I'm your AI assistant. I can help you manage tasks and schedule meetings. How can I help you today?"
	ReplyThanks   = "You're welcome! Let me know if you need help with tasks or meetings."
)
