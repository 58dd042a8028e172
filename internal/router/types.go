package router

// Intent is the coarse category of an incoming chat message.
type Intent string

const (
	IntentGreeting Intent = "GREETING"
	IntentThanks   Intent = "THANKS"
	IntentDomain   Intent = "DOMAIN"
)

// Reply returns the canned answer for small-talk intents.
// ok is false for IntentDomain, which must go to the model.
func (i Intent) Reply() (reply string, ok bool) {
	switch i {
	case IntentGreeting:
		return ReplyGreeting, true
	case IntentThanks:
		return ReplyThanks, true
	default:
		return "", false
	}
}
