package router

import "strings"

// Classify returns IntentGreeting if any greeting token occurs in message,
// else IntentThanks if any thanks token occurs, else IntentDomain.
func (r *KeywordRouter) Classify(message string) Intent {
	lower := strings.ToLower(message)

	if containsAny(lower, r.greetings) {
		return IntentGreeting
	}
	if containsAny(lower, r.thanks) {
		return IntentThanks
	}
	return IntentDomain
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
