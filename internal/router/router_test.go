package router

import "testing"

func TestClassify(t *testing.T) {
	r := New()

	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"plain greeting", "hello", IntentGreeting},
		{"upper case with punctuation", "HEY!!!", IntentGreeting},
		{"multi word greeting", "Good Morning, assistant", IntentGreeting},
		{"thanks", "thanks a lot", IntentThanks},
		{"thx", "thx", IntentThanks},
		{"appreciate", "I really APPRECIATE it.", IntentThanks},
		{"greeting beats thanks", "hello and thank you", IntentGreeting},
		{"domain", "add buy milk to my list", IntentDomain},
		{"empty", "", IntentDomain},
		// substring matching: "this" contains "hi"
		{"substring match", "delete this task", IntentGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestIntentReply(t *testing.T) {
	if reply, ok := IntentGreeting.Reply(); !ok || reply != ReplyGreeting {
		t.Errorf("unexpected greeting reply %q", reply)
	}
	if reply, ok := IntentThanks.Reply(); !ok || reply != ReplyThanks {
		t.Errorf("unexpected thanks reply %q", reply)
	}
	if _, ok := IntentDomain.Reply(); ok {
		t.Error("domain intent must not have a canned reply")
	}
}
