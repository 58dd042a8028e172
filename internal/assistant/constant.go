package assistant

// User-facing replies. These strings are part of the chat contract.
const (
	MsgRephrase = "I'm a personal assistant focused on tasks and meetings. Could you please rephrase your request specifically about tasks or meetings?"
	MsgRedirect = "I am a personal assistant focused on helping you manage tasks and meetings. Is there anything specific about tasks or meetings that I can help you with?"
	MsgError    = "Sorry, I encountered an error. Please try again."
	MsgBadDate  = "I had trouble with the date/time. Please try: 'tomorrow at 2pm' or 'December 15 at 14:00'"

	MsgTaskAdded      = "✅ Task added: %s"
	MsgTaskCompleted  = "✅ Marked task '%s' as complete!"
	MsgTaskDeleted    = "🗑️ Deleted task '%s'"
	MsgTaskNotFound   = "❌ Couldn't find a task matching '%s'"
	MsgTasksHeader    = "Here are your tasks:"
	MsgTaskLine       = "- %s (%s)"
	MsgNoTasks        = "You don't have any tasks at the moment."
	MsgMeetingAdded   = "📅 Meeting scheduled: %s"
	MsgMeetingDeleted = "🗑️ Deleted meeting '%s'"
	MsgMeetingMissing = "❌ Couldn't find a meeting matching '%s'"
	MsgMeetingsHeader = "Here are your meetings:"
	MsgMeetingLine    = "- %s at %s"
	MsgNoMeetings     = "You don't have any meetings."

	StatusCompleted = "completed"
	StatusPending   = "pending"

	// MeetingClock is the 12-hour layout used when listing meetings.
	MeetingClock = "03:04 PM"
)

// DomainKeywords keep a model's free-form reply; without one of them in the
// user's message the reply is replaced by MsgRedirect.
var DomainKeywords = []string{"task", "meeting", "schedule"}
