package telegram

const (
	cmdStart = "/start"
	cmdHelp  = "/help"

	msgStart = "👋 Welcome! I'm your personal assistant.\n\nI can:\n• 📝 Keep a task list (add, complete, delete, list)\n• 📅 Schedule meetings from phrases like \"tomorrow at 2pm\"\n\nSend /help for examples."
	msgHelp  = "Try messages like:\n• Add a task to buy milk\n• Mark the milk task as complete\n• Show my tasks\n• Schedule a meeting with Bob tomorrow at 2pm\n• What meetings do I have?\n• Delete the meeting with Bob"
)
