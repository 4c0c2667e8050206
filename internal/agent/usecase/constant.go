package usecase

// Completion temperatures. The JSON-producing steps run cold for
// deterministic output; the text-producing steps get some room.
const (
	classifyTemperature     = 0.1
	extractTemperature      = 0.2
	adviceTemperature       = 0.7
	conversationTemperature = 0.7

	classifyMaxTokens = 128
	extractMaxTokens  = 512
	adviceMaxTokens   = 512
	converseMaxTokens = 512
)

// MaxTitleLength is the hard cap on a stored task title, in runes.
const MaxTitleLength = 200

// FallbackAdvice replaces the generated tips when advice generation fails.
// Task creation still succeeds with this text attached.
const FallbackAdvice = "Good luck with your task! Break it down into smaller steps and tackle them one at a time."

// FallbackGreeting replaces the conversational reply when the completion
// service is unavailable.
const FallbackGreeting = "Hi! I'm your task assistant. Tell me about something you need to do, like \"remind me to call the dentist tomorrow\", and I'll save it for you."
