package models

// Chat channel roles as sent to the LLM provider.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one entry of the LLM channel history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript speakers. These are distinct from chat channel roles: the
// visible transcript tags who spoke, not which side of the chat API the
// text travelled on.
const (
	SpeakerCandidate   = "candidate"
	SpeakerInterviewer = "interviewer"
)

// TranscriptEntry is one turn of the human-readable conversation log.
type TranscriptEntry struct {
	Speaker string `json:"role"`
	Content string `json:"content"`
}
