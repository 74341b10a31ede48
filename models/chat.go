package models

// ReplySource tells where an assistant reply came from.
type ReplySource string

const (
	// ReplySourceInference marks a reply generated by the hosted model.
	ReplySourceInference ReplySource = "inference"
	// ReplySourceCanned marks the fixed placeholder reply.
	ReplySourceCanned ReplySource = "canned"
)

// CannedReply is what the assistant answers when no model is configured.
const CannedReply = "This is a simulated assistant reply. Connect the assistant to an inference API to get real answers."

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply is the answer of POST /api/chat.
type ChatReply struct {
	Reply  string      `json:"reply"`
	Source ReplySource `json:"source"`
}
