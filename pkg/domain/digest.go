package domain

import "time"

// Role is the author of a message in a run transcript
type Role string

// enum of message roles
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a role-tagged entry of a run transcript
type Message struct {
	Role    Role   `json:"role"`
	Node    string `json:"node,omitempty"`
	Content string `json:"content"`
}

// ToolCall records a tool invocation requested by a task node
type ToolCall struct {
	Node string         `json:"agent"`
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
}

// HistoryEntry is a stored digest
type HistoryEntry struct {
	Digest    string `json:"digest" db:"digest"`
	Timestamp string `json:"timestamp" db:"created_at"`
}

// DigestResult is the outcome of a digest run
type DigestResult struct {
	Digest      string     `json:"digest"`
	GeneratedAt string     `json:"generated_at"`
	ToolCalls   []ToolCall `json:"tool_calls"`
}

// TimestampLayout is the ISO-8601 layout used for history timestamps
const TimestampLayout = time.RFC3339
