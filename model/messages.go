package model

import "hrtui/ollama"

// AgentReplyMsg carries the cleaned reply for one user question.
type AgentReplyMsg struct {
	Reply string
}

// AgentErrorMsg is emitted when the agent run fails.
type AgentErrorMsg struct {
	Err error
}

// DisplayChunkTickMsg drives the typewriter reveal of a finished reply.
type DisplayChunkTickMsg struct{}

type ModelsListMsg struct {
	Models []ollama.ModelInfo
	Err    error
}

type ReplyCopiedMsg struct {
	Err error
}
