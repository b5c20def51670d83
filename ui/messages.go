package ui

import (
	"hrtui/model"
)

// Message type alias so rendering code can stay short
type Message = model.Message

// Aliases for the tea messages defined in the model package
type agentReplyMsg = model.AgentReplyMsg
type agentErrorMsg = model.AgentErrorMsg
type displayChunkTickMsg = model.DisplayChunkTickMsg
type modelsListMsg = model.ModelsListMsg
type replyCopiedMsg = model.ReplyCopiedMsg
