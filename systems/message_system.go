package systems

import (
	"ebiten-timecrawl/config"
)

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		MaxMessages: config.MaxMessages,
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageTypeNormal)
}

// AddCombat adds a combat message
func (ml *MessageLog) AddCombat(message string) {
	ml.AddColored(message, MessageTypeCombat)
}

// AddItem adds an item message
func (ml *MessageLog) AddItem(message string) {
	ml.AddColored(message, MessageTypeItem)
}

// AddAlert adds an alert message
func (ml *MessageLog) AddAlert(message string) {
	ml.AddColored(message, MessageTypeAlert)
}

// AddColored adds a message of the given type
func (ml *MessageLog) AddColored(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})
	logger.Debug().Str("message", message).Msg("message log")

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = nil
}
