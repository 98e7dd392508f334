package errors

import (
	"sync"
	"time"
)

// maxBufferedMessages bounds the TUI message buffer. The status line only
// shows the most recent message, so older ones are dropped once the buffer
// is full.
const maxBufferedMessages = 100

// TUIHandler handles messages by storing them for display in the TUI.
type TUIHandler struct {
	mu        sync.RWMutex
	messages  []Message
	onMessage func(msg Message)
}

type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeInfo:
		return "info"
	case MessageTypeSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// NewTUIHandler creates a handler that buffers messages. onMessage, if not
// nil, is called for every message as it arrives; the TUI uses it to trigger
// a redraw.
func NewTUIHandler(onMessage func(msg Message)) *TUIHandler {
	return &TUIHandler{
		messages:  make([]Message, 0),
		onMessage: onMessage,
	}
}

func (h *TUIHandler) Error(msg string) {
	h.add(msg, MessageTypeError)
}

func (h *TUIHandler) Warning(msg string) {
	h.add(msg, MessageTypeWarning)
}

func (h *TUIHandler) Info(msg string) {
	h.add(msg, MessageTypeInfo)
}

func (h *TUIHandler) Success(msg string) {
	h.add(msg, MessageTypeSuccess)
}

func (h *TUIHandler) add(msg string, msgType MessageType) {
	message := Message{
		Text:      msg,
		Type:      msgType,
		Timestamp: time.Now(),
	}

	h.mu.Lock()
	h.messages = append(h.messages, message)
	if len(h.messages) > maxBufferedMessages {
		h.messages = h.messages[len(h.messages)-maxBufferedMessages:]
	}
	callback := h.onMessage
	h.mu.Unlock()

	if callback != nil {
		callback(message)
	}
}

// GetLatest returns the most recent message, if any.
func (h *TUIHandler) GetLatest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// GetAll returns a copy of the buffered messages, oldest first.
func (h *TUIHandler) GetAll() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}

// Clear discards all buffered messages.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = make([]Message, 0)
}
