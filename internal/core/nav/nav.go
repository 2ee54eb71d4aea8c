// Package nav defines how rendered items ask the host to move somewhere.
package nav

// ShowConversationArgs identifies a conversation and, optionally, the
// message to scroll to.
type ShowConversationArgs struct {
	ConversationID string
	MessageID      string
}

// Navigator opens conversations on behalf of rendered items.
type Navigator interface {
	ShowConversation(args ShowConversationArgs)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(args ShowConversationArgs)

// ShowConversation calls f(args).
func (f NavigatorFunc) ShowConversation(args ShowConversationArgs) {
	f(args)
}
