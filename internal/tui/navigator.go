package tui

import (
	"github.com/colonyops/msgview/internal/core/logging"
	"github.com/colonyops/msgview/internal/core/nav"
)

// statusNavigator stands in for the host application. Navigation requests
// are logged and shown as a toast.
type statusNavigator struct {
	toasts *ToastController
}

func (n *statusNavigator) ShowConversation(args nav.ShowConversationArgs) {
	log := logging.Component("tui")
	log.Info().
		Str("conversation_id", args.ConversationID).
		Str("message_id", args.MessageID).
		Msg("show conversation")

	msg := "Open conversation " + args.ConversationID
	if args.MessageID != "" {
		msg += " at " + args.MessageID
	}
	n.toasts.Push(ToastInfo, msg)
}
