package sysmsg

import (
	"fmt"
	"time"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/timefmt"
)

// VerificationKind is the safety number state the user set.
type VerificationKind string

const (
	Verified    VerificationKind = "verified"
	NotVerified VerificationKind = "not-verified"
)

// Verification reports the user marking a contact's safety number. IsLocal
// is false when the change was made on another device.
type Verification struct {
	Kind    VerificationKind
	IsLocal bool
	Contact Participant
}

// FormatVerification renders a verification notice.
func FormatVerification(loc i18n.Translator, v Verification) (SystemMessage, error) {
	var (
		key  string
		icon Icon
	)
	switch v.Kind {
	case Verified:
		key, icon = "youMarkedAsVerified", IconVerified
	case NotVerified:
		key, icon = "youMarkedAsNotVerified", IconVerifiedNot
	default:
		return SystemMessage{}, fmt.Errorf("%w: %q", ErrUnknownVerification, v.Kind)
	}
	if !v.IsLocal {
		key += "OtherDevice"
	}

	return SystemMessage{
		Icon: icon,
		Lines: []Line{loc.Parts(key, map[string][]body.Segment{
			"name": body.ContactName(v.Contact.Title),
		})},
	}, nil
}

// NumberChange reports a contact moving to a new phone number.
type NumberChange struct {
	Sender    Participant
	Timestamp time.Time
}

// FormatNumberChange renders a number change followed by its relative
// timestamp as seen at now.
func FormatNumberChange(loc i18n.Translator, n NumberChange, now time.Time) (SystemMessage, error) {
	name := n.Sender.Title
	if name == "" {
		name = n.Sender.FirstName
	}

	line := loc.Parts("ChangeNumber--notification", map[string][]body.Segment{
		"sender": body.ContactName(name),
	})
	line = append(line,
		body.Text(" · "),
		body.Text(timefmt.Relative(loc, n.Timestamp, now)),
	)

	return SystemMessage{Icon: IconPhone, Lines: []Line{line}}, nil
}
