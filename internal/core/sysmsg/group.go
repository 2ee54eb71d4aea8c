package sysmsg

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/i18n"
)

// Change is one entry of a group update. The set of changes is closed.
type Change interface {
	isChange()
}

// AddChange reports contacts added to the group.
type AddChange struct{ Contacts []Participant }

// RemoveChange reports contacts removed from, or leaving, the group.
type RemoveChange struct{ Contacts []Participant }

// RenameChange reports a new group title.
type RenameChange struct{ NewName string }

// AvatarChange reports a new group avatar.
type AvatarChange struct{}

// GeneralChange reports an update with nothing specific to say.
type GeneralChange struct{}

func (AddChange) isChange()     {}
func (RemoveChange) isChange()  {}
func (RenameChange) isChange()  {}
func (AvatarChange) isChange()  {}
func (GeneralChange) isChange() {}

// Change kinds as they appear in fixtures.
const (
	KindAdd     = "add"
	KindRemove  = "remove"
	KindName    = "name"
	KindAvatar  = "avatar"
	KindGeneral = "general"
)

// NewChange builds a Change from its serialized kind.
func NewChange(kind string, contacts []Participant, newName string) (Change, error) {
	switch kind {
	case KindAdd:
		return AddChange{Contacts: contacts}, nil
	case KindRemove:
		return RemoveChange{Contacts: contacts}, nil
	case KindName:
		return RenameChange{NewName: newName}, nil
	case KindAvatar:
		return AvatarChange{}, nil
	case KindGeneral:
		return GeneralChange{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChange, kind)
	}
}

// GroupNotification is a group update made by From.
type GroupNotification struct {
	From    Participant
	Changes []Change
}

// FormatGroup renders a group update. A lone removal renders without the
// "updated the group" header.
func FormatGroup(loc i18n.Translator, n GroupNotification) (SystemMessage, error) {
	msg := SystemMessage{Icon: IconGroup}

	if len(n.Changes) == 1 {
		if rm, ok := n.Changes[0].(RemoveChange); ok {
			line, err := removeLine(loc, n.From, rm)
			if err != nil {
				return SystemMessage{}, err
			}
			msg.Lines = []Line{line}
			return msg, nil
		}
	}

	msg.Lines = append(msg.Lines, header(loc, n.From))
	for _, c := range n.Changes {
		lines, err := changeLines(loc, n.From, c)
		if err != nil {
			return SystemMessage{}, err
		}
		msg.Lines = append(msg.Lines, lines...)
	}
	return msg, nil
}

func header(loc i18n.Translator, from Participant) Line {
	if from.IsMe {
		return loc.Parts("youUpdatedTheGroup", nil)
	}
	return loc.Parts("updatedTheGroup", map[string][]body.Segment{
		"name": body.ContactName(from.Title),
	})
}

func changeLines(loc i18n.Translator, from Participant, c Change) ([]Line, error) {
	switch c := c.(type) {
	case RenameChange:
		return []Line{loc.Parts("titleIsNow", map[string][]body.Segment{
			"name": body.Emojify(c.NewName),
		})}, nil
	case AvatarChange:
		return []Line{loc.Parts("updatedGroupAvatar", nil)}, nil
	case GeneralChange:
		return nil, nil
	case AddChange:
		return addLines(loc, c)
	case RemoveChange:
		line, err := removeLine(loc, from, c)
		if err != nil {
			return nil, err
		}
		return []Line{line}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownChange, c)
	}
}

func addLines(loc i18n.Translator, c AddChange) ([]Line, error) {
	if len(c.Contacts) == 0 {
		return nil, fmt.Errorf("add: %w", ErrMissingContacts)
	}

	var lines []Line
	others := lo.Reject(c.Contacts, func(p Participant, _ int) bool { return p.IsMe })
	switch {
	case len(others) == 1:
		lines = append(lines, loc.Parts("joinedTheGroup", map[string][]body.Segment{
			"name": body.ContactName(others[0].Title),
		}))
	case len(others) > 1:
		lines = append(lines, loc.Parts("multipleJoinedTheGroup", map[string][]body.Segment{
			"names": joinNames(others),
		}))
	}

	if lo.ContainsBy(c.Contacts, isMe) {
		lines = append(lines, loc.Parts("youJoinedTheGroup", nil))
	}
	return lines, nil
}

func removeLine(loc i18n.Translator, from Participant, c RemoveChange) (Line, error) {
	if from.IsMe {
		return loc.Parts("youLeftTheGroup", nil), nil
	}

	if len(c.Contacts) == 0 {
		return nil, fmt.Errorf("remove: %w", ErrMissingContacts)
	}

	// The template follows the number of contacts but only others are
	// named.
	key := "leftTheGroup"
	if len(c.Contacts) > 1 {
		key = "multipleLeftTheGroup"
	}
	return loc.Parts(key, map[string][]body.Segment{
		"name": joinNames(lo.Reject(c.Contacts, func(p Participant, _ int) bool { return p.IsMe })),
	}), nil
}
