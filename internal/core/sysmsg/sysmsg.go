// Package sysmsg formats system notices (group changes, verification and
// number changes) into localized lines of segments.
package sysmsg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/colonyops/msgview/internal/core/body"
)

var (
	// ErrContractViolation is wrapped by every error caused by input that
	// breaks the notification contract.
	ErrContractViolation = errors.New("notification contract violation")
	// ErrMissingContacts means an add or remove change carried no contacts.
	ErrMissingContacts = fmt.Errorf("%w: change has no contacts", ErrContractViolation)
	// ErrUnknownChange means a change of a type this package does not know.
	ErrUnknownChange = fmt.Errorf("%w: unknown change", ErrContractViolation)
	// ErrUnknownVerification means a verification kind this package does
	// not know.
	ErrUnknownVerification = fmt.Errorf("%w: unknown verification kind", ErrContractViolation)
)

// Icon names the glyph shown beside a system message.
type Icon string

const (
	IconGroup       Icon = "group"
	IconVerified    Icon = "verified"
	IconVerifiedNot Icon = "verified-not"
	IconPhone       Icon = "phone"
)

// Participant is a conversation member as seen by the formatters.
type Participant struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	FirstName string `yaml:"first_name"`
	IsMe      bool   `yaml:"is_me"`
}

// Line is one rendered line of a system message.
type Line []body.Segment

// SystemMessage is a formatted notice.
type SystemMessage struct {
	Icon  Icon
	Lines []Line
}

// PlainText returns the lines as plain text joined by newlines.
func (m SystemMessage) PlainText() string {
	return strings.Join(lo.Map(m.Lines, func(l Line, _ int) string {
		return body.PlainText(l)
	}), "\n")
}

func isMe(p Participant) bool { return p.IsMe }

// joinNames comma-joins contact names without a conjunction.
func joinNames(ps []Participant) []body.Segment {
	var segs []body.Segment
	for i, p := range ps {
		if i > 0 {
			segs = append(segs, body.Text(", "))
		}
		segs = append(segs, body.ContactName(p.Title)...)
	}
	return segs
}
