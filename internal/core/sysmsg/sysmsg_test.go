package sysmsg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/i18n"
)

var (
	me    = Participant{ID: "me", Title: "Me", IsMe: true}
	alice = Participant{ID: "a", Title: "Alice"}
	bob   = Participant{ID: "b", Title: "Bob"}
	carol = Participant{ID: "c", Title: "Carol"}
)

type unknownChange struct{ Change }

func TestFormatGroup(t *testing.T) {
	loc := i18n.Default()

	tests := []struct {
		name string
		n    GroupNotification
		want string
	}{
		{
			name: "lone removal has no header",
			n:    GroupNotification{From: alice, Changes: []Change{RemoveChange{Contacts: []Participant{alice}}}},
			want: "Alice left the group.",
		},
		{
			name: "self leaving",
			n:    GroupNotification{From: me, Changes: []Change{RemoveChange{}}},
			want: "You left the group.",
		},
		{
			name: "many removed",
			n:    GroupNotification{From: alice, Changes: []Change{RemoveChange{Contacts: []Participant{bob, carol}}}},
			want: "Bob, Carol left the group.",
		},
		{
			name: "removal naming only others",
			n:    GroupNotification{From: alice, Changes: []Change{RemoveChange{Contacts: []Participant{me, bob}}}},
			want: "Bob left the group.",
		},
		{
			name: "rename by other",
			n:    GroupNotification{From: alice, Changes: []Change{RenameChange{NewName: "Book Club"}}},
			want: "Alice updated the group.\nGroup name is now 'Book Club'.",
		},
		{
			name: "avatar and general by self",
			n:    GroupNotification{From: me, Changes: []Change{AvatarChange{}, GeneralChange{}}},
			want: "You updated the group.\nGroup avatar was updated.",
		},
		{
			name: "one added",
			n:    GroupNotification{From: alice, Changes: []Change{AddChange{Contacts: []Participant{bob}}}},
			want: "Alice updated the group.\nBob joined the group.",
		},
		{
			name: "many added without conjunction",
			n:    GroupNotification{From: alice, Changes: []Change{AddChange{Contacts: []Participant{bob, carol}}}},
			want: "Alice updated the group.\nBob, Carol joined the group.",
		},
		{
			name: "self added with others",
			n:    GroupNotification{From: alice, Changes: []Change{AddChange{Contacts: []Participant{bob, me}}}},
			want: "Alice updated the group.\nBob joined the group.\nYou joined the group.",
		},
		{
			name: "only self added",
			n:    GroupNotification{From: alice, Changes: []Change{AddChange{Contacts: []Participant{me}}}},
			want: "Alice updated the group.\nYou joined the group.",
		},
		{
			name: "removal among other changes keeps header",
			n: GroupNotification{From: alice, Changes: []Change{
				RenameChange{NewName: "Club"},
				RemoveChange{Contacts: []Participant{bob}},
			}},
			want: "Alice updated the group.\nGroup name is now 'Club'.\nBob left the group.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := FormatGroup(loc, tt.n)
			require.NoError(t, err)
			assert.Equal(t, IconGroup, msg.Icon)
			assert.Equal(t, tt.want, msg.PlainText())
		})
	}
}

func TestFormatGroup_ContactSegments(t *testing.T) {
	msg, err := FormatGroup(i18n.Default(), GroupNotification{
		From:    alice,
		Changes: []Change{AddChange{Contacts: []Participant{{Title: "Dan 🎸"}}}},
	})
	require.NoError(t, err)
	require.Len(t, msg.Lines, 2)

	line := msg.Lines[1]
	assert.Equal(t, body.KindContact, line[0].Kind)
	assert.Equal(t, "Dan ", line[0].Text)
	assert.Equal(t, body.KindEmoji, line[1].Kind)
}

func TestFormatGroup_ContractViolations(t *testing.T) {
	loc := i18n.Default()

	tests := []struct {
		name string
		n    GroupNotification
		want error
	}{
		{
			name: "add without contacts",
			n:    GroupNotification{From: alice, Changes: []Change{AddChange{}}},
			want: ErrMissingContacts,
		},
		{
			name: "lone remove without contacts by other",
			n:    GroupNotification{From: alice, Changes: []Change{RemoveChange{}}},
			want: ErrMissingContacts,
		},
		{
			name: "remove without contacts among others",
			n:    GroupNotification{From: alice, Changes: []Change{AvatarChange{}, RemoveChange{}}},
			want: ErrMissingContacts,
		},
		{
			name: "unknown change",
			n:    GroupNotification{From: alice, Changes: []Change{unknownChange{}}},
			want: ErrUnknownChange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FormatGroup(loc, tt.n)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrContractViolation)
		})
	}
}

func TestNewChange(t *testing.T) {
	c, err := NewChange(KindAdd, []Participant{bob}, "")
	require.NoError(t, err)
	assert.Equal(t, AddChange{Contacts: []Participant{bob}}, c)

	c, err = NewChange(KindName, nil, "Club")
	require.NoError(t, err)
	assert.Equal(t, RenameChange{NewName: "Club"}, c)

	_, err = NewChange("pin", nil, "")
	assert.ErrorIs(t, err, ErrUnknownChange)
}

func TestFormatVerification(t *testing.T) {
	loc := i18n.Default()

	tests := []struct {
		name     string
		v        Verification
		wantIcon Icon
		want     string
	}{
		{
			name:     "verified here",
			v:        Verification{Kind: Verified, IsLocal: true, Contact: alice},
			wantIcon: IconVerified,
			want:     "You marked your Safety Number with Alice as verified",
		},
		{
			name:     "verified elsewhere",
			v:        Verification{Kind: Verified, Contact: alice},
			wantIcon: IconVerified,
			want:     "You marked your Safety Number with Alice as verified from another device",
		},
		{
			name:     "not verified here",
			v:        Verification{Kind: NotVerified, IsLocal: true, Contact: bob},
			wantIcon: IconVerifiedNot,
			want:     "You marked your Safety Number with Bob as not verified",
		},
		{
			name:     "not verified elsewhere",
			v:        Verification{Kind: NotVerified, Contact: bob},
			wantIcon: IconVerifiedNot,
			want:     "You marked your Safety Number with Bob as not verified from another device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := FormatVerification(loc, tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIcon, msg.Icon)
			assert.Equal(t, tt.want, msg.PlainText())
		})
	}

	_, err := FormatVerification(loc, Verification{Kind: "maybe"})
	assert.ErrorIs(t, err, ErrUnknownVerification)
	assert.ErrorIs(t, err, ErrContractViolation)
}

func TestFormatNumberChange(t *testing.T) {
	loc := i18n.Default()
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		sender Participant
		want   string
	}{
		{"title", Participant{Title: "Alice Smith", FirstName: "Alice"}, "Alice Smith changed their number · 5m"},
		{"first name fallback", Participant{FirstName: "Al"}, "Al changed their number · 5m"},
		{"no name", Participant{}, " changed their number · 5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := FormatNumberChange(loc, NumberChange{Sender: tt.sender, Timestamp: now.Add(-5 * time.Minute)}, now)
			require.NoError(t, err)
			assert.Equal(t, IconPhone, msg.Icon)
			assert.Equal(t, tt.want, msg.PlainText())
		})
	}
}
