package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/styles"
	"github.com/colonyops/msgview/internal/core/sysmsg"
	"github.com/colonyops/msgview/pkg/tuitest"
)

func TestRenderBody(t *testing.T) {
	loc := i18n.Default()
	b := body.Render("hi @x see example.com", []body.Range{{Start: 3, Length: 2, MentionID: "x", ReplacementText: "Xavier"}}, body.Options{
		Author:          "Ann",
		Attachment:      &body.PendingAttachment{Downloadable: true},
		KickOffDownload: func() {},
	})

	got := tuitest.StripANSI(RenderBody(loc, b, Unfocused, 0))

	assert.Equal(t, "Ann: hi @Xavier see example.com Download Full Message", got)
}

func TestRenderBody_Pending(t *testing.T) {
	b := body.Render("partial", nil, body.Options{Attachment: &body.PendingAttachment{Pending: true}})

	got := tuitest.StripANSI(RenderBody(i18n.Default(), b, Unfocused, 0))

	assert.Equal(t, "partial... Downloading", got)
}

func TestRenderBody_Wraps(t *testing.T) {
	b := body.Render("one two three four", nil, body.Options{})

	got := tuitest.StripANSI(RenderBody(i18n.Default(), b, Unfocused, 9))

	assert.Equal(t, "one two\nthree\nfour", got)
}

func TestRenderBody_FocusChangesStyling(t *testing.T) {
	b := body.Render("@x", []body.Range{{Start: 0, Length: 2, MentionID: "x", ReplacementText: "X"}}, body.Options{})
	loc := i18n.Default()

	plain := RenderBody(loc, b, Unfocused, 0)
	focused := RenderBody(loc, b, BodyFocus{Mention: 0, Affordance: NoFocus}, 0)

	assert.Equal(t, tuitest.StripANSI(plain), tuitest.StripANSI(focused))
	assert.Equal(t, styles.MentionFocusStyle.Render("@X"), focused)
}

func TestRenderSegment_LinkIsHyperlinked(t *testing.T) {
	got := RenderSegment(body.Segment{Kind: body.KindLink, Text: "example.com", Href: "https://example.com"}, false)

	assert.Contains(t, got, "https://example.com")
	assert.Equal(t, "example.com", tuitest.StripANSI(got))
}

func TestRenderSystemMessage(t *testing.T) {
	msg, err := sysmsg.FormatGroup(i18n.Default(), sysmsg.GroupNotification{
		From:    sysmsg.Participant{Title: "Ann"},
		Changes: []sysmsg.Change{sysmsg.RenameChange{NewName: "Club"}},
	})
	assert.NoError(t, err)

	got := tuitest.StripANSI(RenderSystemMessage(msg, 0))
	icon := styles.SystemIcon("group")

	assert.Equal(t, icon+" Ann updated the group.\n"+Pad(len([]rune(icon))+1)+"Group name is now 'Club'.", got)
}
