// Package fixture loads YAML documents describing a conversation timeline,
// search results and a group banner for the renderers to draw.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/search"
	"github.com/colonyops/msgview/internal/core/sysmsg"
)

// Entry kinds.
const (
	KindBody         = "body"
	KindGroup        = "group"
	KindVerification = "verification"
	KindNumberChange = "number_change"
)

var validate = validator.New()

// Document is a whole fixture file.
type Document struct {
	Conversation string        `yaml:"conversation"`
	Entries      []Entry       `yaml:"entries"  validate:"dive"`
	Results      []SearchEntry `yaml:"results"  validate:"dive"`
	Banner       *Banner       `yaml:"banner"   validate:"omitempty"`
}

// Entry is one timeline item. Exactly the field named by Kind is set.
type Entry struct {
	ID           string             `yaml:"id"`
	Kind         string             `yaml:"kind"         validate:"required,oneof=body group verification number_change"`
	Body         *BodyEntry         `yaml:"body"         validate:"required_if=Kind body"`
	Group        *GroupEntry        `yaml:"group"        validate:"required_if=Kind group"`
	Verification *VerificationEntry `yaml:"verification" validate:"required_if=Kind verification"`
	NumberChange *NumberChangeEntry `yaml:"number_change" validate:"required_if=Kind number_change"`
}

// BodyEntry is a message body. ExpandedText, when set, is what "read more"
// reveals.
type BodyEntry struct {
	Author       string           `yaml:"author"`
	Text         string           `yaml:"text"          validate:"required"`
	Ranges       []body.Range     `yaml:"ranges"`
	Attachment   *AttachmentEntry `yaml:"attachment"`
	ExpandedText string           `yaml:"expanded_text"`
}

// AttachmentEntry is the long-text attachment state of a body.
type AttachmentEntry struct {
	Pending      bool `yaml:"pending"`
	Downloadable bool `yaml:"downloadable"`
}

// GroupEntry is a group update.
type GroupEntry struct {
	From    sysmsg.Participant `yaml:"from"`
	Changes []ChangeEntry      `yaml:"changes" validate:"required,min=1,dive"`
}

// ChangeEntry is one change of a group update.
type ChangeEntry struct {
	Kind     string               `yaml:"kind"     validate:"required,oneof=add remove name avatar general"`
	Contacts []sysmsg.Participant `yaml:"contacts"`
	NewName  string               `yaml:"new_name" validate:"required_if=Kind name"`
}

// VerificationEntry is a safety number verification notice.
type VerificationEntry struct {
	Kind    string             `yaml:"kind"    validate:"required,oneof=verified not-verified"`
	Local   bool               `yaml:"local"`
	Contact sysmsg.Participant `yaml:"contact"`
}

// NumberChangeEntry is a number change notice.
type NumberChangeEntry struct {
	Sender sysmsg.Participant `yaml:"sender"`
	At     time.Time          `yaml:"at"`
}

// SearchEntry is one search result.
type SearchEntry struct {
	ID             string         `yaml:"id"`
	ConversationID string         `yaml:"conversation_id"`
	SentAt         time.Time      `yaml:"sent_at"`
	Snippet        string         `yaml:"snippet"         validate:"required"`
	Body           string         `yaml:"body"            validate:"required"`
	Ranges         []body.Range   `yaml:"ranges"`
	From           *search.Person `yaml:"from"`
	To             *search.Person `yaml:"to"`
}

// Banner describes an announcements-only group.
type Banner struct {
	Group  string               `yaml:"group"  validate:"required"`
	Admins []sysmsg.Participant `yaml:"admins" validate:"required,min=1"`
}

// Load reads and decodes the fixture at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a fixture, fills in missing ids and validates it. Unknown
// fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	doc.applyDefaults()

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &doc, nil
}

// idSpace is the namespace of ids derived for fixtures that leave them out.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/colonyops/msgview/fixture"))

// applyDefaults fills in missing ids. Derived ids depend only on position
// and kind, so an entry keeps its id, and with it its expanded or
// downloaded state, across reloads of an edited file.
func (d *Document) applyDefaults() {
	if d.Conversation == "" {
		d.Conversation = uuid.NewSHA1(idSpace, []byte("conversation")).String()
	}
	conv := uuid.NewSHA1(idSpace, []byte(d.Conversation))
	for i := range d.Entries {
		if d.Entries[i].ID == "" {
			d.Entries[i].ID = uuid.NewSHA1(conv, fmt.Appendf(nil, "entry/%d/%s", i, d.Entries[i].Kind)).String()
		}
	}
	for i := range d.Results {
		if d.Results[i].ID == "" {
			d.Results[i].ID = uuid.NewSHA1(conv, fmt.Appendf(nil, "result/%d", i)).String()
		}
		if d.Results[i].ConversationID == "" {
			d.Results[i].ConversationID = d.Conversation
		}
	}
}

// PendingAttachment converts the entry to the renderer's attachment state.
func (b BodyEntry) PendingAttachment() *body.PendingAttachment {
	if b.Attachment == nil {
		return nil
	}
	return &body.PendingAttachment{
		Pending:      b.Attachment.Pending,
		Downloadable: b.Attachment.Downloadable,
	}
}

// Notification converts the entry to a group notification.
func (g GroupEntry) Notification() (sysmsg.GroupNotification, error) {
	n := sysmsg.GroupNotification{From: g.From}
	for _, c := range g.Changes {
		change, err := sysmsg.NewChange(c.Kind, c.Contacts, c.NewName)
		if err != nil {
			return sysmsg.GroupNotification{}, err
		}
		n.Changes = append(n.Changes, change)
	}
	return n, nil
}

// Verification converts the entry to a verification notice.
func (v VerificationEntry) Verification() sysmsg.Verification {
	return sysmsg.Verification{
		Kind:    sysmsg.VerificationKind(v.Kind),
		IsLocal: v.Local,
		Contact: v.Contact,
	}
}

// NumberChange converts the entry to a number change notice.
func (n NumberChangeEntry) NumberChange() sysmsg.NumberChange {
	return sysmsg.NumberChange{Sender: n.Sender, Timestamp: n.At}
}

// Result converts the entry to a search result.
func (s SearchEntry) Result() search.Result {
	return search.Result{
		ID:             s.ID,
		ConversationID: s.ConversationID,
		SentAt:         s.SentAt,
		Snippet:        s.Snippet,
		Body:           s.Body,
		BodyRanges:     s.Ranges,
		From:           s.From,
		To:             s.To,
	}
}
