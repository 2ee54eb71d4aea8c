package body

// Localization keys for affordance labels.
const (
	KeyDownloading  = "downloading"
	KeyDownloadFull = "downloadFullMessage"
	KeyReadMore     = "MessageBody--read-more"
)

const ellipsis = "..."

// AffordanceKind identifies what is shown after the message text.
type AffordanceKind int

const (
	AffordanceEllipsis AffordanceKind = iota
	AffordanceDownloading
	AffordanceDownload
	AffordanceReadMore
)

// Affordance is an indicator or action appended after the rendered text.
type Affordance struct {
	Kind AffordanceKind
	// LabelKey is the localization key of the label; empty for the ellipsis.
	LabelKey string
	action   func()
}

// Label returns the literal label for affordances that are not localized.
func (a Affordance) Label() string {
	if a.Kind == AffordanceEllipsis {
		return ellipsis
	}
	return ""
}

// Actionable reports whether the affordance responds to activation.
func (a Affordance) Actionable() bool {
	return a.action != nil
}

// Click runs the affordance's action once. The caller owns whatever the
// action does; nothing is retried or awaited here.
func (a Affordance) Click() bool {
	if a.action == nil {
		return false
	}
	a.action()
	return true
}

// KeyDown activates the affordance for Space and Enter, the same as Click.
func (a Affordance) KeyDown(key string) bool {
	switch key {
	case "space", " ", "enter":
		return a.Click()
	default:
		return false
	}
}

// Affordances decides what follows the message text. A read-more action
// suppresses any pending or download UI.
func Affordances(opts Options, truncated bool) []Affordance {
	hasReadMore := opts.OnExpand != nil
	pending := opts.Attachment != nil && opts.Attachment.Pending

	var out []Affordance
	if pending || hasReadMore || truncated {
		out = append(out, Affordance{Kind: AffordanceEllipsis})
	}

	switch {
	case hasReadMore:
	case pending:
		out = append(out, Affordance{Kind: AffordanceDownloading, LabelKey: KeyDownloading})
	case opts.Attachment != nil && opts.Attachment.Downloadable && opts.KickOffDownload != nil:
		out = append(out, Affordance{Kind: AffordanceDownload, LabelKey: KeyDownloadFull, action: opts.KickOffDownload})
	}

	if hasReadMore {
		out = append(out, Affordance{Kind: AffordanceReadMore, LabelKey: KeyReadMore, action: opts.OnExpand})
	}
	return out
}
