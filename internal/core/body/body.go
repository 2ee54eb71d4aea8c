package body

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// PendingAttachment summarizes the out-of-band fetch state of a long text
// body. The attachment subsystem owns it.
type PendingAttachment struct {
	Pending      bool
	Downloadable bool
}

// Options configures a render. Every field is independent.
type Options struct {
	DisableLinks bool
	// DisableUniformEmojiSizing keeps every emoji at normal size.
	DisableUniformEmojiSizing bool
	// Author, when set, is rendered as a prefix before the text.
	Author string
	// MaxLength truncates the text to this many graphemes when positive.
	MaxLength  int
	Attachment *PendingAttachment
	// KickOffDownload starts fetching the full body.
	KickOffDownload func()
	// OnExpand asks the caller for more of the text.
	OnExpand func()
}

// Body is a rendered message body.
type Body struct {
	Author      []Segment
	Segments    []Segment
	Affordances []Affordance
	Size        SizeClass
	Truncated   bool
}

// Render formats text with its annotation ranges.
func Render(text string, ranges []Range, opts Options) Body {
	size := sizeFor(text, opts)
	processed := ReplaceMentions(text, ranges)

	var truncated bool
	processed, truncated = Truncate(processed, opts.MaxLength)

	return Body{
		Author:      renderAuthor(opts.Author, size),
		Segments:    NewPipeline(ranges, size, opts.DisableLinks).Run(processed),
		Affordances: Affordances(opts, truncated),
		Size:        size,
		Truncated:   truncated,
	}
}

// Chunk is a run of text that is either highlighted or not.
type Chunk struct {
	Text      string
	Highlight bool
}

// RenderChunks formats consecutive chunks of one text through a single
// pipeline, so mention placeholders pair with ranges across chunk
// boundaries. The chunks must already carry placeholders in place of
// mentions; ranges are only used for their order and mention details.
func RenderChunks(chunks []Chunk, ranges []Range, opts Options) Body {
	var full strings.Builder
	for _, c := range chunks {
		full.WriteString(c.Text)
	}
	size := sizeFor(full.String(), opts)
	pipeline := NewPipeline(ranges, size, opts.DisableLinks)

	var segs []Segment
	for _, c := range chunks {
		for _, s := range pipeline.Run(c.Text) {
			s.Highlight = c.Highlight
			segs = append(segs, s)
		}
	}

	return Body{
		Author:      renderAuthor(opts.Author, size),
		Segments:    mergeText(segs),
		Affordances: Affordances(opts, false),
		Size:        size,
	}
}

// Truncate shortens text to at most limit graphemes, trimming trailing
// whitespace at the cut. It reports whether anything was removed.
func Truncate(text string, limit int) (string, bool) {
	if limit <= 0 {
		return text, false
	}
	count, pos := 0, 0
	state := -1
	rest := text
	for len(rest) > 0 {
		if count == limit {
			return strings.TrimRightFunc(text[:pos], unicode.IsSpace), true
		}
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		count++
	}
	return text, false
}

func sizeFor(text string, opts Options) SizeClass {
	if opts.DisableUniformEmojiSizing {
		return SizeNormal
	}
	return SizeClassOf(text)
}

func renderAuthor(author string, size SizeClass) []Segment {
	if author == "" {
		return nil
	}
	return Pipeline{emojiClassifier{size: size}, ClassifierFunc(classifyNewlines)}.Run(author)
}
