package body

// Piece is one result of classifying a span of text. Claimed pieces carry
// the segment they render as; unclaimed pieces flow on to the next
// classifier in the pipeline.
type Piece struct {
	Text    string
	Claimed bool
	Segment Segment
}

// Unclaimed returns a piece left for later classifiers.
func Unclaimed(text string) Piece {
	return Piece{Text: text}
}

// Claim returns a piece rendered as seg.
func Claim(text string, seg Segment) Piece {
	return Piece{Text: text, Claimed: true, Segment: seg}
}

// Classifier recognizes the parts of a span it owns.
type Classifier interface {
	Classify(text string) []Piece
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(text string) []Piece

func (f ClassifierFunc) Classify(text string) []Piece {
	return f(text)
}

// Pipeline is an ordered list of classifiers. Earlier classifiers take
// precedence: a span claimed by one is never shown to the ones after it.
type Pipeline []Classifier

// Run folds text through every classifier and returns the resulting
// segments. Whatever no classifier claims becomes plain text.
func (p Pipeline) Run(text string) []Segment {
	pieces := []Piece{Unclaimed(text)}
	for _, c := range p {
		next := make([]Piece, 0, len(pieces))
		for _, pc := range pieces {
			switch {
			case pc.Claimed:
				next = append(next, pc)
			case pc.Text != "":
				next = append(next, c.Classify(pc.Text)...)
			}
		}
		pieces = next
	}

	segs := make([]Segment, 0, len(pieces))
	for _, pc := range pieces {
		switch {
		case pc.Claimed:
			segs = append(segs, pc.Segment)
		case pc.Text != "":
			segs = append(segs, Text(pc.Text))
		}
	}
	return mergeText(segs)
}

// NewPipeline builds the message body pipeline: mentions, then emoji, then
// links (unless disabled), then line breaks. ranges pair with mention
// placeholders in order of their start offsets.
func NewPipeline(ranges []Range, size SizeClass, disableLinks bool) Pipeline {
	p := Pipeline{
		&mentionClassifier{mentions: Mentions(ranges)},
		emojiClassifier{size: size},
	}
	if !disableLinks {
		p = append(p, ClassifierFunc(classifyLinks))
	}
	return append(p, ClassifierFunc(classifyNewlines))
}

// Emojify renders text through the emoji and line-break layers only.
func Emojify(text string) []Segment {
	return Pipeline{emojiClassifier{size: SizeNormal}, ClassifierFunc(classifyNewlines)}.Run(text)
}

// ContactName renders a participant title as contact segments, keeping any
// emoji as emoji.
func ContactName(title string) []Segment {
	segs := Emojify(title)
	for i := range segs {
		if segs[i].Kind == KindText {
			segs[i].Kind = KindContact
		}
	}
	return segs
}
