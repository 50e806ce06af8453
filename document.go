package pitchmd

// Document is the result of a parse: an ordered sequence of blocks.
// Blocks carry no state shared with each other and can be rendered independently.
type Document struct {
	Blocks []Block
}

// BlockKind identifies the concrete type of a Block.
type BlockKind uint8

const (
	// BlockHeading is a Heading block.
	BlockHeading BlockKind = iota
	// BlockHorizontalRule is a HorizontalRule block.
	BlockHorizontalRule
	// BlockBlockquote is a Blockquote block.
	BlockBlockquote
	// BlockUnorderedList is an UnorderedList block.
	BlockUnorderedList
	// BlockOrderedList is an OrderedList block.
	BlockOrderedList
	// BlockCode is a fenced CodeBlock.
	BlockCode
	// BlockParagraph is a Paragraph block.
	BlockParagraph
)

var blockKindNames = [...]string{
	BlockHeading:        "heading",
	BlockHorizontalRule: "horizontal_rule",
	BlockBlockquote:     "blockquote",
	BlockUnorderedList:  "unordered_list",
	BlockOrderedList:    "ordered_list",
	BlockCode:           "code_block",
	BlockParagraph:      "paragraph",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return "unknown"
}

// Block is a top-level structural unit of a Document. The set of
// implementations is closed: Heading, HorizontalRule, Blockquote,
// UnorderedList, OrderedList, CodeBlock and Paragraph.
type Block interface {
	Kind() BlockKind
	isBlock()
}

// Heading is a level 1-3 heading.
type Heading struct {
	Level  int
	Inline []Inline
}

// HorizontalRule is a thematic break (---, *** or ___).
type HorizontalRule struct{}

// Blockquote is a single quoted line.
type Blockquote struct {
	Inline []Inline
}

// UnorderedList holds one or more bullet items.
type UnorderedList struct {
	Items [][]Inline
}

// OrderedList holds one or more numbered items.
type OrderedList struct {
	Items []OrderedItem
}

// OrderedItem is an ordered list entry. Label is the number exactly as
// written in the source; lists are never renumbered.
type OrderedItem struct {
	Label  string
	Inline []Inline
}

// CodeBlock is a fenced code block. Lines are kept verbatim.
type CodeBlock struct {
	Language string
	Lines    []string
	Style    StyleDescriptor
}

// Paragraph is any line that matched no other block rule.
type Paragraph struct {
	Inline []Inline
}

func (Heading) Kind() BlockKind        { return BlockHeading }
func (HorizontalRule) Kind() BlockKind { return BlockHorizontalRule }
func (Blockquote) Kind() BlockKind     { return BlockBlockquote }
func (UnorderedList) Kind() BlockKind  { return BlockUnorderedList }
func (OrderedList) Kind() BlockKind    { return BlockOrderedList }
func (CodeBlock) Kind() BlockKind      { return BlockCode }
func (Paragraph) Kind() BlockKind      { return BlockParagraph }

func (Heading) isBlock()        {}
func (HorizontalRule) isBlock() {}
func (Blockquote) isBlock()     {}
func (UnorderedList) isBlock()  {}
func (OrderedList) isBlock()    {}
func (CodeBlock) isBlock()      {}
func (Paragraph) isBlock()      {}

// InlineKind identifies the concrete type of an Inline.
type InlineKind uint8

const (
	// InlineText is plain text.
	InlineText InlineKind = iota
	// InlineImage is a live image.
	InlineImage
	// InlineBlockedImage is an image suppressed by policy.
	InlineBlockedImage
	// InlineLink is a live link.
	InlineLink
	// InlineBlockedLink is a link suppressed by policy.
	InlineBlockedLink
	// InlineBold is **bold** text.
	InlineBold
	// InlineItalic is *italic* text.
	InlineItalic
	// InlineUnderline is __underlined__ text.
	InlineUnderline
	// InlineCodeSpan is `inline code`.
	InlineCodeSpan
	// InlineBlockedCode is inline code suppressed by policy.
	InlineBlockedCode
)

var inlineKindNames = [...]string{
	InlineText:         "text",
	InlineImage:        "image",
	InlineBlockedImage: "blocked_image",
	InlineLink:         "link",
	InlineBlockedLink:  "blocked_link",
	InlineBold:         "bold",
	InlineItalic:       "italic",
	InlineUnderline:    "underline",
	InlineCodeSpan:     "code",
	InlineBlockedCode:  "blocked_code",
}

func (k InlineKind) String() string {
	if int(k) < len(inlineKindNames) {
		return inlineKindNames[k]
	}
	return "unknown"
}

// Inline is a span-level node within a block's text. The set of
// implementations is closed: Text, Image, BlockedImage, Link, BlockedLink,
// Bold, Italic, Underline, InlineCode and BlockedCode.
//
// Bold, Italic, Underline and InlineCode carry their inner text verbatim;
// nested emphasis is never decomposed.
type Inline interface {
	Kind() InlineKind
	isInline()
}

// Text is literal text.
type Text struct {
	Content string
}

// Image is ![alt](src).
type Image struct {
	AltText   string
	SourceURL string
}

// BlockedImage replaces an Image when the policy blocks images.
// The source URL is dropped.
type BlockedImage struct {
	AltText string
}

// Link is [label](url).
type Link struct {
	Label     string
	TargetURL string
}

// BlockedLink replaces a Link when the policy blocks links.
// The target URL is dropped.
type BlockedLink struct {
	Label string
}

// Bold is **content**.
type Bold struct {
	Content string
}

// Italic is *content*.
type Italic struct {
	Content string
}

// Underline is __content__.
type Underline struct {
	Content string
}

// InlineCode is `content`.
type InlineCode struct {
	Content string
}

// BlockedCode replaces an InlineCode when the policy blocks code.
type BlockedCode struct{}

func (Text) Kind() InlineKind         { return InlineText }
func (Image) Kind() InlineKind        { return InlineImage }
func (BlockedImage) Kind() InlineKind { return InlineBlockedImage }
func (Link) Kind() InlineKind         { return InlineLink }
func (BlockedLink) Kind() InlineKind  { return InlineBlockedLink }
func (Bold) Kind() InlineKind         { return InlineBold }
func (Italic) Kind() InlineKind       { return InlineItalic }
func (Underline) Kind() InlineKind    { return InlineUnderline }
func (InlineCode) Kind() InlineKind   { return InlineCodeSpan }
func (BlockedCode) Kind() InlineKind  { return InlineBlockedCode }

func (Text) isInline()         {}
func (Image) isInline()        {}
func (BlockedImage) isInline() {}
func (Link) isInline()         {}
func (BlockedLink) isInline()  {}
func (Bold) isInline()         {}
func (Italic) isInline()       {}
func (Underline) isInline()    {}
func (InlineCode) isInline()   {}
func (BlockedCode) isInline()  {}
