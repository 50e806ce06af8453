package pitchmd

import "strings"

// inlineTriggers are the bytes that can open an inline construct.
const inlineTriggers = "![*_`"

// TokenizeInline splits a single line of text into inline nodes.
//
// At each position the constructs are tried in order: image, link, bold,
// italic, underline, inline code. The leftmost match wins; text between
// matches is emitted as Text. Delimiters without a closing partner are
// literal text. Captured content is never parsed again.
//
// Images, links and inline code are replaced by their Blocked variants when
// the policy says so. TokenizeInline never fails and runs in time linear in
// len(text).
func TokenizeInline(text string, policy ContentBlockingPolicy) []Inline {
	if text == "" {
		return nil
	}
	if !strings.ContainsAny(text, inlineTriggers) {
		return []Inline{Text{Content: text}}
	}
	s := newInlineScanner(text, policy)
	return s.scan()
}

// inlineMatcher attempts a construct at pos. It returns the node and the
// offset just past the construct.
type inlineMatcher func(s *inlineScanner, pos int) (Inline, int, bool)

var inlineMatchers = [...]inlineMatcher{
	matchImage,
	matchLink,
	matchBold,
	matchItalic,
	matchUnderline,
	matchCode,
}

// inlineScanner holds next-occurrence tables for every closing delimiter so
// each matcher attempt is O(1). A table value equal to len(src) means "none".
type inlineScanner struct {
	src    string
	policy ContentBlockingPolicy

	nextStar        []int
	nextDoubleStar  []int
	nextDoubleUnder []int
	nextTick        []int
	nextParen       []int
	nextLinkMid     []int
}

func newInlineScanner(src string, policy ContentBlockingPolicy) *inlineScanner {
	n := len(src)
	arena := make([]int, 6*(n+1))
	s := &inlineScanner{
		src:             src,
		policy:          policy,
		nextStar:        arena[0*(n+1) : 1*(n+1)],
		nextDoubleStar:  arena[1*(n+1) : 2*(n+1)],
		nextDoubleUnder: arena[2*(n+1) : 3*(n+1)],
		nextTick:        arena[3*(n+1) : 4*(n+1)],
		nextParen:       arena[4*(n+1) : 5*(n+1)],
		nextLinkMid:     arena[5*(n+1) : 6*(n+1)],
	}
	s.nextStar[n] = n
	s.nextDoubleStar[n] = n
	s.nextDoubleUnder[n] = n
	s.nextTick[n] = n
	s.nextParen[n] = n
	s.nextLinkMid[n] = n
	for i := n - 1; i >= 0; i-- {
		c := src[i]
		pair := i+1 < n && src[i+1] == c
		s.nextStar[i] = pick(c == '*', i, s.nextStar[i+1])
		s.nextDoubleStar[i] = pick(c == '*' && pair, i, s.nextDoubleStar[i+1])
		s.nextDoubleUnder[i] = pick(c == '_' && pair, i, s.nextDoubleUnder[i+1])
		s.nextTick[i] = pick(c == '`', i, s.nextTick[i+1])
		s.nextParen[i] = pick(c == ')', i, s.nextParen[i+1])
		s.nextLinkMid[i] = pick(c == ']' && i+1 < n && src[i+1] == '(', i, s.nextLinkMid[i+1])
	}
	return s
}

func pick(cond bool, here, next int) int {
	if cond {
		return here
	}
	return next
}

// after returns table[from], treating positions past the end as "none".
func (s *inlineScanner) after(table []int, from int) int {
	if from >= len(s.src) {
		return len(s.src)
	}
	return table[from]
}

func (s *inlineScanner) scan() []Inline {
	var out []Inline
	start := 0
	for pos := 0; pos < len(s.src); pos++ {
		if strings.IndexByte(inlineTriggers, s.src[pos]) < 0 {
			continue
		}
		node, end, ok := s.matchAt(pos)
		if !ok {
			continue
		}
		if pos > start {
			out = append(out, Text{Content: s.src[start:pos]})
		}
		out = append(out, node)
		start = end
		pos = end - 1
	}
	if start < len(s.src) {
		out = append(out, Text{Content: s.src[start:]})
	}
	return out
}

func (s *inlineScanner) matchAt(pos int) (Inline, int, bool) {
	for _, match := range inlineMatchers {
		if node, end, ok := match(s, pos); ok {
			return node, end, true
		}
	}
	return nil, 0, false
}

// bracketed matches "[label](url)" with the opening bracket at open.
// The label runs to the first "](" and the url to the first ")" after it.
func (s *inlineScanner) bracketed(open int) (label, url string, end int, ok bool) {
	n := len(s.src)
	mid := s.after(s.nextLinkMid, open+1)
	if mid == n {
		return "", "", 0, false
	}
	closing := s.after(s.nextParen, mid+2)
	if closing == n {
		return "", "", 0, false
	}
	return s.src[open+1 : mid], s.src[mid+2 : closing], closing + 1, true
}

func matchImage(s *inlineScanner, pos int) (Inline, int, bool) {
	if !strings.HasPrefix(s.src[pos:], "![") {
		return nil, 0, false
	}
	alt, src, end, ok := s.bracketed(pos + 1)
	if !ok {
		return nil, 0, false
	}
	if s.policy.Image {
		return BlockedImage{AltText: alt}, end, true
	}
	return Image{AltText: alt, SourceURL: src}, end, true
}

func matchLink(s *inlineScanner, pos int) (Inline, int, bool) {
	if s.src[pos] != '[' {
		return nil, 0, false
	}
	label, url, end, ok := s.bracketed(pos)
	if !ok {
		return nil, 0, false
	}
	if s.policy.Link {
		return BlockedLink{Label: label}, end, true
	}
	return Link{Label: label, TargetURL: url}, end, true
}

// delimited matches delim, at least one byte of content, then the next
// occurrence of delim found through table.
func (s *inlineScanner) delimited(pos int, delim string, table []int) (string, int, bool) {
	if !strings.HasPrefix(s.src[pos:], delim) {
		return "", 0, false
	}
	from := pos + len(delim)
	closing := s.after(table, from+1)
	if closing == len(s.src) {
		return "", 0, false
	}
	return s.src[from:closing], closing + len(delim), true
}

func matchBold(s *inlineScanner, pos int) (Inline, int, bool) {
	content, end, ok := s.delimited(pos, "**", s.nextDoubleStar)
	if !ok {
		return nil, 0, false
	}
	return Bold{Content: content}, end, true
}

func matchItalic(s *inlineScanner, pos int) (Inline, int, bool) {
	content, end, ok := s.delimited(pos, "*", s.nextStar)
	if !ok {
		return nil, 0, false
	}
	return Italic{Content: content}, end, true
}

func matchUnderline(s *inlineScanner, pos int) (Inline, int, bool) {
	content, end, ok := s.delimited(pos, "__", s.nextDoubleUnder)
	if !ok {
		return nil, 0, false
	}
	return Underline{Content: content}, end, true
}

func matchCode(s *inlineScanner, pos int) (Inline, int, bool) {
	content, end, ok := s.delimited(pos, "`", s.nextTick)
	if !ok {
		return nil, 0, false
	}
	if s.policy.Code {
		return BlockedCode{}, end, true
	}
	return InlineCode{Content: content}, end, true
}
