package pitchmd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy reports an unrecognized content-blocking category.
var ErrUnknownPolicy = errors.New("unknown blocking category")

// ContentBlockingPolicy selects inline content to replace with inert
// markers. The zero value blocks nothing.
//
// Code only applies to inline code spans. Fenced code blocks are always
// emitted.
type ContentBlockingPolicy struct {
	Image bool
	Code  bool
	Link  bool
}

// Untrusted returns a policy blocking images, links and inline code.
func Untrusted() ContentBlockingPolicy {
	return ContentBlockingPolicy{Image: true, Code: true, Link: true}
}

// IsZero reports whether nothing is blocked.
func (p ContentBlockingPolicy) IsZero() bool {
	return !p.Image && !p.Code && !p.Link
}

// String returns the blocked categories as a comma-separated list, or "none".
func (p ContentBlockingPolicy) String() string {
	var parts []string
	if p.Image {
		parts = append(parts, "image")
	}
	if p.Link {
		parts = append(parts, "link")
	}
	if p.Code {
		parts = append(parts, "code")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParsePolicy parses a comma-separated list of categories such as
// "image,link". "none" and the empty string block nothing, "all" blocks
// every category. Plural forms ("images", "links") are accepted.
func ParsePolicy(s string) (ContentBlockingPolicy, error) {
	var p ContentBlockingPolicy
	for _, field := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(field))
		switch name {
		case "", "none":
		case "all":
			p = Untrusted()
		case "image", "images", "img":
			p.Image = true
		case "link", "links":
			p.Link = true
		case "code":
			p.Code = true
		default:
			return ContentBlockingPolicy{}, fmt.Errorf("policy %q: %w", name, ErrUnknownPolicy)
		}
	}
	return p, nil
}

// Union returns a policy blocking every category blocked by p or o.
func (p ContentBlockingPolicy) Union(o ContentBlockingPolicy) ContentBlockingPolicy {
	return ContentBlockingPolicy{
		Image: p.Image || o.Image,
		Code:  p.Code || o.Code,
		Link:  p.Link || o.Link,
	}
}
