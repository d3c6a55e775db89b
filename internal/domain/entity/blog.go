package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// BlogStatus is the publication state of a blog post.
type BlogStatus string

const (
	// BlogStatusDraft is visible only to authenticated staff.
	BlogStatusDraft BlogStatus = "draft"
	// BlogStatusPublished is publicly readable.
	BlogStatusPublished BlogStatus = "published"
)

// IsValid checks if the BlogStatus is a valid value.
func (s BlogStatus) IsValid() bool {
	return s == BlogStatusDraft || s == BlogStatusPublished
}

// Blog is a staff-authored blog post.
type Blog struct {
	ID            uuid.UUID
	Title         string
	Content       string
	Author        string
	FeaturedImage string   // URL of the featured image, if any.
	Categories    []string
	Tags          []string
	Slug          string     // Unique, derived from Title; regenerated only when Title changes.
	Status        BlogStatus
	Views         int64      // Incremented on public reads of a published post.
	CreatedBy     uuid.UUID  // Admin who created the post.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Slugify derives a URL slug from a title: lowercase, alphanumerics kept,
// every other run of characters collapsed to a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) && r < unicode.MaxASCII || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)

			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
