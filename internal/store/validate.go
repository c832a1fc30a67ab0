package store

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-content/pkg/interfaces"
)

const (
	// publishDateLayout is the canonical timestamp format for publishDate.
	publishDateLayout = "2006-01-02 15:04"
	// publishDateLayoutDateOnly covers posts that omit the clock time; these
	// normalize to midnight.
	publishDateLayoutDateOnly = "2006-01-02"
)

// Validate checks presence and shape of every required metadata field and
// reports the first failure as a *ValidationError naming the offending
// field. A nil return means the document is publishable.
func Validate(doc *interfaces.Document) error {
	if doc == nil {
		return ErrDocumentRequired
	}

	fm := doc.FrontMatter

	// Field order is fixed so the same malformed document always surfaces
	// the same diagnostic.
	checks := []struct {
		field string
		run   func() error
	}{
		{"title", func() error {
			return validation.Validate(strings.TrimSpace(fm.Title),
				validation.Required.Error("title is required"))
		}},
		{"publishDate", func() error {
			return validation.Validate(strings.TrimSpace(fm.PublishDate),
				validation.Required.Error("publishDate is required"),
				validation.By(checkPublishDate))
		}},
		{"image", func() error {
			return validation.Validate(fm.Raw["image"], validation.By(func(value any) error {
				if value == nil || fm.Image != nil {
					return nil
				}
				return validation.NewError("content.image_shape", "image must be a mapping with src and alt")
			}))
		}},
		{"image.src", func() error {
			if fm.Image == nil {
				return nil
			}
			return validation.Validate(strings.TrimSpace(fm.Image.Src),
				validation.Required.Error("image.src is required when image is present"))
		}},
		{"tags", func() error {
			return validation.Validate(fm.Raw["tags"], validation.By(func(value any) error {
				if value == nil || fm.Tags != nil {
					return nil
				}
				return validation.NewError("content.tags_shape", "tags must be a sequence of strings")
			}))
		}},
	}

	for _, check := range checks {
		if err := check.run(); err != nil {
			return &ValidationError{Field: check.field, Reason: err.Error()}
		}
	}

	return nil
}

// PublishDate parses the document's publishDate using the canonical layout,
// falling back to the date-only form.
func PublishDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if ts, err := time.Parse(publishDateLayout, trimmed); err == nil {
		return ts, nil
	}
	return time.Parse(publishDateLayoutDateOnly, trimmed)
}

func checkPublishDate(value any) error {
	str, _ := value.(string)
	if strings.TrimSpace(str) == "" {
		return nil
	}
	if _, err := PublishDate(str); err != nil {
		return validation.NewError("content.publish_date_format",
			"publishDate must use the YYYY-MM-DD HH:MM format")
	}
	return nil
}
