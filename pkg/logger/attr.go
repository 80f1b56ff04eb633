package logger

import "log/slog"

// Attribute helpers return an empty Attr for zero inputs, so call sites can
// pass them unconditionally; slog drops empty attributes.

// Error returns the "error" attribute, or an empty Attr for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RecordType returns the "record_type" attribute.
func RecordType(recordType string) slog.Attr {
	if recordType == "" {
		return slog.Attr{}
	}
	return slog.String("record_type", recordType)
}

// RecordID returns the "record_id" attribute.
func RecordID(id int64) slog.Attr {
	return slog.Int64("record_id", id)
}

// Locale returns the "locale" attribute.
func Locale(locale string) slog.Attr {
	if locale == "" {
		return slog.Attr{}
	}
	return slog.String("locale", locale)
}

// Slug returns the "slug" attribute.
func Slug(slug string) slog.Attr {
	if slug == "" {
		return slog.Attr{}
	}
	return slog.String("slug", slug)
}

// Attempt returns the 1-based "attempt" attribute of a retry loop.
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Record groups the identifying attributes of a sluggable record.
func Record(recordType string, id int64) slog.Attr {
	return slog.Group("record", slog.String("type", recordType), slog.Int64("id", id))
}
