package event

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field name to its error message. An empty
// map means the candidate is valid.
type FieldErrors map[string]string

// Error joins the field messages for use in error returns.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}

// Form field names reported by Validate.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStart       = "startDate"
	FieldEnd         = "endDate"
)

// Validate checks a candidate event before it may be committed. Every
// rule is evaluated independently so multiple errors surface at once.
// The candidate is never mutated. Color and category always have
// defaults applied upstream and are not checked.
func Validate(e *Event) FieldErrors {
	errs := FieldErrors{}
	if e == nil {
		errs[FieldTitle] = "Title is required"
		errs[FieldStart] = "Start date is required"
		errs[FieldEnd] = "End date is required"
		return errs
	}

	title := strings.TrimSpace(e.Title)
	switch {
	case title == "":
		errs[FieldTitle] = "Title is required"
	case len([]rune(title)) > MaxTitleLen:
		errs[FieldTitle] = "Title must be 100 characters or less"
	}

	if len([]rune(e.Description)) > MaxDescriptionLen {
		errs[FieldDescription] = "Description must be 500 characters or less"
	}

	if e.Start.IsZero() {
		errs[FieldStart] = "Start date is required"
	}
	if e.End.IsZero() {
		errs[FieldEnd] = "End date is required"
	}

	// Reported against the end field, matching where the fix belongs.
	if !e.Start.IsZero() && !e.End.IsZero() && !e.Start.Before(e.End) {
		errs[FieldEnd] = "End date must be after start date"
	}

	return errs
}
