package journal

// CreateEntryRequest holds the text fields of the multipart upload.
// The audio part itself is read separately from the form.
type CreateEntryRequest struct {
	BookTitle  string `form:"bookTitle" validate:"max=300"`
	BookAuthor string `form:"bookAuthor" validate:"max=300"`
	Mood       string `form:"mood" validate:"omitempty,mood"`
}

// UpdateEntryRequest is the allow-listed set of editable fields.
// Anything else in the body is ignored.
type UpdateEntryRequest struct {
	BookTitle      *string `json:"bookTitle,omitempty" validate:"omitempty,max=300"`
	BookAuthor     *string `json:"bookAuthor,omitempty" validate:"omitempty,max=300"`
	Mood           *string `json:"mood,omitempty" validate:"omitempty,mood"`
	CinematicEntry *string `json:"cinematicEntry,omitempty"`
}

// ListEntriesRequest represents query parameters for listing entries
type ListEntriesRequest struct {
	Mood       string `query:"mood" validate:"omitempty,mood"`
	BookTitle  string `query:"bookTitle"`
	BookAuthor string `query:"bookAuthor"`
	From       string `query:"from" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To         string `query:"to" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Limit      int64  `query:"limit" validate:"min=0,max=500"`
}
