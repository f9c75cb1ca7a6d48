package models

// Document is a wiki page as returned by the backend.
type Document struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	AuthorID  string     `json:"authorId,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
	Revisions []Revision `json:"revisions,omitempty"`
}

// Revision is a stored historical version of a document, restorable by ID.
type Revision struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// DocumentPatch carries partial fields for a document update. Nil fields are
// omitted from the request body so the server keeps their current values.
type DocumentPatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}
