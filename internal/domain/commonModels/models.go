package commonModels

import "time"

// Document is a named source submitted for ingestion. Only its derived
// fragments are persisted - the document itself never is.
type Document struct {
	Id          string    `json:"source_doc_id"`
	Name        string    `json:"source"`
	SessionId   string    `json:"session_id"`
	ContentType DocType   `json:"type"`
	TotalPages  int       `json:"total_pages,omitempty"`
	IngestedAt  time.Time `json:"ingested_at"`
}

// Fragment is one chunked, embedded unit of ingested text. Every fragment
// stored for a session carries that session's id.
type Fragment struct {
	Doc       Document
	Id        string `json:"fragment_id"`
	Text      string `json:"content"`
	Page      int    `json:"page,omitempty"`
	PageOrder int    `json:"chunk_order"`
	Seq       int64  `json:"seq"` //insertion order, breaks score ties oldest-first
}

// Match is one retrieval hit: fragment plus cosine similarity.
type Match struct {
	Fragment Fragment
	Score    float32
}

type DocType string

var (
	PDF     DocType = "pdf"
	DOCX    DocType = "docx"
	TXT     DocType = "txt"
	IMAGE   DocType = "image"
	AUDIO   DocType = "audio"
	YOUTUBE DocType = "youtube"
	ERR     DocType = "error"
)
