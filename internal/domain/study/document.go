package study

import (
	"fmt"
	"time"
)

// DocumentKind is the uploaded file type.
type DocumentKind string

const (
	DocumentPDF   DocumentKind = "pdf"
	DocumentImage DocumentKind = "image"
	DocumentAudio DocumentKind = "audio"
)

func (k DocumentKind) IsValid() bool {
	switch k {
	case DocumentPDF, DocumentImage, DocumentAudio:
		return true
	}
	return false
}

// DocumentStatus tracks text extraction progress.
type DocumentStatus string

const (
	DocumentProcessing DocumentStatus = "processing"
	DocumentReady      DocumentStatus = "ready"
	DocumentFailed     DocumentStatus = "failed"
)

// Document is an uploaded study source. The raw file lives in object
// storage under storageKey; extractedText is filled in once the external
// extraction service has processed it.
type Document struct {
	id            uint
	userID        uint
	title         string
	kind          DocumentKind
	storageKey    string
	status        DocumentStatus
	extractedText string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDocument(userID uint, title string, kind DocumentKind, storageKey string) (*Document, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid document kind: %s", kind)
	}
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}

	now := time.Now().UTC()
	return &Document{
		userID:     userID,
		title:      title,
		kind:       kind,
		storageKey: storageKey,
		status:     DocumentProcessing,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructDocument reconstructs a document from persistence.
func ReconstructDocument(
	id, userID uint,
	title string,
	kind DocumentKind,
	storageKey string,
	status DocumentStatus,
	extractedText string,
	createdAt, updatedAt time.Time,
) (*Document, error) {
	if id == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid document kind: %s", kind)
	}

	return &Document{
		id:            id,
		userID:        userID,
		title:         title,
		kind:          kind,
		storageKey:    storageKey,
		status:        status,
		extractedText: extractedText,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (d *Document) ID() uint               { return d.id }
func (d *Document) UserID() uint           { return d.userID }
func (d *Document) Title() string          { return d.title }
func (d *Document) Kind() DocumentKind     { return d.kind }
func (d *Document) StorageKey() string     { return d.storageKey }
func (d *Document) Status() DocumentStatus { return d.status }
func (d *Document) ExtractedText() string  { return d.extractedText }
func (d *Document) CreatedAt() time.Time   { return d.createdAt }
func (d *Document) UpdatedAt() time.Time   { return d.updatedAt }

// SetID sets the document ID (only for persistence layer use)
func (d *Document) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("document ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	d.id = id
	return nil
}

// MarkReady stores the extracted text and makes the document usable for
// generation.
func (d *Document) MarkReady(extractedText string) error {
	if extractedText == "" {
		return fmt.Errorf("extracted text is required")
	}
	d.extractedText = extractedText
	d.status = DocumentReady
	d.updatedAt = time.Now().UTC()
	return nil
}

// MarkFailed records an extraction failure.
func (d *Document) MarkFailed() {
	d.status = DocumentFailed
	d.updatedAt = time.Now().UTC()
}

// IsReady reports whether the document can feed generation.
func (d *Document) IsReady() bool {
	return d.status == DocumentReady && d.extractedText != ""
}
