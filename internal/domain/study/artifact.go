package study

import (
	"encoding/json"
	"fmt"
	"time"
)

// ArtifactKind is the generated study content type.
type ArtifactKind string

const (
	ArtifactQuiz       ArtifactKind = "quiz"
	ArtifactFlashcards ArtifactKind = "flashcards"
	ArtifactSummary    ArtifactKind = "summary"
	ArtifactMindMap    ArtifactKind = "mind_map"
)

func (k ArtifactKind) IsValid() bool {
	switch k {
	case ArtifactQuiz, ArtifactFlashcards, ArtifactSummary, ArtifactMindMap:
		return true
	}
	return false
}

// Artifact is a generated study artifact: the parsed LLM output as JSON,
// plus pre-rendered sanitized HTML for markdown-bearing kinds (summaries).
type Artifact struct {
	id         uint
	userID     uint
	documentID uint
	kind       ArtifactKind
	title      string
	content    json.RawMessage
	renderedAt time.Time
	html       string
	createdAt  time.Time
}

func NewArtifact(userID, documentID uint, kind ArtifactKind, title string, content json.RawMessage) (*Artifact, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if documentID == 0 {
		return nil, fmt.Errorf("document ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid artifact kind: %s", kind)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if !json.Valid(content) {
		return nil, fmt.Errorf("content is not valid JSON")
	}

	return &Artifact{
		userID:     userID,
		documentID: documentID,
		kind:       kind,
		title:      title,
		content:    content,
		createdAt:  time.Now().UTC(),
	}, nil
}

// ReconstructArtifact reconstructs an artifact from persistence.
func ReconstructArtifact(
	id, userID, documentID uint,
	kind ArtifactKind,
	title string,
	content json.RawMessage,
	html string,
	createdAt time.Time,
) (*Artifact, error) {
	if id == 0 {
		return nil, fmt.Errorf("artifact ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid artifact kind: %s", kind)
	}

	return &Artifact{
		id:         id,
		userID:     userID,
		documentID: documentID,
		kind:       kind,
		title:      title,
		content:    content,
		html:       html,
		createdAt:  createdAt,
	}, nil
}

func (a *Artifact) ID() uint                 { return a.id }
func (a *Artifact) UserID() uint             { return a.userID }
func (a *Artifact) DocumentID() uint         { return a.documentID }
func (a *Artifact) Kind() ArtifactKind       { return a.kind }
func (a *Artifact) Title() string            { return a.title }
func (a *Artifact) Content() json.RawMessage { return a.content }
func (a *Artifact) HTML() string             { return a.html }
func (a *Artifact) CreatedAt() time.Time     { return a.createdAt }

// SetHTML attaches pre-rendered sanitized HTML.
func (a *Artifact) SetHTML(html string) {
	a.html = html
	a.renderedAt = time.Now().UTC()
}

// SetID sets the artifact ID (only for persistence layer use)
func (a *Artifact) SetID(id uint) error {
	if id == 0 {
		return fmt.Errorf("artifact ID cannot be zero")
	}
	a.id = id
	return nil
}
