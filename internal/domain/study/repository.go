package study

import "context"

type DocumentRepository interface {
	Save(ctx context.Context, d *Document) error
	Update(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id uint) (*Document, error)
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*Document, int64, error)
}

type ArtifactRepository interface {
	Save(ctx context.Context, a *Artifact) error
	GetByID(ctx context.Context, id uint) (*Artifact, error)
	ListByUser(ctx context.Context, userID uint, kind *ArtifactKind, page, pageSize int) ([]*Artifact, int64, error)
}
