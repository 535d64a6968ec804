package entitlement

import (
	"fmt"
	"time"
)

// Usage holds the per-period counters for one user. Counters are
// monotonically non-decreasing within a period; a new period gets a fresh
// zeroed row (the row is keyed by user and period start), so rollover never
// mutates history.
type Usage struct {
	id          uint
	userID      uint
	periodStart time.Time
	documents   int
	quizzes     int
	flashcards  int
	summaries   int
	mindMaps    int
	updatedAt   time.Time
}

// NewUsage creates a zeroed usage row for a user and period.
func NewUsage(userID uint, periodStart time.Time) (*Usage, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if periodStart.IsZero() {
		return nil, fmt.Errorf("period start is required")
	}

	return &Usage{
		userID:      userID,
		periodStart: periodStart.UTC(),
		updatedAt:   time.Now().UTC(),
	}, nil
}

// ReconstructUsage reconstructs a usage row from persistence.
func ReconstructUsage(
	id, userID uint,
	periodStart time.Time,
	documents, quizzes, flashcards, summaries, mindMaps int,
	updatedAt time.Time,
) (*Usage, error) {
	if id == 0 {
		return nil, fmt.Errorf("usage ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if periodStart.IsZero() {
		return nil, fmt.Errorf("period start is required")
	}

	return &Usage{
		id:          id,
		userID:      userID,
		periodStart: periodStart,
		documents:   documents,
		quizzes:     quizzes,
		flashcards:  flashcards,
		summaries:   summaries,
		mindMaps:    mindMaps,
		updatedAt:   updatedAt,
	}, nil
}

func (u *Usage) ID() uint               { return u.id }
func (u *Usage) UserID() uint           { return u.userID }
func (u *Usage) PeriodStart() time.Time { return u.periodStart }
func (u *Usage) Documents() int         { return u.documents }
func (u *Usage) Quizzes() int           { return u.quizzes }
func (u *Usage) Flashcards() int        { return u.flashcards }
func (u *Usage) Summaries() int         { return u.summaries }
func (u *Usage) MindMaps() int          { return u.mindMaps }
func (u *Usage) UpdatedAt() time.Time   { return u.updatedAt }

// CounterFor returns the current counter for the given resource kind.
func (u *Usage) CounterFor(kind ResourceKind) (int, error) {
	switch kind {
	case ResourceDocuments:
		return u.documents, nil
	case ResourceQuizzes:
		return u.quizzes, nil
	case ResourceFlashcards:
		return u.flashcards, nil
	case ResourceSummaries:
		return u.summaries, nil
	case ResourceMindMaps:
		return u.mindMaps, nil
	default:
		return 0, fmt.Errorf("unknown resource kind: %s", kind)
	}
}

// SetID sets the usage ID (only for persistence layer use)
func (u *Usage) SetID(id uint) error {
	if id == 0 {
		return fmt.Errorf("usage ID cannot be zero")
	}
	u.id = id
	return nil
}
