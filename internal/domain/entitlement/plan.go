package entitlement

import "fmt"

// PlanTier is the subscription level governing feature access and quotas.
// TierAdmin is a resolved tier only: it is never stored on a subscription row.
type PlanTier string

const (
	TierFree    PlanTier = "free"
	TierMonthly PlanTier = "monthly"
	TierYearly  PlanTier = "yearly"
	TierAdmin   PlanTier = "admin"
)

// StorableTiers are the tiers a subscription row may carry.
var StorableTiers = map[PlanTier]bool{
	TierFree:    true,
	TierMonthly: true,
	TierYearly:  true,
}

func (t PlanTier) IsValid() bool {
	switch t {
	case TierFree, TierMonthly, TierYearly, TierAdmin:
		return true
	}
	return false
}

func (t PlanTier) String() string {
	return string(t)
}

// ResourceKind is one of the metered content types.
type ResourceKind string

const (
	ResourceDocuments  ResourceKind = "documents"
	ResourceQuizzes    ResourceKind = "quizzes"
	ResourceFlashcards ResourceKind = "flashcards"
	ResourceSummaries  ResourceKind = "summaries"
	ResourceMindMaps   ResourceKind = "mind_maps"
)

// AllResourceKinds lists every metered resource kind.
var AllResourceKinds = []ResourceKind{
	ResourceDocuments,
	ResourceQuizzes,
	ResourceFlashcards,
	ResourceSummaries,
	ResourceMindMaps,
}

func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceDocuments, ResourceQuizzes, ResourceFlashcards, ResourceSummaries, ResourceMindMaps:
		return true
	}
	return false
}

func (k ResourceKind) String() string {
	return string(k)
}

// Unlimited marks a resource with no quota.
const Unlimited = -1

// Limits holds the per-resource quotas and feature flags for a plan tier.
// A limit of Unlimited (-1) never gates.
type Limits struct {
	Documents  int
	Quizzes    int
	Flashcards int
	Summaries  int
	MindMaps   int

	OfflineAccess bool
	Transcription bool
	Planning      bool
}

// For returns the limit for the given resource kind.
func (l Limits) For(kind ResourceKind) (int, error) {
	switch kind {
	case ResourceDocuments:
		return l.Documents, nil
	case ResourceQuizzes:
		return l.Quizzes, nil
	case ResourceFlashcards:
		return l.Flashcards, nil
	case ResourceSummaries:
		return l.Summaries, nil
	case ResourceMindMaps:
		return l.MindMaps, nil
	default:
		return 0, fmt.Errorf("unknown resource kind: %s", kind)
	}
}

// LimitsFor maps every plan tier to its limits. This is the single source of
// truth for quota decisions; enforcement points must not define their own
// limit tables.
func LimitsFor(tier PlanTier) (Limits, error) {
	switch tier {
	case TierFree:
		return Limits{
			Documents:  3,
			Quizzes:    5,
			Flashcards: 5,
			Summaries:  5,
			MindMaps:   3,
		}, nil
	case TierMonthly, TierYearly, TierAdmin:
		return Limits{
			Documents:     Unlimited,
			Quizzes:       Unlimited,
			Flashcards:    Unlimited,
			Summaries:     Unlimited,
			MindMaps:      Unlimited,
			OfflineAccess: true,
			Transcription: true,
			Planning:      true,
		}, nil
	default:
		return Limits{}, fmt.Errorf("unknown plan tier: %s", tier)
	}
}

// Decision is the answer to "may this user consume one more unit of a
// resource kind right now."
type Decision struct {
	Allowed bool     `json:"allowed"`
	Current int      `json:"current"`
	Limit   int      `json:"limit"`
	Plan    PlanTier `json:"plan"`
	Message string   `json:"message,omitempty"`
}
