package editor

import "github.com/dmitrijs2005/diarykeeper/internal/client/models"

// State is the lifecycle position of the entry buffer.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateLoaded
	StateDirty
	StateSaving
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateDirty:
		return "dirty"
	case StateSaving:
		return "saving"
	case StateNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Phase tracks an AI request independently of the entry state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseAvailable
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseAvailable:
		return "available"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Flags are true while at least one request of that kind is outstanding.
type Flags struct {
	Saving                bool
	LoadingInsight        bool
	LoadingRecommendation bool
}

// Snapshot is a consistent copy of the controller's state.
type Snapshot struct {
	Entry          models.Entry
	State          State
	Insight        Phase
	Recommendation Phase
	Flags          Flags
}
