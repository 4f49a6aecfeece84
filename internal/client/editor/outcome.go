package editor

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
)

// Notice display durations.
const (
	SuccessDuration       = 2 * time.Second
	ErrorDuration         = 4 * time.Second
	ExtendedErrorDuration = 5 * time.Second
)

// BackendUnavailableMarker appears in server messages when the AI backend
// cannot be reached. Such failures are shown for ExtendedErrorDuration.
const BackendUnavailableMarker = "Ollama"

const (
	MsgLoadFailed           = "Failed to load diary"
	MsgFillRequired         = "Please fill in both title and content"
	MsgCreated              = "Diary created successfully"
	MsgUpdated              = "Diary updated successfully"
	MsgSaveFailed           = "Failed to save diary"
	MsgSaveFirst            = "Please save the diary first"
	MsgInsightReady         = "AI insight generated!"
	MsgInsightFailed        = "Failed to generate AI insight"
	MsgWriteSomething       = "Please write some content first"
	MsgRecommendationReady  = "Recommendation generated!"
	MsgRecommendationFailed = "Failed to generate recommendation"
)

type Level int

const (
	LevelNone Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "none"
	}
}

// Notice is a transient message for the user.
type Notice struct {
	Level    Level
	Message  string
	Duration time.Duration
}

// Outcome is the result of a controller operation. Err is nil on success
// and otherwise matches one of the common error kinds.
type Outcome struct {
	Err    error
	Notice Notice
	// Leave tells the presentation layer to navigate away from the editor.
	Leave bool
	// Discarded is set when the controller was closed, or another entry was
	// loaded, before the request resolved. Nothing was applied and nothing
	// should be shown.
	Discarded bool
}

func (o Outcome) OK() bool { return o.Err == nil && !o.Discarded }

func succeeded(msg string) Outcome {
	return Outcome{Notice: Notice{Level: LevelSuccess, Message: msg, Duration: SuccessDuration}}
}

func failed(err error, msg string) Outcome {
	return Outcome{Err: err, Notice: Notice{Level: LevelError, Message: msg, Duration: ErrorDuration}}
}

// failedWithDetail prefers the server's detail over the generic message.
func failedWithDetail(err error, generic string) Outcome {
	return failed(err, common.MessageOr(err, generic))
}

func extendIfBackendDown(o Outcome) Outcome {
	if strings.Contains(o.Notice.Message, BackendUnavailableMarker) {
		o.Notice.Duration = ExtendedErrorDuration
	}
	return o
}

var discarded = Outcome{Discarded: true}
