package cli

import (
	"github.com/dmitrijs2005/diarykeeper/internal/client/editor"
)

// notify prints the notice carried by o, if any.
func (a *App) notify(o editor.Outcome) {
	if o.Discarded || o.Notice.Message == "" {
		return
	}
	switch o.Notice.Level {
	case editor.LevelSuccess:
		a.printf("[ok] %s\n", o.Notice.Message)
	case editor.LevelError:
		a.printf("[error] %s\n", o.Notice.Message)
	default:
		a.println(o.Notice.Message)
	}
}

func successNotice(msg string) editor.Outcome {
	return editor.Outcome{Notice: editor.Notice{Level: editor.LevelSuccess, Message: msg, Duration: editor.SuccessDuration}}
}

func errorNotice(err error, msg string) editor.Outcome {
	return editor.Outcome{Err: err, Notice: editor.Notice{Level: editor.LevelError, Message: msg, Duration: editor.ErrorDuration}}
}
