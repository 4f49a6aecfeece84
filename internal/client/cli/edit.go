package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/diarykeeper/internal/client/editor"
)

const editorHelp = "Editor commands: show, title [text], content, save, insight, recommend, back"

// edit runs the editor loop for ctrl until the user goes back or a save
// succeeds. AI requests run in the background; their results are printed
// when they arrive unless the editor has been left by then.
func (a *App) edit(ctx context.Context, ctrl *editor.Controller) {
	defer ctrl.Close()

	a.showEntry(ctrl.Snapshot())
	a.println(editorHelp)

	background := func(op func(context.Context) editor.Outcome) {
		a.bg.Add(1)
		go func() {
			defer a.bg.Done()
			o := op(context.WithoutCancel(ctx))
			if o.OK() {
				a.showAI(ctrl.Snapshot())
			}
			a.notify(o)
		}()
	}

	for {
		a.printf("edit %s> ", a.editStatus(ctrl.Snapshot()))
		line, err := a.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			if err != nil {
				return
			}
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "help":
			a.println(editorHelp)

		case "show":
			a.showEntry(ctrl.Snapshot())

		case "title":
			title := arg
			if title == "" {
				if title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
					return
				}
			}
			ctrl.SetTitle(title)

		case "content":
			content, err := getMultiline(a.reader, "Content", a.out)
			if err != nil {
				return
			}
			ctrl.SetContent(content)

		case "save":
			o := ctrl.Save(ctx)
			a.notify(o)
			if o.Leave {
				return
			}

		case "insight":
			background(ctrl.RequestInsight)

		case "recommend":
			background(ctrl.RequestRecommendation)

		case "back", "exit", "quit":
			return

		default:
			a.println("Unknown command:", cmd)
		}
	}
}

var getMultiline = GetMultiline

func (a *App) editStatus(s editor.Snapshot) string {
	parts := []string{s.State.String()}
	if s.Flags.Saving {
		parts = append(parts, "saving")
	}
	if s.Flags.LoadingInsight {
		parts = append(parts, "insight...")
	}
	if s.Flags.LoadingRecommendation {
		parts = append(parts, "recommendation...")
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (a *App) showEntry(s editor.Snapshot) {
	e := s.Entry
	id := e.ID
	if id == "" {
		id = "new entry"
	}
	a.printf("[%s]\nTitle: %s\n\n%s\n", id, e.Title, e.Content)
	a.showAI(s)
}

func (a *App) showAI(s editor.Snapshot) {
	if s.Entry.AIInsight != "" {
		a.printf("\nAI insight:\n%s\n", s.Entry.AIInsight)
	}
	if s.Entry.AIRecommendation != "" {
		a.printf("\nRecommendation:\n%s\n", s.Entry.AIRecommendation)
	}
}
