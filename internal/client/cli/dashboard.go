package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/diarykeeper/internal/client/editor"
)

const confirmDelete = "Are you sure you want to delete this diary? (y/N)"

// List reloads and prints the dashboard listing.
func (a *App) List(ctx context.Context) error {
	o := a.listing.Load(ctx)
	if !o.OK() {
		a.notify(o)
		return o.Err
	}

	entries := a.listing.Entries()
	if len(entries) == 0 {
		a.println("No diary entries yet. Type 'new' to write one.")
		return nil
	}
	for _, e := range entries {
		a.printf("%s  %s  %s\n", e.ID, e.UpdatedAt.Local().Format("2006-01-02 15:04"), e.Title)
		if p := e.Preview(80); p != "" {
			a.printf("    %s\n", p)
		}
	}
	return nil
}

// Delete asks for confirmation and deletes the entry.
func (a *App) Delete(ctx context.Context, id string) error {
	id, err := a.argOrPrompt(id, "Enter entry id to delete")
	if err != nil || id == "" {
		return err
	}

	ok, err := Confirm(a.reader, confirmDelete, a.out)
	if err != nil || !ok {
		return err
	}

	o := a.listing.Delete(ctx, id)
	a.notify(o)
	return o.Err
}

// Status prints whether the AI advisor is reachable.
func (a *App) Status(ctx context.Context) error {
	st, err := a.api.AdvisorStatus(ctx)
	if err != nil {
		a.notify(errorNotice(err, "Failed to query advisor status"))
		return err
	}

	switch {
	case !st.Available:
		a.printf("AI advisor offline: %s\n", st.Error)
	case !st.ModelAvailable:
		a.printf("AI advisor online, model %s not installed (have: %s)\n", st.Model, strings.Join(st.Models, ", "))
	default:
		a.printf("AI advisor online, model %s ready\n", st.Model)
	}
	return nil
}

// New opens the editor on an empty entry.
func (a *App) New(ctx context.Context) error {
	ctrl := editor.New(a.api, a.logger)
	a.edit(ctx, ctrl)
	return a.List(ctx)
}

// Open loads an existing entry into the editor.
func (a *App) Open(ctx context.Context, id string) error {
	id, err := a.argOrPrompt(id, "Enter entry id to open")
	if err != nil || id == "" {
		return err
	}

	ctrl := editor.New(a.api, a.logger)
	o := ctrl.Load(ctx, id)
	a.notify(o)
	if o.Leave {
		ctrl.Close()
		return o.Err
	}

	a.edit(ctx, ctrl)
	return a.List(ctx)
}

func (a *App) argOrPrompt(arg, prompt string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}
