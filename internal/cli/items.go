package cli

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Makepad-fr/tada/internal/api"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	localOnlyHint = "the server did not accept this change; it was applied locally only and is not saved"
	loginHint     = "the server rejected the credentials. Run: todo auth login"
)

// authHint points at login when the server answered 401.
func authHint(err error) {
	if api.IsStatus(err, http.StatusUnauthorized) {
		ui.Warn(loginHint)
	}
}

// load fetches the list for one-shot commands. A failure shows the same
// warning the TUI banner does and continues with an empty list.
func (a *app) load(ctx context.Context) state.State {
	st := state.State{}.LoadStarted()
	items, err := a.svc.Load(ctx)
	if err != nil {
		ui.Warn(state.LoadWarning)
		authHint(err)
		return st.LoadFailed(state.LoadWarning)
	}
	return st.LoadSucceeded(items)
}

func (a *app) doInteractive(ctx context.Context) int {
	final, err := tui.Run(ctx, a.svc)
	if err != nil {
		ui.Fail(err.Error())
		return exitError
	}
	c := final.Counts()
	ui.Println(ui.Current().Muted.Render(fmt.Sprintf("%d items, %d completed", c.Total, c.Completed)))
	return exitOK
}

func (a *app) doList(ctx context.Context, args []string) int {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.SetOutput(ui.ErrOutput())
	group := fs.Bool("group", false, "group output by pending/done")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	st := a.load(ctx)
	t := ui.Current()
	if len(st.Items) == 0 {
		ui.Println(t.Muted.Render("No todos yet. Add one with `todo add <title>`."))
		return exitOK
	}
	if !*group {
		for i, it := range st.Items {
			ui.Println(formatItem(i+1, it))
		}
		return exitOK
	}
	for _, done := range []bool{false, true} {
		heading := t.Pending.Render(t.SymPending + " Pending")
		if done {
			heading = t.Success.Render(t.SymDone + " Done")
		}
		ui.Println(heading)
		for i, it := range st.Items {
			if it.IsCompleted == done {
				ui.Println("  " + formatItem(i+1, it))
			}
		}
	}
	return exitOK
}

func formatItem(n int, it model.Item) string {
	t := ui.Current()
	box, title := t.BoxUnchecked, it.Title
	if it.IsCompleted {
		box, title = t.Success.Render(t.BoxChecked), t.Done.Render(title)
	}
	line := fmt.Sprintf("%3d %s %s", n, box, title)
	if it.ID.IsLocal() {
		line += " " + t.Muted.Render("(local)")
	}
	return line
}

func (a *app) doAdd(ctx context.Context, title string) int {
	title = strings.TrimSpace(title)
	if title == "" {
		ui.Fail("add: empty title")
		return exitUsage
	}
	out, _ := a.svc.Add(ctx, title)
	report("added", out)
	return exitOK
}

func (a *app) doToggle(ctx context.Context, userIndex int) int {
	st := a.load(ctx)
	it, code := pick(st, userIndex)
	if code != exitOK {
		return code
	}
	out := a.svc.Toggle(ctx, it)
	if out.Item.IsCompleted {
		report("marked done", out)
	} else {
		report("marked pending", out)
	}
	return exitOK
}

func (a *app) doRemove(ctx context.Context, userIndex int) int {
	st := a.load(ctx)
	it, code := pick(st, userIndex)
	if code != exitOK {
		return code
	}
	report("removed", a.svc.Delete(ctx, it.ID))
	return exitOK
}

func (a *app) doStats(ctx context.Context) int {
	st := a.load(ctx)
	c := st.Counts()
	t := ui.Current()
	ui.Panel([]string{
		t.Title.Render("Todos"),
		fmt.Sprintf("%s %d  %s %d  %s %d",
			t.Accent.Render("Total"), c.Total,
			t.Success.Render("Completed"), c.Completed,
			t.Pending.Render("Remaining"), c.Remaining),
		ui.ProgressBar(c.Completed, c.Total, 28),
	})
	return exitOK
}

func pick(st state.State, userIndex int) (model.Item, int) {
	if userIndex < 1 || userIndex > len(st.Items) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(st.Items), userIndex))
		ui.Warn("Hint: run `todo list` to see valid indexes")
		return model.Item{}, exitUsage
	}
	return st.Items[userIndex-1], exitOK
}

// report prints the result; local outcomes also get a warning line.
func report(verb string, out state.Outcome) {
	if out.IsLocal() {
		ui.OK(verb + " (local only)")
		ui.Warn(localOnlyHint)
		authHint(out.Err)
		return
	}
	ui.OK(verb)
}
