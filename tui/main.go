package tui

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/quantbagel/Claude-reverse/internal/rev"
	"github.com/quantbagel/Claude-reverse/tui/draw"
)

const detailWidth = 50

// App is an interactive browser over the decompilation state: candidates
// in score order on the left, per-function stats on the right.
type App struct {
	tapp   *tview.Application
	detail *tview.TextView
	stats  *tview.TextView

	state rev.State
}

func renderFunctionText(name string, fi *rev.FuncInfo) string {
	w := detailWidth
	txt := draw.Header(w) + "\n"
	txt += draw.Line(w, " FUNCTION: "+name) + "\n"
	txt += draw.Break(w) + "\n"
	txt += draw.Field(w, "status", fi.Status) + "\n"
	txt += draw.Field(w, "size", strconv.FormatUint(fi.Size, 10)) + "\n"
	txt += draw.Field(w, "instructions", strconv.Itoa(fi.Instructions)) + "\n"
	txt += draw.Field(w, "branches", strconv.Itoa(fi.Branches)) + "\n"
	txt += draw.Field(w, "calls", strconv.Itoa(fi.Calls)) + "\n"
	txt += draw.Field(w, "attempts", strconv.Itoa(fi.Attempts)) + "\n"
	txt += draw.Field(w, "complexity", fmt.Sprintf("%.3f", fi.Score())) + "\n"
	txt += draw.Footer(w)
	return txt
}

func renderStatsText(state rev.State, candidates int) string {
	matched := 0
	for _, fi := range state {
		if fi.Status == rev.StatusMatched {
			matched++
		}
	}
	w := detailWidth
	txt := draw.Header(w) + "\n"
	txt += draw.Line(w, " CAMPAIGN STATS:") + "\n"
	txt += draw.Break(w) + "\n"
	txt += draw.Field(w, "functions", strconv.Itoa(len(state))) + "\n"
	txt += draw.Field(w, "matched", strconv.Itoa(matched)) + "\n"
	txt += draw.Field(w, "candidates", strconv.Itoa(candidates)) + "\n"
	txt += draw.Footer(w)
	return txt
}

// New builds the browser over the given state.
func New(state rev.State, maxAttempts int) *App {
	app := &App{
		tapp:  tview.NewApplication(),
		state: state,
	}

	cands := rev.Candidates(state, maxAttempts)
	inCands := make(map[string]bool, len(cands))
	for _, c := range cands {
		inCands[c.Name] = true
	}

	root := tview.NewTreeNode("functions").SetColor(tcell.ColorBlue)
	candNode := tview.NewTreeNode(fmt.Sprintf("candidates (%d)", len(cands)))
	candNode.SetExpanded(true)
	for _, c := range cands {
		candNode.AddChild(tview.NewTreeNode(c.Name).SetReference(c.Name))
	}

	var matched, skipped []string
	for name, fi := range state {
		switch {
		case fi.Status == rev.StatusMatched:
			matched = append(matched, name)
		case !inCands[name]:
			skipped = append(skipped, name)
		}
	}
	sort.Strings(matched)
	sort.Strings(skipped)

	matchedNode := tview.NewTreeNode(fmt.Sprintf("matched (%d)", len(matched)))
	matchedNode.SetExpanded(false)
	for _, name := range matched {
		matchedNode.AddChild(tview.NewTreeNode("[*] " + name).SetReference(name))
	}
	skippedNode := tview.NewTreeNode(fmt.Sprintf("skipped (%d)", len(skipped)))
	skippedNode.SetExpanded(false)
	for _, name := range skipped {
		skippedNode.AddChild(tview.NewTreeNode(name).SetReference(name))
	}

	root.AddChild(candNode)
	root.AddChild(matchedNode)
	root.AddChild(skippedNode)

	tree := tview.NewTreeView().SetRoot(root).SetCurrentNode(root)
	tree.SetBorder(true)
	tree.SetBorderColor(tcell.ColorTeal)

	app.detail = tview.NewTextView()
	tree.SetChangedFunc(func(node *tview.TreeNode) {
		if node == nil {
			return
		}
		name, ok := node.GetReference().(string)
		if !ok {
			return
		}
		if fi, found := app.state[name]; found {
			app.detail.SetText(renderFunctionText(name, fi))
		}
	})
	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		if node != nil && len(node.GetChildren()) > 0 {
			node.SetExpanded(!node.IsExpanded())
		}
	})

	app.stats = tview.NewTextView().SetText(renderStatsText(state, len(cands)))

	flex := tview.NewFlex().
		AddItem(tree, 0, 1, true).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(app.detail, 0, 3, false).
			AddItem(app.stats, 8, 1, false), 0, 2, false)

	app.tapp.SetRoot(flex, true)
	app.tapp.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.tapp.Stop()
			return nil
		}
		return event
	})

	return app
}

// Run blocks until the user quits.
func (a *App) Run() error {
	return a.tapp.Run()
}
