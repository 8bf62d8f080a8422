// Package printers renders planner output to the terminal.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/swot/pkg/app"
	"tableflip.dev/swot/pkg/glyph"
	"tableflip.dev/swot/pkg/syllabus"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Notice prints a recovery or fallback warning ahead of normal output.
func (pp *PrettyPrint) Notice(msg string) {
	if msg == "" {
		return
	}
	w := color.New(color.FgHiYellow, color.Italic)
	_, _ = w.Fprintf(color.Output, "⚠ %s\n\n", msg)
}

// BlockHeader prints the resolved block line, e.g.
// "Deep Science I (science, 90 min, until 17:30)".
func (pp *PrettyPrint) BlockHeader(v app.AgendaView) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(color.Output, v.Block.Label)
	if v.Selection.Effective != v.Block.Type {
		_, _ = c.Fprintf(color.Output, " (%s, forced to %s", v.Block.Type, v.Selection.Effective)
	} else {
		_, _ = c.Fprintf(color.Output, " (%s", v.Block.Type)
	}
	if v.Block.Minutes > 0 {
		_, _ = c.Fprintf(color.Output, ", %d min, until %s", v.Block.Minutes, v.Block.End.Format("15:04"))
	}
	_, _ = c.Fprintln(color.Output, ")")
}

// Agenda prints the full agenda for a resolved view: header, then either a
// rest/planning message or the ranked task list.
func (pp *PrettyPrint) Agenda(v app.AgendaView) {
	pp.Notice(v.Notice)
	pp.BlockHeader(v)

	sel := v.Selection
	switch {
	case sel.Resting():
		pp.rest()
		return
	case sel.Planning():
		pp.planning()
		return
	case len(sel.Tasks) == 0:
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " nothing due, get ahead or rest\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, task := range sel.Tasks {
		marker := " "
		if i == 0 {
			marker = glyph.Frog
		}
		if task.Topic.ExtraQueue {
			marker = glyph.Urgent
		}
		tbl.AddRow(
			marker,
			fmt.Sprintf("%s · %s", task.Subject, task.Topic.Name),
			glyph.LevelBar(task.Topic.Level),
			overdueLabel(task.DaysOverdue),
			fmt.Sprintf("%d min", sel.MinutesPerTask),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if sel.Hidden > 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(color.Output, " …and %d more waiting; finish these first\n", sel.Hidden)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) rest() {
	f := color.New(color.FgHiGreen, color.Italic)
	_, _ = f.Fprint(color.Output, " rest block, no tasks. Books closed.\n\n")
}

func (pp *PrettyPrint) planning() {
	f := color.New(color.FgHiCyan, color.Italic)
	_, _ = f.Fprint(color.Output, " planning block: review the week and walk the error log.\n\n")
}

// Syllabus prints every subject with its topics, levels and markers.
func (pp *PrettyPrint) Syllabus(r *syllabus.Repository) {
	for _, subject := range r.SubjectNames() {
		topics, err := r.Topics(subject)
		if err != nil {
			continue
		}
		cat := color.New(color.Faint)
		pp.Title(fmt.Sprintf("%s %s", subject, cat.Sprintf("(%s)", r.DefaultCategory(subject))))

		tbl := uitable.New()
		tbl.Separator = "  "
		for _, t := range topics {
			tbl.AddRow(
				glyph.TopicMarkers(t),
				t.Name,
				glyph.LevelBar(t.Level),
				dueLabel(t),
			)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		fmt.Println("")
	}
}

// Errors prints the error log: every topic with a recorded mistake.
func (pp *PrettyPrint) Errors(refs []syllabus.Ref) {
	pp.Title("Error Log")
	if len(refs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for _, ref := range refs {
		tbl.AddRow(glyph.Drill, fmt.Sprintf("%s · %s", ref.Subject, ref.Topic.Name), ref.Topic.LastError)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Notes prints the dated scratchpad with 1-based positions for deletion.
func (pp *PrettyPrint) Notes(notes []syllabus.Note) {
	pp.Title("Notes")
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 70
	d := color.New(color.Faint)
	for i, n := range notes {
		tbl.AddRow(fmt.Sprintf("%2d", i+1), n.Text, d.Sprint(n.Date.String()))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Legend prints the marker key.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Marker"), bold.Sprint("Meaning"))
	for _, m := range glyph.DefaultMarkers() {
		tbl.AddRow(m.Symbol, m.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func overdueLabel(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("%d d overdue", days)
	case days == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %d d", -days)
	}
}

func dueLabel(t *syllabus.Topic) string {
	if !t.Unlocked {
		return "locked"
	}
	if t.NextReview.IsZero() {
		return ""
	}
	return "next " + t.NextReview.String()
}
