// Package browse is the read-only two-pane syllabus browser: subjects on the
// left, topics with levels and markers on the right.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/swot/pkg/app"
	"tableflip.dev/swot/pkg/glyph"
	"tableflip.dev/swot/pkg/syllabus"
)

type UI struct {
	Service *app.Service

	repo *syllabus.Repository

	dirty    string
	subjects []string

	index      *tui.Table
	indexTitle string
	indexView  *tui.Box

	topics      *tui.Table
	topicsView  *tui.Box
	topicsTitle string
}

func (d *UI) Do(ctx context.Context) error {
	iTable := tui.NewTable(1, 0)

	index := tui.NewVBox(
		iTable,
		tui.NewSpacer(),
	)
	index.SetBorder(true)
	index.SetSizePolicy(tui.Preferred, tui.Expanding)

	tTable := tui.NewTable(1, 0)
	tTable.SetFocused(true)
	tTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left or right arrows to navigate, 'k' for key, ESC or 'q' to QUIT`)

	topics := tui.NewVBox(tTable)
	topics.SetBorder(true)
	topics.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(index, topics)

	root := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	key := keyUI()
	key.SetBorder(true)
	key.SetTitle("key")

	popup := tui.NewVBox(
		tui.NewHBox(key, tui.NewSpacer()),
		tui.NewSpacer(),
		status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	repo, notice, err := d.Service.Snapshot(ctx)
	if err != nil {
		return err
	}
	if notice != "" {
		status.SetText(notice)
	}

	d.repo = repo
	d.index = iTable
	d.indexTitle = "subjects"
	d.indexView = index
	d.topics = tTable
	d.topicsView = topics

	d.populateIndex()

	iTable.OnSelectionChanged(func(table *tui.Table) {
		d.populateTopics()
	})

	isKey := false
	ui.SetKeybinding("k", func() {
		if isKey {
			ui.SetWidget(root)
			isKey = false
		} else {
			ui.SetWidget(popup)
			isKey = true
		}
	})

	ui.SetKeybinding("Left", func() {
		d.focusIndex()
	})

	ui.SetKeybinding("Right", func() {
		d.focusTopics()
	})

	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	d.populateTopics()
	d.focusIndex()

	if err := ui.Run(); err != nil {
		return err
	}
	return nil
}

func (d *UI) focusIndex() {
	d.index.SetFocused(true)
	d.indexView.SetTitle(strings.ToUpper(d.indexTitle))

	d.topics.SetFocused(false)
	d.topicsView.SetTitle(d.topicsTitle)
}

func (d *UI) focusTopics() {
	d.index.SetFocused(false)
	d.indexView.SetTitle(d.indexTitle)

	d.topics.SetFocused(true)
	d.topicsView.SetTitle(strings.ToUpper(d.topicsTitle))
}

func (d *UI) populateIndex() {
	d.index.RemoveRows()
	d.index.Select(0)

	d.subjects = d.repo.SubjectNames()
	for _, name := range d.subjects {
		d.index.AppendRow(tui.NewLabel(name))
	}
}

func (d *UI) populateTopics() {
	selected := ""
	if i := d.index.Selected(); i >= 0 && i < len(d.subjects) {
		selected = d.subjects[i]
	}

	if d.dirty != selected {
		d.topics.RemoveRows()
		d.topicsTitle = selected
		d.topicsView.SetTitle(selected)
		if topics, err := d.repo.Topics(selected); err == nil {
			for _, t := range topics {
				d.topics.AppendRow(tui.NewLabel(topicLine(t)))
			}
		}
		d.dirty = selected
	}
}

func topicLine(t *syllabus.Topic) string {
	markers := glyph.TopicMarkers(t)
	if markers == "" {
		markers = " "
	}
	line := fmt.Sprintf("%s %s  %s", markers, t.Name, glyph.LevelBar(t.Level))
	if t.Unlocked && !t.NextReview.IsZero() {
		line += "  next " + t.NextReview.String()
	}
	return line
}

func keyUI() *tui.Box {
	rows := make([]tui.Widget, 0)
	rows = append(rows, tui.NewLabel("Markers"))
	for _, m := range glyph.DefaultMarkers() {
		rows = append(rows, tui.NewLabel(fmt.Sprintf("%s  %s", m.Symbol, m.Meaning)))
	}
	rows = append(rows, tui.NewSpacer())
	return tui.NewVBox(rows...)
}
