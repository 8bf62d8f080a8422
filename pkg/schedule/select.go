package schedule

import (
	"sort"

	"tableflip.dev/swot/pkg/syllabus"
	"tableflip.dev/swot/pkg/timeutil"
)

// Task is one candidate unit of work inside the current block.
type Task struct {
	Subject string
	Topic   *syllabus.Topic
	// DaysOverdue is today minus the review date; negative only for
	// urgency-flagged topics whose review date is still in the future.
	DaysOverdue int
}

// Selection is the agenda computed for a block.
type Selection struct {
	// Effective is the block type after the force-study remap.
	Effective BlockType
	// Ranked is the full eligible list in priority order.
	Ranked []Task
	// Tasks is Ranked truncated to what fits the block.
	Tasks []Task
	// Hidden counts the ranked tasks that did not fit.
	Hidden int
	// MinutesPerTask is the suggested time slice per selected task.
	MinutesPerTask int
}

// Resting reports that the block is downtime and no tasks were computed.
func (s Selection) Resting() bool { return s.Effective.Rest() }

// Planning reports the Sunday review block: plan the week, read the error
// notebook, no task list.
func (s Selection) Planning() bool { return s.Effective == Review }

// Select filters, ranks and time-boxes the repository against a block.
//
// force remaps rest blocks to mix ("show everything"), which is how the user
// deliberately studies through scheduled downtime. Ranking is a stable sort
// on (urgency, overdue days descending, level ascending) so equal keys keep
// encounter order: sorted subject name, then topic position.
func Select(b Block, repo *syllabus.Repository, force bool, today timeutil.Date, cfg Config) Selection {
	effective := b.Type
	if force && b.Type.Rest() {
		effective = Mix
	}
	sel := Selection{Effective: effective}
	if effective.Rest() || effective == Review {
		return sel
	}

	for _, subject := range repo.SubjectNames() {
		for _, t := range repo.Subjects[subject] {
			if !t.Unlocked || !t.Due(today) || !effective.Matches(t.Category) {
				continue
			}
			sel.Ranked = append(sel.Ranked, Task{
				Subject:     subject,
				Topic:       t,
				DaysOverdue: today.DaysSince(t.NextReview),
			})
		}
	}

	sort.SliceStable(sel.Ranked, func(i, j int) bool {
		a, b := sel.Ranked[i], sel.Ranked[j]
		if a.Topic.ExtraQueue != b.Topic.ExtraQueue {
			return a.Topic.ExtraQueue
		}
		if a.DaysOverdue != b.DaysOverdue {
			return a.DaysOverdue > b.DaysOverdue
		}
		return a.Topic.Level < b.Topic.Level
	})

	maxFit := cfg.MaxTasksFallback
	if b.Minutes > 0 {
		maxFit = b.Minutes / cfg.MinTaskMinutes
		if maxFit < 1 {
			maxFit = 1
		}
	}
	if maxFit > len(sel.Ranked) {
		maxFit = len(sel.Ranked)
	}
	sel.Tasks = sel.Ranked[:maxFit]
	sel.Hidden = len(sel.Ranked) - len(sel.Tasks)

	if len(sel.Tasks) > 0 {
		if b.Minutes > 0 {
			sel.MinutesPerTask = b.Minutes / len(sel.Tasks)
		} else {
			sel.MinutesPerTask = cfg.FallbackTaskMinutes
		}
	}
	return sel
}
