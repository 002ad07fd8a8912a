package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ansafin/learnsync/internal/service"
	"github.com/ansafin/learnsync/models"
)

// timeNow is swapped in tests to fix the session clock.
var timeNow = time.Now

// ratedMsg reports the outcome of one rating.
type ratedMsg struct {
	card models.ReviewCard
	err  error
}

// reviewModel walks the due cards one by one: a digit key 0-5 rates the
// card on screen, and once the deck is exhausted the model switches to
// the summary view.
type reviewModel struct {
	ctx      context.Context
	services *service.ClientServices
	userID   int64

	total      int
	rated      int
	lastCard   *models.ReviewCard
	errMsg     string
	done       bool
	quitByUser bool
}

func newReviewModel(ctx context.Context, services *service.ClientServices, userID int64, total int) reviewModel {
	return reviewModel{
		ctx:      ctx,
		services: services,
		userID:   userID,
		total:    total,
		done:     total == 0,
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.done {
			if key.Matches(msg, keys.any) || key.Matches(msg, keys.quit) {
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit

		case key.Matches(msg, keys.sync):
			m.services.SyncJob.Trigger()
			return m, nil

		case key.Matches(msg, keys.rate):
			quality, err := strconv.Atoi(msg.String())
			if err != nil {
				return m, nil
			}
			return m, m.rateCmd(quality)
		}

	case ratedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.rated++
		m.lastCard = &msg.card
		if _, ok := m.services.ReviewSession.Current(); !ok {
			m.done = true
		}
		return m, nil
	}

	return m, nil
}

func (m reviewModel) rateCmd(quality int) tea.Cmd {
	return func() tea.Msg {
		card, err := m.services.ReviewSession.RateCurrent(m.ctx, quality, timeNow())
		return ratedMsg{card: card, err: err}
	}
}

func (m reviewModel) View() string {
	if m.done {
		return appStyle.Render(m.summaryView())
	}

	card, ok := m.services.ReviewSession.Current()
	if !ok {
		return appStyle.Render(m.summaryView())
	}

	view := titleStyle.Render(fmt.Sprintf("Review session — card %d of %d", m.rated+1, m.total)) + "\n\n"
	view += questionStyle.Render("Question: "+card.QuestionID) + "\n\n"

	if card.LastReviewedAt != nil {
		view += fmt.Sprintf("last reviewed %s, interval %d day(s)\n\n",
			card.LastReviewedAt.Format("2006-01-02"), card.IntervalDays)
	} else {
		view += "first review of this card\n\n"
	}

	if m.lastCard != nil {
		view += fmt.Sprintf("previous card rescheduled in %d day(s)\n\n", m.lastCard.IntervalDays)
	}

	if m.errMsg != "" {
		view += errorStyle.Render(m.errMsg) + "\n\n"
	}

	view += helpStyle.Render("rate recall 0 (blackout) … 5 (perfect) · s sync now · q quit")
	return appStyle.Render(view)
}

func (m reviewModel) summaryView() string {
	summary := m.services.ReviewSession.Summary()

	view := titleStyle.Render("Session complete") + "\n\n"
	if summary.Rated == 0 {
		view += "No cards were due.\n\n"
	} else {
		view += fmt.Sprintf("cards rated:     %d\n", summary.Rated)
		view += fmt.Sprintf("average quality: %.1f\n", summary.AverageQuality)
		view += fmt.Sprintf("elapsed:         %s\n\n", summary.Elapsed.Round(time.Second))
	}
	view += helpStyle.Render("press any key to exit")
	return view
}
