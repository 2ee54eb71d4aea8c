package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/msgview/internal/core/config"
	"github.com/colonyops/msgview/internal/core/fixture"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/search"
	"github.com/colonyops/msgview/internal/core/sysmsg"
	"github.com/colonyops/msgview/pkg/tuitest"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func testDoc() *fixture.Document {
	return &fixture.Document{
		Conversation: "conv-1",
		Entries: []fixture.Entry{
			{ID: "hello", Kind: fixture.KindBody, Body: &fixture.BodyEntry{Author: "Ann", Text: "hi there"}},
		},
		Results: []fixture.SearchEntry{
			{
				ID: "hello", ConversationID: "conv-1", SentAt: now.Add(-time.Hour),
				Snippet: "hi <<left>>there<<right>>", Body: "hi there",
				From: &search.Person{ID: "ann", Title: "Ann"},
				To:   &search.Person{ID: "me", Title: "Me", IsMe: true},
			},
		},
		Banner: &fixture.Banner{Group: "Club", Admins: []sysmsg.Participant{{ID: "ann", Title: "Ann"}}},
	}
}

func newModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	m := New(context.Background(), &cfg, i18n.Default(), Options{
		Doc: testDoc(),
		Now: func() time.Time { return now },
	})
	return update(t, m, tuitest.WindowSize(80, 24))
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func render(m Model) string {
	return tuitest.StripANSI(m.Render())
}

func TestModel_StartsOnTimeline(t *testing.T) {
	m := newModel(t)

	assert.Equal(t, ViewTimeline, m.Active())
	got := render(m)
	assert.Contains(t, got, "Ann: hi there")
	assert.True(t, m.View().AltScreen)
	assert.Nil(t, m.Init(), "nothing to wait for without a watcher")
}

func TestModel_NextTab(t *testing.T) {
	m := newModel(t)

	m = update(t, m, tuitest.KeyPress(']'))
	assert.Equal(t, ViewSearch, m.Active())
	assert.Contains(t, render(m), "Ann to You")

	m = update(t, m, tuitest.KeyPress(']'))
	assert.Equal(t, ViewBanner, m.Active())
	assert.Contains(t, render(m), "Only admins can send messages.")

	m = update(t, m, tuitest.KeyPress(']'))
	assert.Equal(t, ViewTimeline, m.Active())
}

func TestModel_SearchOpenShowsToast(t *testing.T) {
	m := newModel(t)
	m = update(t, m, tuitest.KeyPress(']'))

	next, cmd := m.Update(tuitest.KeyEnter())
	m = next.(Model)

	assert.Equal(t, []string{"Open conversation conv-1 at hello"}, m.Toasts())
	assert.NotNil(t, cmd, "a toast starts the tick")
	assert.Contains(t, render(m), "Open conversation conv-1")

	m = update(t, m, tuitest.KeyEsc())
	assert.Len(t, m.Toasts(), 1, "esc on the search tab belongs to the filter")
}

func TestModel_ToastsExpire(t *testing.T) {
	m := newModel(t)
	m.toasts.Push(ToastInfo, "hello")

	for range int(defaultToastTTL / toastTickInterval) {
		m = update(t, m, toastTickMsg(now))
	}

	assert.Empty(t, m.Toasts())
}

func TestModel_FilterCapturesQuit(t *testing.T) {
	m := newModel(t)
	m = update(t, m, tuitest.KeyPress(']'))
	m = update(t, m, tuitest.KeyPress('/'))

	next, cmd := m.Update(tuitest.KeyPress('q'))
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Contains(t, render(m), "Filter: q")
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t)

	next, cmd := m.Update(tuitest.KeyPress('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).Render())
}

func TestModel_Reload(t *testing.T) {
	m := newModel(t)

	doc := testDoc()
	doc.Entries[0].Body.Text = "changed"
	m = update(t, m, reloadMsg{Doc: doc})

	assert.Contains(t, render(m), "Ann: changed")
	assert.Contains(t, m.Toasts(), "Reloaded")
}

func TestModel_ReloadError(t *testing.T) {
	m := newModel(t)

	m = update(t, m, reloadMsg{Err: assert.AnError})

	assert.Contains(t, render(m), "Ann: hi there", "the previous document stays")
	require.Len(t, m.Toasts(), 1)
	assert.Contains(t, m.Toasts()[0], "Reload failed")
}
