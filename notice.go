package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

// Notice kinds, used to pick the icon.
const (
	noticeInfo    = "info"
	noticeSuccess = "success"
	noticeWarn    = "warn"
	noticeError   = "error"
)

var noticeIcons = map[string]string{
	noticeInfo:    "ℹ",
	noticeSuccess: "✓",
	noticeWarn:    "!",
	noticeError:   "×",
}

func noticeText(msg, kind string) string {
	if msg == "" {
		return ""
	}
	if icon, ok := noticeIcons[kind]; ok {
		return icon + " " + msg
	}
	return msg
}

// startNotice shows msg in the status line until d elapses or a newer notice
// replaces it.
func (m *model) startNotice(msg, kind string, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeType = kind

	// older timers carry a stale id and are ignored
	m.ui.noticeSeq++
	id := m.ui.noticeSeq
	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
