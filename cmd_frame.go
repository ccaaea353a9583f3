package main

import (
	"time"

	"github.com/andareed/siftly-heatmap/heatmap"
	"github.com/andareed/siftly-heatmap/logging"
	tea "github.com/charmbracelet/bubbletea"
)

type playTickMsg struct{ id int }

// setFrame moves the slider, clamping into [0, N-1], and recomputes
// everything derived from the displayed frame.
func (m *model) setFrame(idx int) {
	if m.data.seq.Len() == 0 {
		return
	}
	m.data.frameIdx = m.data.seq.Clamp(idx)
	f := m.data.frame()
	m.data.summary = heatmap.Summarize(f)
	m.brush.Refresh(f, m.ui.layout)
	m.refreshView()
}

func (m *model) stepFrame(delta int) {
	m.setFrame(m.data.frameIdx + delta)
}

func (m *model) togglePlay() tea.Cmd {
	if m.ui.playing {
		m.stopPlay()
		return nil
	}
	if m.data.seq.Len() < 2 {
		return m.startNotice("Nothing to play", noticeWarn, noticeDuration)
	}
	m.ui.playing = true
	m.ui.playSeq++
	logging.Debugf("playback started at frame %d", m.data.frameIdx)
	return m.playTick()
}

// stopPlay also invalidates any tick already in flight.
func (m *model) stopPlay() {
	if m.ui.playing {
		logging.Debugf("playback stopped at frame %d", m.data.frameIdx)
	}
	m.ui.playing = false
	m.ui.playSeq++
}

func (m *model) playTick() tea.Cmd {
	id := m.ui.playSeq
	d := m.cfg.frameTick
	if d <= 0 {
		d = 100 * time.Millisecond
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return playTickMsg{id: id} })
}

func (m *model) handlePlayTick(msg playTickMsg) tea.Cmd {
	if !m.ui.playing || msg.id != m.ui.playSeq {
		return nil
	}
	_, hi := m.data.sliderRange()
	next := m.data.frameIdx + 1
	if next > hi {
		next = 0
	}
	m.setFrame(next)
	return m.playTick()
}
