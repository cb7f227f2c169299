package main

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/flatstr"
	"github.com/iw2rmb/flatstr/flat"
)

type buffer = flat.String[[32]byte]

// snapshot is an undo step. buffer is a value type, so this is a full copy.
type snapshot struct {
	text   buffer
	cursor int
}

type model struct {
	text   buffer
	cursor int // byte index, always a char boundary

	history []snapshot
	limit   int
	dropped bool

	keys  keyMap
	style Style
}

func newModel(cfg Config) model {
	if cfg.HistoryLimit < 0 {
		cfg.HistoryLimit = 0
	}
	m := model{
		text:  flat.From[[32]byte](cfg.Text),
		limit: cfg.HistoryLimit,
		keys:  defaultKeyMap(),
		style: cfg.Style,
	}
	m.cursor = m.text.Len()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(k, m.keys.Undo):
		m.undo()
	case key.Matches(k, m.keys.Left):
		m.cursor = m.text.PrevCharBoundary(m.cursor)
	case key.Matches(k, m.keys.Right):
		m.cursor = m.text.NextCharBoundary(m.cursor)
	case key.Matches(k, m.keys.Home):
		m.cursor = 0
	case key.Matches(k, m.keys.End):
		m.cursor = m.text.Len()
	case key.Matches(k, m.keys.Backspace):
		if m.cursor > 0 {
			m.record()
			m.cursor = m.text.PrevCharBoundary(m.cursor)
			r := m.text.Remove(m.cursor)
			log.Printf("remove %q at %d", r, m.cursor)
		}
	case key.Matches(k, m.keys.Delete):
		if m.cursor < m.text.Len() {
			m.record()
			r := m.text.Remove(m.cursor)
			log.Printf("remove %q at %d", r, m.cursor)
		}
	case key.Matches(k, m.keys.Clear):
		m.record()
		m.text.Clear()
		m.cursor = 0
		m.dropped = false
	case key.Matches(k, m.keys.Truncate):
		m.record()
		m.text.Truncate(m.cursor)
	case k.Type == tea.KeyRunes || k.Type == tea.KeySpace:
		m.record()
		m.insert(k.Runes)
	}
	return m, nil
}

// insert types runes at the cursor. It stops at the first rune that does not
// fit; dropped reports whether anything was lost, typed or shifted out.
func (m *model) insert(runes []rune) {
	m.dropped = false
	for _, r := range runes {
		w := utf8.RuneLen(r)
		if w < 0 {
			r, w = utf8.RuneError, len(string(utf8.RuneError))
		}
		if m.cursor+w > m.text.Cap() {
			m.dropped = true
			log.Printf("insert %q at %d: no room", r, m.cursor)
			return
		}
		before := m.text.Len()
		m.text.InsertRune(m.cursor, r)
		m.cursor += w
		if m.text.Len() < before+w {
			m.dropped = true
			log.Printf("insert %q at %d: dropped %d tail bytes", r, m.cursor, before+w-m.text.Len())
		}
	}
}

func (m *model) record() {
	if m.limit == 0 {
		return
	}
	if len(m.history) == m.limit {
		copy(m.history, m.history[1:])
		m.history = m.history[:len(m.history)-1]
	}
	m.history = append(m.history, snapshot{text: m.text, cursor: m.cursor})
}

func (m *model) undo() {
	if len(m.history) == 0 {
		return
	}
	last := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.text, m.cursor = last.text, last.cursor
	m.dropped = false
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(m.style.Status.Render(fmt.Sprintf("flatstr %s · capacity %d bytes", flatstr.VersionTag(), m.text.Cap())))
	sb.WriteString("\n\n")
	sb.WriteString(m.style.Prompt.Render("> "))
	sb.WriteString(m.renderText())
	sb.WriteString("\n\n")

	stats := fmt.Sprintf("bytes %d/%d  chars %d  graphemes %d  width %d",
		m.text.Len(), m.text.Cap(), m.text.Chars(), m.text.Graphemes(), m.text.Width())
	sb.WriteString(m.style.Status.Render(stats))
	sb.WriteString("  ")
	sb.WriteString(m.renderBar())
	sb.WriteString("\n")

	if m.dropped {
		sb.WriteString(m.style.Warning.Render("dropped: content did not fit"))
	}
	sb.WriteString("\n")

	help := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	sb.WriteString(m.style.Help.Render(strings.Join(help, " · ")))
	return sb.String()
}

func (m model) renderText() string {
	s := m.text.String()
	before, at, after := s[:m.cursor], " ", ""
	if m.cursor < len(s) {
		next := m.text.NextCharBoundary(m.cursor)
		at, after = s[m.cursor:next], s[next:]
	}
	return m.style.Text.Render(before) + m.style.Cursor.Render(at) + m.style.Text.Render(after)
}

func (m model) renderBar() string {
	used := m.text.Len()
	free := m.text.Available()
	return m.style.BarFull.Render(strings.Repeat("█", used)) + m.style.BarFree.Render(strings.Repeat("·", free))
}
