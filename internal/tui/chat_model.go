// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package tui

import (
	"context"
	"strings"

	"github.com/MarlyasDad/cheat-chat/internal/logger"
	"github.com/MarlyasDad/cheat-chat/internal/service"
	"github.com/MarlyasDad/cheat-chat/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// title, two dividers, input, status bar, help and app padding
	chromeHeight = 8
)

type chatModel struct {
	ctx    context.Context
	queues service.Queues
	fatal  <-chan error
	info   models.BuildInfo
	logger *logger.Logger

	viewport viewport.Model
	input    textinput.Model
	lines    []string

	readState models.ConnectionState
	sendState models.ConnectionState
	nickname  string
	notice    string

	overlay    *errorOverlayModel
	fatalErr   error
	showAbout  bool
	quitByUser bool

	width  int
	height int

	copyToClipboard func(string) error
}

func newChatModel(ctx context.Context, queues service.Queues, fatal <-chan error, info models.BuildInfo, log *logger.Logger) chatModel {
	in := textinput.New()
	in.Placeholder = "Введите сообщение"
	in.Prompt = "> "
	in.Focus()

	m := chatModel{
		ctx:             ctx,
		queues:          queues,
		fatal:           fatal,
		info:            info,
		logger:          log,
		viewport:        viewport.New(defaultWidth, defaultHeight-chromeHeight),
		input:           in,
		readState:       models.ConnectionInitiated,
		sendState:       models.ConnectionInitiated,
		copyToClipboard: clipboard.WriteAll,
	}
	m.resize(defaultWidth, defaultHeight)

	return m
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		cmdWaitDisplay(m.ctx, m.queues.Display),
		cmdWaitStatus(m.ctx, m.queues.Status),
		cmdWaitFatal(m.ctx, m.fatal),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case displayLineMsg:
		m.appendLine(string(msg))
		return m, cmdWaitDisplay(m.ctx, m.queues.Display)
	case statusEventMsg:
		m.applyStatus(models.StatusEvent(msg))
		return m, cmdWaitStatus(m.ctx, m.queues.Status)
	case fatalErrorMsg:
		m.logger.Err(msg.err).Str("func", "chatModel.Update").Msg("background workers stopped")
		m.fatalErr = msg.err
		m.overlay = &errorOverlayModel{message: humanizeFatalError(msg.err)}
		m.input.Blur()
		return m, nil
	case queueClosedMsg:
		return m, nil
	case copiedMsg:
		m.notice = "Скопировано!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.logger.Warn().Err(msg.err).Str("func", "chatModel.Update").Msg("clipboard write failed")
		m.notice = "Не удалось скопировать"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.notice = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.dismiss) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showAbout {
		if key.Matches(msg, keys.about) || msg.String() == "esc" {
			m.showAbout = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.send):
		m.submit()
		return m, nil
	case key.Matches(msg, keys.copyLast):
		last, ok := lastNonEmpty(m.lines)
		if !ok {
			m.notice = "Нечего копировать"
			return m, cmdClearStatus()
		}
		return m, cmdCopy(m.copyToClipboard, last)
	case key.Matches(msg, keys.about):
		m.showAbout = true
		return m, nil
	case key.Matches(msg, keys.scrollUp), key.Matches(msg, keys.scrollDn):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) submit() {
	text := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(text) == "" {
		return
	}
	m.queues.Sending.Put(text)
}

func (m *chatModel) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshViewport()
}

func (m *chatModel) applyStatus(event models.StatusEvent) {
	switch event.Kind {
	case models.ReadStateChanged:
		m.readState = event.State
	case models.SendStateChanged:
		m.sendState = event.State
	case models.NicknameReceived:
		m.nickname = event.Nickname
	default:
		m.logger.Warn().Str("func", "chatModel.applyStatus").Stringer("kind", event.Kind).Msg("unknown status event")
	}
}

func (m *chatModel) resize(width, height int) {
	m.width = width
	m.height = height

	frameW, _ := appStyle.GetFrameSize()
	innerW := max(width-frameW, 10)

	m.viewport.Width = innerW
	m.viewport.Height = max(height-chromeHeight, 3)
	m.input.Width = max(innerW-lipgloss.Width(m.input.Prompt)-1, 1)
	m.refreshViewport()
}

func (m *chatModel) refreshViewport() {
	content := lipgloss.NewStyle().Width(m.viewport.Width).Render(strings.Join(m.lines, "\n"))
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(content)
	if atBottom || m.viewport.TotalLineCount() <= m.viewport.Height {
		m.viewport.GotoBottom()
	}
}

func (m chatModel) statusLine() string {
	nickname := m.nickname
	if nickname == "" {
		nickname = "неизвестно"
	}

	parts := []string{
		"Чтение: " + m.readState.String(),
		"Отправка: " + m.sendState.String(),
		"Имя пользователя: " + nickname,
	}

	line := fitText(strings.Join(parts, " | "), m.viewport.Width)
	if m.notice != "" {
		line += "  " + noticeStyle.Render(m.notice)
	}
	return statusStyle.Render(line)
}

func (m chatModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}
	if m.showAbout {
		return appStyle.Render(renderBuildInfoWindow(m.info))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.info.App))
	b.WriteString("\n")
	b.WriteString(divider(m.viewport.Width))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(divider(m.viewport.Width))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: отправить • ctrl+y: копировать • pgup/pgdown: прокрутка • f1: о программе • esc/ctrl+c: выход"))

	return appStyle.Render(b.String())
}
