package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-mission-hub/internal/service"
	"github.com/MKhiriev/go-mission-hub/internal/validators"
	"github.com/MKhiriev/go-mission-hub/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type messageRole string

const (
	roleUser messageRole = "user"
	roleAI   messageRole = "ai"
)

const (
	defaultWidth  = 80
	defaultHeight = 20

	// header, input and help lines around the dialog
	chromeHeight = 7
	statusTTL    = 2 * time.Second
)

type chatMessage struct {
	role   messageRole
	text   string
	source models.ReplySource
}

type assistantModel struct {
	ctx        context.Context
	assistant  service.AssistantService
	replyDelay time.Duration
	buildInfo  models.AppBuildInfo
	connection string

	visible  bool
	showInfo bool

	input    textinput.Model
	dialog   viewport.Model
	messages []chatMessage
	pending  int

	status string
	errMsg string

	width  int
	height int

	copyToClipboard func(string) error
}

func newAssistantModel(ctx context.Context, assistant service.AssistantService, opts Options) assistantModel {
	input := textinput.New()
	input.Placeholder = "Ask the assistant..."
	input.CharLimit = validators.MaxMessageRunes
	input.Prompt = "> "
	input.Focus()

	dialog := viewport.New(defaultWidth, defaultHeight-chromeHeight)
	dialog.KeyMap = viewport.KeyMap{
		PageUp:   keys.pageUp,
		PageDown: keys.pageDown,
	}

	m := assistantModel{
		ctx:             ctx,
		assistant:       assistant,
		replyDelay:      opts.ReplyDelay,
		buildInfo:       opts.BuildInfo,
		connection:      opts.Status,
		input:           input,
		dialog:          dialog,
		width:           defaultWidth,
		height:          defaultHeight,
		copyToClipboard: clipboard.WriteAll,
	}
	m.dialog.SetContent(m.renderDialog())
	m.show()
	return m
}

func (m assistantModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m assistantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case replyMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.err != nil {
			m.errMsg = askErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.addMessage(chatMessage{role: roleAI, text: msg.reply.Reply, source: msg.reply.Source})
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m assistantModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.toggle):
		m.toggle()
		return m, nil
	}

	if !m.visible {
		return m, nil
	}

	if m.showInfo {
		if key.Matches(msg, keys.hide, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.hide):
		m.hide()
		return m, nil
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.send):
		return m, m.send()
	case key.Matches(msg, keys.copy):
		return m, m.copyLastReply()
	case key.Matches(msg, keys.pageUp, keys.pageDown):
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *assistantModel) toggle() {
	if m.visible {
		m.hide()
		return
	}
	m.show()
}

func (m *assistantModel) show() {
	m.visible = true
	m.input.Focus()
}

func (m *assistantModel) hide() {
	m.visible = false
	m.showInfo = false
	m.input.Blur()
}

// send appends the typed message to the dialog and asks for a reply.
// Blank input is ignored.
func (m *assistantModel) send() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}

	m.addMessage(chatMessage{role: roleUser, text: text})
	m.input.Reset()
	m.errMsg = ""
	m.pending++

	return m.cmdAsk(text)
}

func (m *assistantModel) addMessage(message chatMessage) {
	m.messages = append(m.messages, message)
	m.dialog.SetContent(m.renderDialog())
	m.dialog.GotoBottom()
}

func (m *assistantModel) copyLastReply() tea.Cmd {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].role != roleAI {
			continue
		}
		if err := m.copyToClipboard(m.messages[i].text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return nil
		}
		m.status = "Copied"
		return cmdClearStatus()
	}

	m.status = "Nothing to copy"
	return cmdClearStatus()
}

func (m *assistantModel) resize(width, height int) {
	m.width = width
	m.height = height

	frameW, frameH := appStyle.GetFrameSize()
	m.dialog.Width = max(width-frameW, 1)
	m.dialog.Height = max(height-frameH-chromeHeight, 1)
	m.input.Width = max(width-frameW-len(m.input.Prompt)-1, 1)

	m.dialog.SetContent(m.renderDialog())
	m.dialog.GotoBottom()
}

func (m assistantModel) cmdAsk(text string) tea.Cmd {
	ctx := m.ctx
	svc := m.assistant

	ask := func() tea.Msg {
		reply, err := svc.Ask(ctx, text)
		return replyMsg{reply: reply, err: err}
	}

	if svc.Remote() || m.replyDelay <= 0 {
		return ask
	}
	return tea.Tick(m.replyDelay, func(time.Time) tea.Msg {
		return ask()
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m assistantModel) renderDialog() string {
	if len(m.messages) == 0 {
		return helpStyle.Render("Hi! Ask me anything about your missions.")
	}

	width := max(m.dialog.Width, 1)
	bubbleWidth := max(width*3/4, 1)

	lines := make([]string, 0, len(m.messages))
	for _, message := range m.messages {
		switch message.role {
		case roleUser:
			bubble := userBubbleStyle.MaxWidth(bubbleWidth).Render(message.text)
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble))
		default:
			bubble := aiBubbleStyle.Width(min(bubbleWidth, lipgloss.Width(message.text)+2)).Render(message.text)
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Left, bubble))
		}
	}
	return strings.Join(lines, "\n")
}

func (m assistantModel) View() string {
	if !m.visible {
		return appStyle.Render(helpStyle.Render("Assistant hidden. ctrl+t: open assistant  ctrl+c: quit"))
	}

	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.connection))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("AI ASSISTANT"))
	if m.connection != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(fitText(m.connection, max(m.width/2, 10))))
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.dialog.View())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.pending > 0:
		b.WriteString(statusStyle.Render("Assistant is typing..."))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: send  ctrl+y: copy reply  pgup/pgdown: scroll  f1: about  esc: hide  ctrl+t: toggle  ctrl+c: quit"))

	return appStyle.Render(b.String())
}
