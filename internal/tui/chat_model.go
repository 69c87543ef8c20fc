package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/adapter"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	userLabel = "Vos"
	botLabel  = "Dante"
)

type chatEntry struct {
	author     string
	text       string
	properties []models.Property
	isError    bool
}

type chatModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	entries []chatEntry
	banner  string
	status  string

	// lastReply is the most recent assistant answer, kept for ctrl+y.
	lastReply string

	// previousContext is round-tripped so the server's greeting
	// short-circuit only fires on the first message.
	previousContext json.RawMessage

	waiting    bool
	ready      bool
	width      int
	height     int
	quitByUser bool
	err        error
}

func newChatModel(ctx context.Context, server adapter.ServerAdapter) chatModel {
	input := textinput.New()
	input.Placeholder = "Escribí tu consulta..."
	input.CharLimit = 500
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return chatModel{
		ctx:     ctx,
		server:  server,
		input:   input,
		spinner: s,
		banner:  "Conectando...",
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadBanner())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.resizeViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			return m.submit()
		case key.Matches(msg, keys.copy):
			if m.lastReply == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.lastReply)
		case key.Matches(msg, keys.up), key.Matches(msg, keys.down):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case bannerLoadedMsg:
		if msg.err != nil {
			m.banner = errorStyle.Render("Servidor no disponible: " + msg.err.Error())
			return m, nil
		}
		m.banner = fmt.Sprintf("Asistente %s | %d propiedades en catálogo | uptime %.0fs",
			msg.status.Status, msg.stats.Total, msg.status.UptimeSeconds)
		return m, nil

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.entries = append(m.entries, chatEntry{
				author:  botLabel,
				text:    "No pude procesar tu consulta: " + msg.err.Error(),
				isError: true,
			})
			m = m.refreshViewport()
			return m, nil
		}

		m.entries = append(m.entries, chatEntry{
			author:     botLabel,
			text:       msg.resp.Response,
			properties: msg.resp.Properties,
		})
		m.lastReply = msg.resp.Response
		if raw, err := json.Marshal(msg.resp); err == nil {
			m.previousContext = raw
		}
		m = m.refreshViewport()
		return m, nil

	case copiedMsg:
		m.status = "Respuesta copiada al portapapeles"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	if m.waiting {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.entries = append(m.entries, chatEntry{author: userLabel, text: text})
	m.input.Reset()
	m.waiting = true
	m = m.refreshViewport()

	return m, tea.Batch(m.spinner.Tick, m.cmdSend(text))
}

func (m chatModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dante Propiedades"))
	b.WriteString("\n")
	b.WriteString(bannerStyle.Render(m.banner))
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderEntries())
	}
	b.WriteString("\n\n")

	if m.waiting {
		b.WriteString(m.spinner.View() + " pensando...")
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter enviar  ctrl+y copiar respuesta  esc salir"))

	return appStyle.Render(b.String())
}

func (m chatModel) resizeViewport() chatModel {
	// header (2) + blank (2) + input (2) + help (2) + app padding (2)
	contentHeight := m.height - 10
	if contentHeight < 3 {
		contentHeight = 3
	}
	contentWidth := m.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = contentHeight
	}

	return m.refreshViewport()
}

func (m chatModel) refreshViewport() chatModel {
	if !m.ready {
		return m
	}
	m.viewport.SetContent(m.renderEntries())
	m.viewport.GotoBottom()
	return m
}

func (m chatModel) renderEntries() string {
	if len(m.entries) == 0 {
		return bannerStyle.Render("Contame qué estás buscando: casa, depto, barrio, presupuesto...")
	}

	width := m.width - 4
	if width < 20 {
		width = 78
	}
	wrap := lipgloss.NewStyle().Width(width)

	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		label := userStyle.Render(e.author + ":")
		body := botStyle.Render(e.text)
		if e.isError {
			body = errorStyle.Render(e.text)
		}

		lines = append(lines, wrap.Render(label+" "+body))

		for _, p := range e.properties {
			lines = append(lines, cardStyle.Render(renderProperty(p)))
		}
	}

	return strings.Join(lines, "\n\n")
}

func renderProperty(p models.Property) string {
	currency := p.PriceCurrency
	if currency == "" {
		currency = "USD"
	}

	out := fmt.Sprintf("%s\n%s · %s en %s\n%s %.0f · %d amb · %.0f m2",
		p.Title, p.Type, p.Operation, p.Neighborhood,
		currency, p.Price, p.Rooms, p.SquareMeters)

	if p.Address != nil && *p.Address != "" {
		out += "\n" + *p.Address
	}

	return out
}

func (m chatModel) cmdLoadBanner() tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		status, err := server.Status(ctx)
		if err != nil {
			return bannerLoadedMsg{err: err}
		}
		stats, err := server.Stats(ctx)
		if err != nil {
			return bannerLoadedMsg{err: err}
		}
		return bannerLoadedMsg{status: status, stats: stats}
	}
}

func (m chatModel) cmdSend(text string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	previous := m.previousContext
	return func() tea.Msg {
		resp, err := server.Chat(ctx, models.ChatRequest{
			Message:         text,
			PreviousContext: previous,
			FollowUp:        len(previous) > 0,
		})
		return replyMsg{resp: resp, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return replyMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
