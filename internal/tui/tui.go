package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"shelf/internal/authview"
	"shelf/internal/router"
)

const (
	LoginRoute    = "/auth/login"
	RegisterRoute = "/auth/register"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2f3e46")).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Width(10)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0392b"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52796f"))
	helpStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// routeChangedMsg is delivered to the update loop after the view applied a route change.
type routeChangedMsg struct {
	mode  authview.Mode
	title string
}

// Model hosts an authview.View in a bubbletea program.
type Model struct {
	view    *authview.View
	routes  *router.Stream
	changes chan routeChangedMsg

	inputs []textinput.Model
	fields []string
	focus  int

	mode        authview.Mode
	title       string
	status      string
	errors      map[string]string
	changeCount int
	closed      bool
}

// New builds the model and initialises its view from the stream's current route.
func New(routes *router.Stream) (*Model, error) {
	changes := make(chan routeChangedMsg, 1)

	v := authview.New(authview.NewCredentialsForm(), authview.WithObserver(func(mode authview.Mode, title string) {
		msg := routeChangedMsg{mode: mode, title: title}
		select {
		case changes <- msg:
		default:
			// keep only the latest change for the update loop
			select {
			case <-changes:
			default:
			}
			changes <- msg
		}
	}))

	if err := v.Initialize(routes.Current(), routes); err != nil {
		_ = v.Close()
		return nil, err
	}

	username := textinput.New()
	username.Placeholder = "username"
	username.Prompt = ""
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &Model{
		view:    v,
		routes:  routes,
		changes: changes,
		inputs:  []textinput.Model{username, password},
		fields:  []string{authview.FieldUsername, authview.FieldPassword},
		mode:    v.Mode(),
		title:   v.Title(),
		errors:  map[string]string{},
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.changes
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case routeChangedMsg:
		m.mode = msg.mode
		m.title = msg.title
		m.errors = map[string]string{}
		m.status = ""
		m.changeCount++
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Close()
			return m, tea.Quit
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "ctrl+r":
			m.toggleRoute()
			return m, nil
		case "enter":
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if err := m.view.SetField(m.fields[m.focus], m.inputs[m.focus].Value()); err != nil {
		fiberlog.Error("tui: ", err)
	}
	return m, cmd
}

func (m *Model) setFocus(i int) {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *Model) toggleRoute() {
	if m.mode == authview.SignIn {
		m.routes.Publish(RegisterRoute)
	} else {
		m.routes.Publish(LoginRoute)
	}
}

func (m *Model) submit() {
	creds, err := m.view.Submit()
	m.errors = map[string]string{}

	var verr *authview.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			m.errors[f] = verr.Messages[f]
		}
		m.status = ""
		return
	}
	if err != nil {
		m.status = err.Error()
		return
	}

	fiberlog.Infof("%s submitted for user %q", m.mode, creds.Username)
	m.status = fmt.Sprintf("%s as %s", m.title, creds.Username)
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.setFocus(0)
}

// Close releases the view's route subscription. Safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	_ = m.view.Close()
	close(m.changes)
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	labels := []string{"Username", "Password"}
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(input.View())
		if msg, ok := m.errors[m.fields[i]]; ok {
			b.WriteString(" ")
			b.WriteString(errorStyle.Render(msg))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	other := "sign up"
	if m.mode == authview.SignUp {
		other = "sign in"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("tab: next field • enter: submit • ctrl+r: %s • esc: quit", other)))
	b.WriteString("\n")
	return b.String()
}
