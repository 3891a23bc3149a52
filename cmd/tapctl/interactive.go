package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/taptap/tapsdk-go/cloudsave"
	"github.com/taptap/tapsdk-go/dlc"
	"github.com/taptap/tapsdk-go/events"
	"github.com/taptap/tapsdk-go/sdk"
	"github.com/taptap/tapsdk-go/user"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#0078D4")).
			Padding(0, 1)

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const maxLogLines = 18

type interactiveModel struct {
	s        *sdk.SDK
	cfg      Config
	cs       *cloudsave.CloudSave
	log      []string
	err      error
	saves    []events.SaveInfo
	demoDir  string
	dlcInput textinput.Model
	typing   bool
}

type pollTickMsg struct{}

func newInteractiveModel(s *sdk.SDK, cfg Config) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "dlc id"
	ti.Prompt = "DLC: "
	ti.Width = 40
	return &interactiveModel{s: s, cfg: cfg, dlcInput: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.schedulePoll()
}

func (m *interactiveModel) schedulePoll() tea.Cmd {
	return tea.Tick(m.cfg.PollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.typing {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.typing = false
				m.dlcInput.Blur()
			case "enter":
				id := strings.TrimSpace(m.dlcInput.Value())
				m.typing = false
				m.dlcInput.Blur()
				m.dlcInput.SetValue("")
				m.do("check dlc "+id, func() error {
					if dlc.IsOwned(id) {
						m.logLine(eventStyle.Render(fmt.Sprintf("dlc %s owned", id)))
						return nil
					}
					m.logLine(eventStyle.Render(fmt.Sprintf("dlc %s not owned, opening store", id)))
					_, err := dlc.ShowStore(id)
					return err
				})
			default:
				var cmd tea.Cmd
				m.dlcInput, cmd = m.dlcInput.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "o":
			m.typing = true
			m.dlcInput.Focus()
			return m, textinput.Blink

		case "a":
			m.do("authorize", func() error {
				return user.Authorize(m.cfg.Scopes)
			})

		case "l":
			m.do("list saves", func() error {
				cs, err := m.cloudSave()
				if err != nil {
					return err
				}
				return cs.List(m.s.NextRequestID())
			})

		case "c":
			m.do("create demo save", m.createDemoSave)

		case "d":
			m.do("delete first listed save", func() error {
				if len(m.saves) == 0 {
					return fmt.Errorf("no listed saves; press l first")
				}
				cs, err := m.cloudSave()
				if err != nil {
					return err
				}
				return cs.Delete(m.s.NextRequestID(), m.saves[0].UUID)
			})
		}

	case pollTickMsg:
		for _, ev := range m.s.PollEvents() {
			m.record(ev)
		}
		return m, m.schedulePoll()
	}

	return m, nil
}

func (m *interactiveModel) do(what string, fn func() error) {
	m.err = nil
	if err := fn(); err != nil {
		m.err = fmt.Errorf("%s: %w", what, err)
		return
	}
	m.logLine(helpStyle.Render("> " + what))
}

func (m *interactiveModel) cloudSave() (*cloudsave.CloudSave, error) {
	if m.cs != nil {
		return m.cs, nil
	}
	cs, err := cloudsave.Get()
	if err != nil {
		return nil, err
	}
	m.cs = cs
	return cs, nil
}

// createDemoSave uploads a throwaway save with a uuid-derived name, so the
// round trip can be exercised without a real game directory.
func (m *interactiveModel) createDemoSave() error {
	cs, err := m.cloudSave()
	if err != nil {
		return err
	}
	if m.demoDir == "" {
		dir, err := os.MkdirTemp("", "tapctl-demo-")
		if err != nil {
			return err
		}
		m.demoDir = dir
	}

	id := uuid.NewString()
	path := filepath.Join(m.demoDir, id+".dat")
	if err := os.WriteFile(path, []byte("tapctl demo save "+id), 0o644); err != nil {
		return err
	}

	return cs.Create(m.s.NextRequestID(), cloudsave.CreateRequest{
		Name:         "demo-" + id[:8],
		Summary:      "created by tapctl at " + time.Now().Format(time.RFC3339),
		DataFilePath: path,
	})
}

func (m *interactiveModel) record(ev events.Event) {
	if list, ok := ev.(*events.CloudSaveList); ok && list.Err == nil {
		m.saves = list.Saves
	}
	m.logLine(eventStyle.Render(formatEvent(ev)))
}

func (m *interactiveModel) logLine(line string) {
	stamp := time.Now().Format("15:04:05")
	m.log = append(m.log, helpStyle.Render(stamp)+" "+line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tapctl: TapTap PC SDK inspector"))
	b.WriteString("\n\n")

	clientID := "(unavailable)"
	if id, ok := m.s.ClientID(); ok {
		clientID = id
	}
	openID := "(not signed in)"
	if id, ok := user.OpenID(); ok {
		openID = id
	}
	b.WriteString(fmt.Sprintf("client %s   user %s   game owned %v\n", clientID, openID, dlc.GameOwned()))

	pending := m.s.Pending()
	if len(pending) > 0 {
		var parts []string
		for _, req := range pending {
			parts = append(parts, fmt.Sprintf("#%d %s", req.ID, req.Op))
		}
		b.WriteString(pendingStyle.Render("pending: "+strings.Join(parts, ", ")) + "\n")
	}
	b.WriteString("\n")

	if len(m.log) == 0 {
		b.WriteString(helpStyle.Render("(no events yet)") + "\n")
	}
	for _, line := range m.log {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	if m.typing {
		b.WriteString(m.dlcInput.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter check ownership • esc back"))
	} else {
		b.WriteString(helpStyle.Render("a authorize • l list saves • c create demo save • d delete listed save • o dlc lookup • q quit"))
	}
	return b.String()
}

func formatEvent(ev events.Event) string {
	switch ev := ev.(type) {
	case *events.SystemStateChanged:
		return fmt.Sprintf("platform %s", ev.State)
	case *events.AuthorizeFinished:
		switch {
		case ev.Cancelled:
			return "authorize cancelled"
		case ev.Err != "":
			return "authorize failed: " + ev.Err
		default:
			return "authorized, scope " + ev.Token.Scope
		}
	case *events.GamePlayableStatusChanged:
		return fmt.Sprintf("game playable: %v", ev.Playable)
	case *events.DLCPlayableStatusChanged:
		return fmt.Sprintf("dlc %s playable: %v", ev.DLCID, ev.Playable)
	case *events.CloudSaveList:
		if ev.Err != nil {
			return fmt.Sprintf("#%d list failed: %v", ev.RequestID, ev.Err)
		}
		return fmt.Sprintf("#%d listed %d saves", ev.RequestID, len(ev.Saves))
	case *events.CloudSaveCreate:
		if ev.Err != nil {
			return fmt.Sprintf("#%d create failed: %v", ev.RequestID, ev.Err)
		}
		return fmt.Sprintf("#%d created %q (%s)", ev.RequestID, ev.Save.Name, ev.Save.UUID)
	case *events.CloudSaveUpdate:
		if ev.Err != nil {
			return fmt.Sprintf("#%d update failed: %v", ev.RequestID, ev.Err)
		}
		return fmt.Sprintf("#%d updated %q", ev.RequestID, ev.Save.Name)
	case *events.CloudSaveDelete:
		if ev.Err != nil {
			return fmt.Sprintf("#%d delete failed: %v", ev.RequestID, ev.Err)
		}
		return fmt.Sprintf("#%d deleted %s", ev.RequestID, ev.UUID)
	case *events.CloudSaveGetData:
		if ev.Err != nil {
			return fmt.Sprintf("#%d get data failed: %v", ev.RequestID, ev.Err)
		}
		return fmt.Sprintf("#%d got %d bytes of save data", ev.RequestID, len(ev.Data))
	case *events.CloudSaveGetCover:
		if ev.Err != nil {
			return fmt.Sprintf("#%d get cover failed: %v", ev.RequestID, ev.Err)
		}
		return fmt.Sprintf("#%d got %d bytes of cover", ev.RequestID, len(ev.Data))
	default:
		return fmt.Sprintf("event %s", ev.EventID())
	}
}

func runInteractive(s *sdk.SDK, cfg Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(s, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
