package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_PORT = "8000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepSelectingMode step = iota
	stepEnteringURL
	stepEnteringHost
	stepEnteringPort
	stepEnteringUser
	stepEnteringPassword
	stepEnteringName
	stepEnteringAPIPort
	stepWritingEnv
	stepCheckingAPI
	stepComplete
)

var modes = []string{
	"Connection string (DB_URL)",
	"Individual parameters (DB_HOST, DB_PORT, ...)",
}

type model struct {
	step         step
	cursor       int
	useURL       bool
	dbURL        string
	dbHost       string
	dbPort       string
	dbUser       string
	dbPassword   string
	dbName       string
	apiPort      string
	currentInput string
	message      string
	quitting     bool
}

type envWrittenMsg struct{ path string }
type healthOKMsg struct{}
type healthSkippedMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step: stepSelectingMode,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) envContent() string {
	var b strings.Builder
	if m.useURL {
		fmt.Fprintf(&b, "DB_URL=%s\n", m.dbURL)
	} else {
		fmt.Fprintf(&b, "DB_HOST=%s\n", m.dbHost)
		fmt.Fprintf(&b, "DB_PORT=%s\n", m.dbPort)
		fmt.Fprintf(&b, "DB_USER=%s\n", m.dbUser)
		fmt.Fprintf(&b, "DB_PASSWORD=%s\n", m.dbPassword)
		fmt.Fprintf(&b, "DB_NAME=%s\n", m.dbName)
	}
	fmt.Fprintf(&b, "PORT=%s\n", m.apiPort)
	return b.String()
}

func writeEnv(content string) tea.Cmd {
	return func() tea.Msg {
		if err := os.WriteFile(".env", []byte(content), 0o600); err != nil {
			return errMsg{fmt.Errorf("failed to write .env: %w", err)}
		}
		return envWrittenMsg{path: ".env"}
	}
}

// checkAPI probes a running server's health endpoint. A server that is not
// up yet is not a failure; the .env has already been written.
func checkAPI(port string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 5 * time.Second}

		resp, err := client.Get(fmt.Sprintf("http://localhost:%s/health", port))
		if err != nil {
			return healthSkippedMsg{}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("API returned %d on /health", resp.StatusCode)}
		}

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected /health response: %w", err)}
		}

		if status, _ := result["status"].(string); status != "OK" {
			return errMsg{fmt.Errorf("unexpected /health status: %v", result["status"])}
		}

		return healthOKMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			// q only quits outside of text entry
			if m.step == stepSelectingMode || m.step == stepComplete {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += "q"

		case "up", "k":
			if m.step == stepSelectingMode && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepSelectingMode && m.cursor < len(modes)-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			// Only printable input reaches the buffer; named keys like
			// left or esc would otherwise splice their names in.
			if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
				break
			}
			if m.step != stepSelectingMode && m.step != stepWritingEnv && m.step != stepCheckingAPI && m.step != stepComplete {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepSelectingMode:
				m.useURL = m.cursor == 0
				if m.useURL {
					m.step = stepEnteringURL
				} else {
					m.step = stepEnteringHost
				}

			case stepEnteringURL:
				if m.currentInput != "" {
					m.dbURL = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringAPIPort
				}

			case stepEnteringHost:
				if m.currentInput != "" {
					m.dbHost = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPort
				}

			case stepEnteringPort:
				if m.currentInput != "" {
					m.dbPort = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringUser
				}

			case stepEnteringUser:
				if m.currentInput != "" {
					m.dbUser = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.dbPassword = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringName
				}

			case stepEnteringName:
				if m.currentInput != "" {
					m.dbName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringAPIPort
				}

			case stepEnteringAPIPort:
				if m.currentInput == "" {
					m.apiPort = DEFAULT_PORT
				} else {
					m.apiPort = m.currentInput
				}
				m.currentInput = ""
				m.step = stepWritingEnv
				m.message = "Writing .env..."
				return m, writeEnv(m.envContent())

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case envWrittenMsg:
		m.step = stepCheckingAPI
		m.message = successStyle.Render("✓ Wrote " + msg.path)
		return m, checkAPI(m.apiPort)

	case healthOKMsg:
		m.step = stepComplete
		m.message = successStyle.Render("✓ .env written and API is responding on /health")

	case healthSkippedMsg:
		m.step = stepComplete
		m.message = successStyle.Render("✓ .env written") +
			"\n(API not running yet; start the server to use it)"

	case errMsg:
		m.step = stepComplete
		m.message = errorStyle.Render("✗ " + msg.err.Error())
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🔧 Content API Setup\n\n"))

	switch m.step {
	case stepSelectingMode:
		s.WriteString(promptStyle.Render("How should the server connect to the database?\n\n"))

		for i, mode := range modes {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(mode)))
		}

		s.WriteString("\nUse ↑/↓, Enter to select, q to quit\n")

	case stepEnteringURL:
		s.WriteString(promptStyle.Render("Enter the database connection string (DB_URL):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringHost:
		s.WriteString(promptStyle.Render("Enter DB_HOST:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPort:
		s.WriteString(promptStyle.Render("Enter DB_PORT:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringUser:
		s.WriteString(promptStyle.Render("Enter DB_USER:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter DB_PASSWORD:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringName:
		s.WriteString(promptStyle.Render("Enter DB_NAME:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringAPIPort:
		s.WriteString(promptStyle.Render("Enter the API port (blank for " + DEFAULT_PORT + "):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepWritingEnv, stepCheckingAPI:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
