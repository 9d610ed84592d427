package pflagx

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var pagerFooterStyle = lipgloss.NewStyle().Faint(true)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runPager shows text in a fullscreen scrollable view and blocks until the
// user quits it.
func runPager(text string) error {
	p := tea.NewProgram(pagerModel{text: text}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// pagerModel is a minimal less-alike: a viewport over the help text plus a
// one-line footer with the scroll position.
type pagerModel struct {
	vp    viewport.Model
	text  string
	ready bool
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-1)
			m.vp.SetContent(m.text)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 1
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return ""
	}
	footer := pagerFooterStyle.Render(
		fmt.Sprintf("%3.0f%%  ↑/↓ scroll · q quit", m.vp.ScrollPercent()*100))
	return m.vp.View() + "\n" + footer
}

// termWidth reads the terminal width, falling back to 80 columns.
func termWidth() int {
	type winsize struct {
		Row, Col, Xpixel, Ypixel uint16
	}
	ws := &winsize{}
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL,
		uintptr(os.Stdout.Fd()), uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(ws)))
	if errno != 0 || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}
