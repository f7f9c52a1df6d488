package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/svgforge/svgforge/pkg/errors"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// sceneListModel is the bubbletea model for interactive scene selection when
// the render command is given a directory instead of a manifest file.
type sceneListModel struct {
	scenes   []string
	cursor   int
	selected string
}

func newSceneListModel(scenes []string) sceneListModel {
	return sceneListModel{scenes: scenes}
}

func (m sceneListModel) Init() tea.Cmd {
	return nil
}

func (m sceneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.scenes)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.scenes[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m sceneListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Scene"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.scenes {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := cursor + filepath.Base(s)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.scenes))))
	return b.String()
}

// pickScene lists the .toml manifests in dir and runs an interactive picker.
// It returns the chosen path, or an empty string if the user quit.
func pickScene(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "reading %s", dir)
	}

	var scenes []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		scenes = append(scenes, filepath.Join(dir, e.Name()))
	}
	if len(scenes) == 0 {
		return "", errors.New(errors.ErrCodeSceneNotFound, "no scene manifests in %s", dir)
	}
	sort.Strings(scenes)

	p := tea.NewProgram(newSceneListModel(scenes))
	final, err := p.Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "scene picker")
	}
	return final.(sceneListModel).selected, nil
}
