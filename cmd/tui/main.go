package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/pcs/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/pcs/internal/config"
	"github.com/MrJamesThe3rd/pcs/internal/export"
	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/goods/store"
	"github.com/MrJamesThe3rd/pcs/internal/logging"
	"github.com/MrJamesThe3rd/pcs/internal/manifest"
	"github.com/MrJamesThe3rd/pcs/internal/vasscm"
)

type model struct {
	board view.BoardModel
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.board.Title()), m.board.Init())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		return m, tea.Quit
	}

	next, cmd := m.board.Update(msg)
	m.board = next.(view.BoardModel)

	return m, cmd
}

func (m model) View() string {
	return m.board.View() + "\n" + m.board.ShortHelp()
}

// setupLogging sends slog output to LOG_FILE; without it the TUI logs nowhere
// so nothing is written over the alt screen.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	if cfg.Log.File == "" {
		slog.SetDefault(logging.New(io.Discard, cfg.Log.Level, cfg.Log.Format))
		return io.NopCloser(nil), nil
	}

	f, err := tea.LogToFile(cfg.Log.File, "pcs")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	slog.SetDefault(logging.New(f, cfg.Log.Level, cfg.Log.Format))

	return f, nil
}

func initialModel(cfg *config.Config) (model, error) {
	seed, err := manifest.LoadSeed(cfg.Goods.SeedFile)
	if err != nil {
		return model{}, fmt.Errorf("loading goods seed: %w", err)
	}

	goodsSvc := goods.NewService(store.New(seed))
	expSvc := export.NewService(goodsSvc)

	return model{
		board: view.NewBoardModel(goodsSvc, expSvc, vasscm.NewStub(slog.Default()), cfg.Goods.ExportDir),
	}, nil
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	m, err := initialModel(cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
