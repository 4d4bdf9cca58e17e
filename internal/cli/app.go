package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskline/internal/planner"
	"github.com/sandeepkv93/taskline/internal/storage"
	"github.com/sandeepkv93/taskline/internal/update"
)

// session is an opened planner together with the store it persists to.
type session struct {
	planner *planner.Planner
	kv      storage.KV
	loadErr error
}

func (s *session) Close() error {
	if s.kv == nil {
		return nil
	}
	return s.kv.Close()
}

// openSession builds the planner for cfg. Demo sessions run on the sample
// board in memory and never touch the configured store.
func openSession(ctx context.Context, cfg update.RuntimeConfig, logger *log.Logger) (*session, error) {
	if cfg.Demo {
		p := planner.New(nil, planner.WithLogger(logger))
		p.LoadSampleTasks()
		return &session{planner: p}, nil
	}
	kv, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	p := planner.New(storage.NewTaskStore(kv), planner.WithLogger(logger))
	s := &session{planner: p, kv: kv}
	s.loadErr = p.Load(ctx)
	return s, nil
}

func openStore(cfg update.RuntimeConfig) (storage.KV, error) {
	if cfg.StoragePath == "" {
		return nil, fmt.Errorf("storage path is empty")
	}
	switch cfg.StorageBackend {
	case update.BackendDiskv:
		if err := os.MkdirAll(cfg.StoragePath, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
		return storage.OpenDiskv(cfg.StoragePath), nil
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.StoragePath), 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
		kv, err := storage.OpenSQLite(cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("open store %s: %w", cfg.StoragePath, err)
		}
		return kv, nil
	}
}

// setupLogging sends the standard logger to the log file while the TUI owns
// the terminal. Without a log file logging is discarded.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "taskline")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func runTUI(ctx context.Context, cfg update.RuntimeConfig) error {
	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := log.Default()

	s, err := openSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	m := update.NewModel(s.planner, cfg, update.WithLogger(logger))
	if s.loadErr != nil {
		m.Status = update.StatusBar{Text: fmt.Sprintf("could not read saved tasks: %v", s.loadErr), IsError: true}
	}
	logger.Printf("starting tui: view=%s backend=%s demo=%v", cfg.View, cfg.StorageBackend, cfg.Demo)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
