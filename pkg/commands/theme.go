package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"taskpad/pkg/signal"
	"taskpad/pkg/storage"
	"taskpad/pkg/theme"
)

// headlessApplier satisfies theme.Applier for one-shot commands that run
// without a UI. Selection, validation, and persistence still happen; there
// is just nothing to style.
type headlessApplier struct{}

func (headlessApplier) SupportsStyling() bool { return true }

func (headlessApplier) Apply(theme.Definition, bool) error { return nil }

func (headlessApplier) ApplyFallback() error { return nil }

func (headlessApplier) CaptureInput() theme.InputSnapshot { return nil }

func (headlessApplier) RestoreInput(snap theme.InputSnapshot) {}

// HandleThemeCommand processes the -theme command. "reset" clears the
// persisted selection; any other value selects and persists that theme.
func HandleThemeCommand(kv storage.KV, logger *log.Logger, name string) {
	notify := signal.Notifier(func(s signal.Signal) {
		fmt.Printf("Warning: %s\n", s.Message())
	})

	mgr := theme.NewManager(kv, headlessApplier{}, notify, logger)
	mgr.Initialize()

	if name == "reset" {
		mgr.Reset()
		fmt.Printf("Theme reset to %s\n", mgr.Current())
		return
	}

	if !mgr.SetTheme(name) {
		fmt.Println("Error applying theme")
		os.Exit(1)
	}

	def := mgr.CurrentDefinition()
	fmt.Printf("Theme set to %s (%s)\n", def.DisplayName, def.Description)
}
