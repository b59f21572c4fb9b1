package cli

import (
	"flag"

	"github.com/charmbracelet/log"

	"taskpad/pkg/commands"
	"taskpad/pkg/storage"
	"taskpad/pkg/tasks"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Task operations
	AddTask      string
	CategoryFlag string
	TimeFlag     string
	ListFlag     bool
	DoneFlag     bool
	UndoneFlag   bool
	PurgeFlag    bool
	YesFlag      bool

	// Theme operations
	ThemeFlag string

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	// Define command line flags
	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Task operations
	flag.StringVar(&args.AddTask, "add", "", "Add a new task")
	flag.StringVar(&args.CategoryFlag, "category", "work", "Category for -add (work, study, personal)")
	flag.StringVar(&args.TimeFlag, "time", "", "Scheduled time for -add (HH:MM, optional)")
	flag.BoolVar(&args.ListFlag, "list", false, "List tasks")
	flag.BoolVar(&args.DoneFlag, "done", false, "Filter completed tasks")
	flag.BoolVar(&args.UndoneFlag, "undone", false, "Filter pending tasks")
	flag.BoolVar(&args.PurgeFlag, "purge", false, "Delete all completed tasks")
	flag.BoolVar(&args.YesFlag, "yes", false, "Skip confirmation")

	// Theme operations
	flag.StringVar(&args.ThemeFlag, "theme", "", "Set the theme (white, dark, student, developer, professional, reset)")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import tasks from file")
	flag.StringVar(&args.ExportFile, "export", "", "Export tasks to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(store *tasks.Store, kv storage.KV, logger *log.Logger, args *Args) bool {
	// Check for CLI commands
	if args.AddTask != "" {
		commands.HandleAddTask(store, args.AddTask, args.CategoryFlag, args.TimeFlag)
		return true
	}

	if args.ListFlag {
		commands.HandleListTasks(store, args.DoneFlag, args.UndoneFlag)
		return true
	}

	if args.PurgeFlag {
		commands.HandlePurgeCommand(store, args.YesFlag)
		return true
	}

	if args.ThemeFlag != "" {
		commands.HandleThemeCommand(kv, logger, args.ThemeFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(store, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(store, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
