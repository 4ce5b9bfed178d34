package cli

import (
	"os"
	"path/filepath"

	"github.com/Flyrell/daymark/internal/config"
	"github.com/Flyrell/daymark/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFlag  string
	dbFlag      string
	verboseFlag bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "daymark",
	Short:        "Pick days on a month calendar and randomly assign group options to them",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The board draws on the alternate screen, so its logs go to a file.
		logPath := ""
		if cmd == boardCmd && verboseFlag {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(config.Dir(home), 0755); err != nil {
				return err
			}
			logPath = filepath.Join(config.Dir(home), "daymark.log")
		}
		l, err := logging.New(verboseFlag, logPath)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: $DAYMARK_CONFIG or ~/.daymark/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "session database (default: $DAYMARK_DB or ~/.daymark/sessions.db)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetHelpFunc(colorizedHelpFunc())
}

func Execute() error {
	return rootCmd.Execute()
}

// appPaths holds the resolved file locations.
type appPaths struct {
	config string
	db     string
}

// getAppPaths resolves flags, then environment, then the defaults under the
// home directory.
func getAppPaths() (appPaths, error) {
	p := appPaths{config: configFlag, db: dbFlag}
	if p.config == "" {
		p.config = os.Getenv("DAYMARK_CONFIG")
	}
	if p.db == "" {
		p.db = os.Getenv("DAYMARK_DB")
	}
	if p.config != "" && p.db != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return appPaths{}, err
	}
	if p.config == "" {
		p.config = config.Path(home)
	}
	if p.db == "" {
		p.db = config.DBPath(home)
	}
	return p, nil
}
