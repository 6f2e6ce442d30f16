// Package cli provides the hubctl command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"content-hub/cmd/internal/content"
	"content-hub/cmd/internal/logger"
	"content-hub/config"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries state shared by subcommands. loadConfig is swapped in tests.
type app struct {
	loadConfig func() config.AppConfig

	offline bool
	cmsURL  string

	cfg     config.AppConfig
	gateway *content.Gateway
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{loadConfig: config.GetConfig})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "hubctl",
		Short: "Inspect and seed the content hub",
		Long: `hubctl reads episodes, articles and topics through the same gateway the
API uses: from the CMS when it is enabled, otherwise from the fallback dataset.

Examples:
  hubctl episodes --topic DevOps --sort popular
  hubctl topics --offline
  hubctl import-feed https://podcast.example.com/rss -o dataset.yaml`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "import-feed" {
				return nil
			}
			return a.init()
		},
	}

	root.PersistentFlags().BoolVar(&a.offline, "offline", false, "never call the CMS, use the fallback dataset")
	root.PersistentFlags().StringVar(&a.cmsURL, "cms-url", "", "override the CMS origin (enables the CMS)")

	root.AddCommand(newEpisodesCmd(a))
	root.AddCommand(newArticlesCmd(a))
	root.AddCommand(newTopicsCmd(a))
	root.AddCommand(newHealthCmd(a))
	root.AddCommand(newImportFeedCmd(a))
	return root
}

func (a *app) init() error {
	a.cfg = a.loadConfig()
	if a.cmsURL != "" {
		a.cfg.CMS.URL = a.cmsURL
		a.cfg.CMS.Enabled = true
	}
	if a.offline {
		a.cfg.CMS.Enabled = false
	}
	logger.Init(a.cfg.Logging.Level)

	gw, err := content.New(a.cfg)
	if err != nil {
		return fmt.Errorf("build content gateway: %w", err)
	}
	a.gateway = gw
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
