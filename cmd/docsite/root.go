package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eringen/docsite"
)

// cli holds state shared by every subcommand.
type cli struct {
	env          docsite.Environ
	defaultsPath string
	logLevel     string
}

func newRootCmd(env docsite.Environ) *cobra.Command {
	c := &cli{env: env}

	root := &cobra.Command{
		Use:   "docsite",
		Short: "Documentation site configuration tool",
		Long: `docsite loads the site configuration from compiled-in defaults (or a
YAML file given with --defaults), overlays search identifiers and keys from
the environment, and validates the result.

Environment overlay:
- GATSBY_ALGOLIA_APP_ID
- GATSBY_ALGOLIA_SEARCH_KEY
- ALGOLIA_ADMIN_KEY (never sent to browsers)
- GATSBY_ALGOLIA_INDEX_NAME
- DOCSITE_SEARCH_ENABLED`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(c.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.defaultsPath, "defaults", "", "YAML file replacing the compiled-in defaults")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		c.newCheckCmd(),
		c.newShowCmd(),
		c.newServeCmd(),
		c.newInitCmd(),
		c.newIconsCmd(),
		newVersionCmd(),
	)
	return root
}

// newStore builds an unloaded store from the command-line settings.
func (c *cli) newStore() (*docsite.Store, error) {
	opts := []docsite.Option{docsite.WithEnv(c.env)}
	if c.defaultsPath != "" {
		data, err := os.ReadFile(c.defaultsPath)
		if err != nil {
			return nil, fmt.Errorf("read defaults: %w", err)
		}
		site, err := docsite.ParseSite(data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, docsite.WithDefaults(site))
	}
	return docsite.NewStore(opts...), nil
}

// load builds and loads the store, logging each problem it finds.
func (c *cli) load() (docsite.SiteConfiguration, error) {
	store, err := c.newStore()
	if err != nil {
		return docsite.SiteConfiguration{}, err
	}
	site, err := store.Load()
	if err != nil {
		logLoadError(err)
		return docsite.SiteConfiguration{}, err
	}
	return site, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docsite version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docsite %s\n", version)
		},
	}
}
