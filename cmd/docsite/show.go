package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eringen/docsite"
)

func (c *cli) newShowCmd() *cobra.Command {
	var (
		format string
		client bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the loaded configuration",
		Long: `Print the loaded configuration. Secrets are redacted. With --client,
print exactly what a browser receives.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := c.load()
			if err != nil {
				return err
			}
			var v interface{} = site
			if client {
				v = docsite.ClientConfig(site)
			}
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(v); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&client, "client", false, "print the browser-safe projection")
	return cmd
}
