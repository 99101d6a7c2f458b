package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eringen/docsite"
)

func (c *cli) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load and validate the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := c.load()
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"site":   site.Build.SiteURL,
				"search": site.Header.Search.Enabled,
				"pwa":    site.PWA.Enabled,
			}).Info("configuration is valid")
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func logLoadError(err error) {
	var verr *docsite.ValidationError
	var lerr *docsite.LoadError
	switch {
	case errors.As(err, &verr):
		for _, v := range verr.Violations {
			log.WithField("field", v.Field).Error(v.Constraint)
		}
	case errors.As(err, &lerr):
		log.WithFields(log.Fields{
			"source":   lerr.Source,
			"variable": lerr.Variable,
			"field":    lerr.Field,
		}).WithError(lerr.Err).Error("cannot load configuration")
	}
}
