package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eringen/docsite/icons"
)

func (c *cli) newIconsCmd() *cobra.Command {
	var staticDir string
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Check PWA manifest icons against the image files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := c.load()
			if err != nil {
				return err
			}
			if !site.PWA.Enabled {
				log.Warn("pwa is disabled; checking icons anyway")
			}
			failed := 0
			for _, r := range icons.Check(staticDir, site.PWA.Manifest.Icons) {
				entry := log.WithFields(log.Fields{"src": r.Icon.Src, "path": r.Path})
				if !r.OK() {
					failed++
					entry.WithError(r.Err).Error("icon check failed")
					continue
				}
				entry.WithField("size", fmt.Sprintf("%dx%d", r.Width, r.Height)).Info("icon ok")
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d icons failed", failed, len(site.PWA.Manifest.Icons))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&staticDir, "static-dir", ".", "directory icon src paths are relative to")
	return cmd
}
