package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eringen/docsite"
	"github.com/eringen/docsite/scaffold"
)

func (c *cli) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <dir>",
		Short: "Write a starter docsite.yaml and .env.example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInit(out io.Writer, dir string) error {
	files, err := scaffold.Render(scaffold.Data{
		SiteName: siteTitle(filepath.Base(dir)),
		Overlays: docsite.DefaultOverlays,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	files = append([]scaffold.File{{Name: "docsite.yaml", Body: docsite.DefaultsYAML}}, files...)
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := writeNew(p, f.Body); err != nil {
			return err
		}
		fmt.Fprintf(out, "  created %s\n", p)
	}
	log.WithField("dir", dir).Info("Scaffold written")
	return nil
}

// writeNew writes data to path and refuses to overwrite an existing file.
func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// siteTitle turns a directory name such as "nix_user-docs" into the
// display name "Nix User Docs".
func siteTitle(dir string) string {
	words := strings.FieldsFunc(dir, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
