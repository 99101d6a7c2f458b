// Package scaffold renders the starter files written by docsite init: an
// .env.example listing every overlay variable and a README.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/eringen/docsite"
)

//go:embed all:templates
var templates embed.FS

// outputNames maps template names whose output name differs from the
// template name minus its .tmpl suffix.
var outputNames = map[string]string{
	"dotenv": ".env.example",
}

// Data is the value every template executes against.
type Data struct {
	SiteName string
	Overlays []docsite.Overlay
}

// File is one rendered starter file, named relative to the target directory.
type File struct {
	Name string
	Body []byte
}

// Render executes every embedded template against data. Files come back in
// lexical template order.
func Render(data Data) ([]File, error) {
	const root = "templates"
	var files []File
	err := fs.WalkDir(templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		src, err := templates.ReadFile(p)
		if err != nil {
			return fmt.Errorf("scaffold: read %s: %w", p, err)
		}
		tmpl, err := template.New(path.Base(p)).Parse(string(src))
		if err != nil {
			return fmt.Errorf("scaffold: parse %s: %w", p, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("scaffold: execute %s: %w", p, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, root+"/"), ".tmpl")
		if out, ok := outputNames[name]; ok {
			name = out
		}
		files = append(files, File{Name: name, Body: buf.Bytes()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
