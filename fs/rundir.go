// Package fs provides the file-based per-run output directory.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dkubicek/preklad"
	"github.com/google/uuid"
)

// Ensure RunDir implements preklad.OutputStore at compile time.
var _ preklad.OutputStore = (*RunDir)(nil)

// RunDir is a per-run output directory under a common output root.
// The directory name carries a timestamp and a random suffix so repeated
// runs against the same root never clobber each other.
type RunDir struct {
	path string
}

// NewRunDir creates a fresh run directory under baseDir, including the
// images/ subdirectory.
func NewRunDir(baseDir string) (*RunDir, error) {
	name := fmt.Sprintf("article_%s_%s",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8])
	path, err := filepath.Abs(filepath.Join(baseDir, name))
	if err != nil {
		return nil, preklad.Errorf(preklad.EOUTPUT, "resolve output directory: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(path, "images"), 0755); err != nil {
		return nil, preklad.Errorf(preklad.EOUTPUT, "create run directory: %v", err)
	}
	return &RunDir{path: path}, nil
}

// Path returns the absolute path of the run directory.
func (d *RunDir) Path() string {
	return d.path
}

// SaveImage writes a content image under images/, appending a numeric
// suffix when the name is already taken.
func (d *RunDir) SaveImage(name string, body []byte) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	rel := filepath.Join("images", name)
	for i := 1; ; i++ {
		if _, err := os.Stat(filepath.Join(d.path, rel)); os.IsNotExist(err) {
			break
		}
		rel = filepath.Join("images", fmt.Sprintf("%s_%d%s", stem, i, ext))
	}

	if err := os.WriteFile(filepath.Join(d.path, rel), body, 0644); err != nil {
		return "", preklad.Errorf(preklad.EOUTPUT, "write image %s: %v", rel, err)
	}
	return filepath.ToSlash(rel), nil
}

// SaveCover writes the cover image at the run root as header_image with
// the extension carried by name, defaulting to .jpg.
func (d *RunDir) SaveCover(name string, body []byte) (string, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		ext = ".jpg"
	}
	rel := "header_image" + ext
	if err := os.WriteFile(filepath.Join(d.path, rel), body, 0644); err != nil {
		return "", preklad.Errorf(preklad.EOUTPUT, "write cover image: %v", err)
	}
	return rel, nil
}

// WriteContent writes the translated article markup.
func (d *RunDir) WriteContent(html string) error {
	return d.writeFile("content.html", []byte(html))
}

// WriteMarkdown writes the Markdown rendition of the content.
func (d *RunDir) WriteMarkdown(md string) error {
	return d.writeFile("content.md", []byte(md))
}

// WriteMetadata writes the translated metadata twice: a line-oriented
// seo_metadata.txt for copy-paste into a CMS and a structured
// seo_metadata.json for tooling.
func (d *RunDir) WriteMetadata(res *preklad.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "TITLE: %s\n", res.Meta.Title)
	fmt.Fprintf(&b, "DESCRIPTION: %s\n", res.Meta.Description)
	fmt.Fprintf(&b, "KEYWORDS: %s\n", strings.Join(res.Meta.Keywords, ", "))
	fmt.Fprintf(&b, "AUTHOR: %s\n", res.Meta.Author)
	fmt.Fprintf(&b, "TOPIC: %s\n", res.Topic)
	if err := d.writeFile("seo_metadata.txt", []byte(b.String())); err != nil {
		return err
	}

	return d.writeJSON("seo_metadata.json", struct {
		preklad.Metadata
		Topic string `json:"topic,omitempty"`
	}{Metadata: res.Meta, Topic: res.Topic})
}

// WriteManifest writes the machine-readable run manifest.
func (d *RunDir) WriteManifest(res *preklad.Result) error {
	return d.writeJSON("manifest.json", res)
}

// WriteReadme writes the human-readable run summary.
func (d *RunDir) WriteReadme(res *preklad.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Přeložený článek\n================\n\n")
	fmt.Fprintf(&b, "Zdroj:      %s\n", res.URL)
	fmt.Fprintf(&b, "Titulek:    %s\n", res.Meta.Title)
	if res.Topic != "" {
		fmt.Fprintf(&b, "Téma:       %s\n", res.Topic)
	}
	fmt.Fprintf(&b, "Vytvořeno:  %s\n\n", res.CreatedAt.Format(time.RFC3339))

	b.WriteString("Soubory:\n")
	b.WriteString("  content.html       přeložený obsah článku\n")
	b.WriteString("  content.md         obsah ve formátu Markdown\n")
	b.WriteString("  seo_metadata.txt   metadata pro vložení do CMS\n")
	b.WriteString("  seo_metadata.json  metadata ve strojovém formátu\n")
	b.WriteString("  manifest.json      úplný přehled běhu\n")
	if res.CoverPath != "" {
		fmt.Fprintf(&b, "  %s   úvodní obrázek\n", res.CoverPath)
	}
	if n := len(res.Assets); n > 0 {
		fmt.Fprintf(&b, "  images/            %d stažených obrázků\n", n)
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\nUpozornění:\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	return d.writeFile("README.txt", []byte(b.String()))
}

func (d *RunDir) writeFile(name string, body []byte) error {
	if err := os.WriteFile(filepath.Join(d.path, name), body, 0644); err != nil {
		return preklad.Errorf(preklad.EOUTPUT, "write %s: %v", name, err)
	}
	return nil
}

func (d *RunDir) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return preklad.Errorf(preklad.EINTERNAL, "encode %s: %v", name, err)
	}
	return d.writeFile(name, append(data, '\n'))
}
