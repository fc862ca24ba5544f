// Package resume holds the text shown on the résumé page and loads it from
// YAML, either the copy embedded in the binary or a file on disk.
package resume

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/resume/internal/career"
)

//go:embed resume.yaml
var defaultYAML []byte

// Resume is everything rendered on the page.
type Resume struct {
	Name      string    `yaml:"name"`
	Headline  string    `yaml:"headline"`
	Email     string    `yaml:"email"`
	Location  string    `yaml:"location"`
	About     string    `yaml:"about"`
	Career    Career    `yaml:"career"`
	Links     []Link    `yaml:"links"`
	Work      []Entry   `yaml:"work"`
	Education []Entry   `yaml:"education"`
	Projects  []Project `yaml:"projects"`
}

// Career configures the duration label.
type Career struct {
	Start string `yaml:"start"`
	// Prefix is shown before the label, e.g. "경력".
	Prefix string `yaml:"prefix"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
}

// Entry is one position in the work or education history.
type Entry struct {
	Title        string   `yaml:"title"`
	Organization string   `yaml:"organization"`
	Start        string   `yaml:"start"`
	End          string   `yaml:"end"`
	Logo         string   `yaml:"logo"`
	Bullets      []string `yaml:"bullets"`
}

type Project struct {
	Name    string   `yaml:"name"`
	Summary string   `yaml:"summary"`
	URL     string   `yaml:"url"`
	Stack   []string `yaml:"stack"`
}

// Default returns the résumé embedded at build time.
func Default() (*Resume, error) {
	r, err := Decode(bytes.NewReader(defaultYAML))
	if err != nil {
		return nil, fmt.Errorf("embedded resume: %w", err)
	}
	return r, nil
}

// Load reads a résumé from path.
func Load(path string) (*Resume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resume %s: %w", path, err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("resume %s: %w", path, err)
	}
	return r, nil
}

// Decode parses and validates a YAML résumé. Unknown keys are rejected.
func Decode(src io.Reader) (*Resume, error) {
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)

	var r Resume
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return nil, errors.New("more than one YAML document")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the fields the page cannot do without.
func (r *Resume) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := career.ParseDate(r.Career.Start); err != nil {
		return fmt.Errorf("career.start: %w", err)
	}
	return nil
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// AboutHTML renders the about section from markdown.
func (r *Resume) AboutHTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(r.About), &buf); err != nil {
		return "", fmt.Errorf("render about: %w", err)
	}
	return template.HTML(buf.String()), nil
}
