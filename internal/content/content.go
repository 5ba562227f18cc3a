// Package content holds the dashboard copy: titles, headings, chart titles
// and the narrative paragraphs shown between charts.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type Section struct {
	Heading    string   `yaml:"heading"`
	Chart      string   `yaml:"chart"`
	Slider     string   `yaml:"slider"`
	XAxis      string   `yaml:"xAxis"`
	YAxis      string   `yaml:"yAxis"`
	Paragraphs []string `yaml:"paragraphs"`
}

type Image struct {
	Caption string `yaml:"caption"`
}

// Content is the copy of the whole page. Text may reference {first}, {last},
// {year}, {n}, {country} and {cause}; see Vars.Expand.
type Content struct {
	Title   string  `yaml:"title"`
	Image   Image   `yaml:"image"`
	Intro   Section `yaml:"intro"`
	World   Section `yaml:"world"`
	Causes  Section `yaml:"causes"`
	Top     Section `yaml:"top"`
	Country Section `yaml:"country"`
	Trend   Section `yaml:"trend"`
	Closing Section `yaml:"closing"`
}

// Default returns the built-in copy.
func Default() (*Content, error) {
	return Parse(defaultContent)
}

// Load reads copy from a YAML file. An empty path returns Default.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading content file: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Parse(b []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("error parsing content: %w", err)
	}
	if c.Title == "" {
		return nil, errors.New("content has no title")
	}
	return &c, nil
}

// Vars are the values substituted into the copy.
type Vars struct {
	FirstYear int
	LastYear  int
	Year      int
	TopN      int
	Country   string
	Cause     string
}

// Expand replaces the placeholders in s.
func (v Vars) Expand(s string) string {
	return strings.NewReplacer(
		"{first}", strconv.Itoa(v.FirstYear),
		"{last}", strconv.Itoa(v.LastYear),
		"{year}", strconv.Itoa(v.Year),
		"{n}", strconv.Itoa(v.TopN),
		"{country}", v.Country,
		"{cause}", v.Cause,
	).Replace(s)
}

// ExpandAll applies Expand to every paragraph.
func (v Vars) ExpandAll(paragraphs []string) []string {
	out := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		out[i] = v.Expand(p)
	}
	return out
}
