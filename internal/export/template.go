package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/journal"
)

// Template names for the built-in export formats.
const (
	TemplateText     = "text"
	TemplateMarkdown = "markdown"
	TemplatePDF      = "pdf"
)

// Template represents an export template with metadata and content.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Template content (after frontmatter)
	Content string `yaml:"-"`

	// Source location for display
	Source string `yaml:"-"`
}

// TemplateInfo provides template metadata for listing.
type TemplateInfo struct {
	Name        string
	Description string
	Source      string // "built-in" or "user"
	Overrides   string // empty or name of what it overrides
}

// LoadTemplate finds and loads a template by name.
// Resolution order: user config directory → built-in.
func LoadTemplate(name string) (*Template, error) {
	if tmpl, err := loadFromPath(userTemplatesDir(), name); err == nil {
		tmpl.Source = "user"
		return tmpl, nil
	}

	if tmpl, err := loadBuiltin(name); err == nil {
		tmpl.Source = "built-in"
		return tmpl, nil
	}

	return nil, fmt.Errorf("template %q not found", name)
}

// ListTemplates returns all available templates, marking overridden built-ins.
func ListTemplates() []TemplateInfo {
	seen := make(map[string]bool)
	var templates []TemplateInfo

	userInfos, err := listFromPath(userTemplatesDir())
	if err == nil {
		for _, info := range userInfos {
			seen[info.Name] = true
			templates = append(templates, info)
		}
	}

	for _, info := range listBuiltins() {
		if seen[info.Name] {
			continue
		}
		templates = append(templates, info)
	}

	return templates
}

// userTemplatesDir returns the user's template override directory.
func userTemplatesDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}

// loadFromPath attempts to load a template from a directory.
func loadFromPath(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	path := filepath.Join(dir, name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	return parseTemplate(string(data))
}

// listFromPath lists templates in a directory.
func listFromPath(dir string) ([]TemplateInfo, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var templates []TemplateInfo
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".md")
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}

		tmpl, err := parseTemplate(string(data))
		if err != nil {
			continue
		}

		info := TemplateInfo{
			Name:        name,
			Description: tmpl.Description,
			Source:      "user",
		}
		if isBuiltinName(name) {
			info.Overrides = "built-in"
		}
		templates = append(templates, info)
	}

	return templates, nil
}

// parseTemplate parses a template from raw content with YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Content = strings.TrimSpace(content)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end. Anything after
// the closing delimiter is content, so a template body may open with its
// own metadata block (the pdf template does).
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:] // skip opening ---
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// Render substitutes {{variable}} placeholders in the template content.
// Substitution is a single pass, so entry text containing placeholder
// syntax passes through untouched.
func Render(tmpl *Template, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for key, val := range vars {
		pairs = append(pairs, "{{"+key+"}}", val)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl.Content)
}

// buildVars creates the variable map for an entry.
func buildVars(date journal.Date, entry *journal.Entry) map[string]string {
	return map[string]string{
		"date":    date.String(),
		"journal": entry.Journal,
		"poetry":  entry.Poetry,
		"color":   entry.EffectiveColor(),
	}
}

// renderEntry loads the named template and renders it for the entry.
func renderEntry(templateName string, date journal.Date, entry *journal.Entry) (string, error) {
	tmpl, err := LoadTemplate(templateName)
	if err != nil {
		return "", err
	}
	return Render(tmpl, buildVars(date, entry)), nil
}
