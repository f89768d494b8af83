package data

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed enemies.yaml palette.yaml
var templateFS embed.FS

// EnemyTemplate describes one enemy archetype
type EnemyTemplate struct {
	// Basic info
	Variant     string `yaml:"variant"`     // stationary, no_shoot or full
	Name        string `yaml:"name"`        // Display name
	Description string `yaml:"description"` // Description text

	// Visual appearance
	Sprite      int   `yaml:"sprite"`      // Resting sprite
	Frames      []int `yaml:"frames"`      // Animation, empty for a static sprite
	FrameTimeMs int   `yaml:"frameTimeMs"` // Time per animation frame

	// Collision box half extents
	HalfWidth  float64 `yaml:"halfWidth"`
	HalfHeight float64 `yaml:"halfHeight"`

	// Behavior
	Moves  bool     `yaml:"moves"`  // Chases the player
	Shoots bool     `yaml:"shoots"` // Carries a shooter
	Tags   []string `yaml:"tags"`   // Extra tags
}

// FrameTime returns the animation frame duration
func (t *EnemyTemplate) FrameTime() time.Duration {
	return time.Duration(t.FrameTimeMs) * time.Millisecond
}

// SpriteStyle is how front-ends draw one sprite index
type SpriteStyle struct {
	Color string  `yaml:"color"` // hex, e.g. "#00FF00"
	Glyph string  `yaml:"glyph"` // single character for the terminal
	Size  float64 `yaml:"size"`  // fraction of the owning box to fill, 0 means 1
}

// TemplateLibrary holds every archetype and the sprite palette
type TemplateLibrary struct {
	Enemies map[string]*EnemyTemplate
	Palette map[int]SpriteStyle
}

type enemyFile struct {
	Enemies []*EnemyTemplate `yaml:"enemies"`
}

type paletteFile struct {
	Sprites map[int]SpriteStyle `yaml:"sprites"`
}

// LoadTemplates loads the embedded enemy templates and palette
func LoadTemplates() (*TemplateLibrary, error) {
	return LoadTemplatesFrom(templateFS)
}

// LoadTemplatesFrom loads enemies.yaml and palette.yaml from fsys
func LoadTemplatesFrom(fsys fs.FS) (*TemplateLibrary, error) {
	lib := &TemplateLibrary{
		Enemies: make(map[string]*EnemyTemplate),
		Palette: make(map[int]SpriteStyle),
	}

	raw, err := fs.ReadFile(fsys, "enemies.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy templates: %w", err)
	}
	var enemies enemyFile
	if err := yaml.Unmarshal(raw, &enemies); err != nil {
		return nil, fmt.Errorf("failed to parse enemy templates: %w", err)
	}
	for _, template := range enemies.Enemies {
		if err := ValidateEnemyTemplate(template); err != nil {
			return nil, err
		}
		lib.Enemies[template.Variant] = template
	}
	for _, variant := range []string{"stationary", "no_shoot", "full"} {
		if _, ok := lib.Enemies[variant]; !ok {
			return nil, fmt.Errorf("enemy template %q missing", variant)
		}
	}

	raw, err = fs.ReadFile(fsys, "palette.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}
	var palette paletteFile
	if err := yaml.Unmarshal(raw, &palette); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	lib.Palette = palette.Sprites

	return lib, nil
}

// ValidateEnemyTemplate checks the fields the spawner relies on
func ValidateEnemyTemplate(template *EnemyTemplate) error {
	if template.Variant == "" {
		return fmt.Errorf("enemy template %q missing variant", template.Name)
	}
	if template.HalfWidth <= 0 || template.HalfHeight <= 0 {
		return fmt.Errorf("enemy template %q needs a positive collision box", template.Variant)
	}
	if len(template.Frames) > 0 && template.FrameTimeMs <= 0 {
		return fmt.Errorf("enemy template %q has frames but no frame time", template.Variant)
	}
	return nil
}

// GetEnemy returns the template of a variant
func (l *TemplateLibrary) GetEnemy(variant string) (*EnemyTemplate, bool) {
	template, ok := l.Enemies[variant]
	return template, ok
}

// Style returns how to draw a sprite, falling back to magenta for unknown sprites
func (l *TemplateLibrary) Style(sprite int) SpriteStyle {
	if style, ok := l.Palette[sprite]; ok {
		return style
	}
	return SpriteStyle{Color: "#FF00FF", Glyph: "?"}
}

// Sprites lists the palette entries in ascending order
func (l *TemplateLibrary) Sprites() []int {
	sprites := make([]int, 0, len(l.Palette))
	for sprite := range l.Palette {
		sprites = append(sprites, sprite)
	}
	sort.Ints(sprites)
	return sprites
}

// ParseHexColor converts a hex color string to color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 255

	if len(hex) == 0 {
		return c
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	switch len(hex) {
	case 6:
		fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	}

	return c
}
