package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/tableau/internal/card"
)

// Game is a named game description as stored on disk
type Game struct {
	Name        string
	Description string
	Path        string
	// Seed is the generator seed the game was dealt from, if recorded
	Seed        *int64
	Deals       card.GameDescription
}

// File is the TOML layout of a game file
type File struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description,omitempty"`
	Seed        *int64     `toml:"seed,omitempty"`
	Deals       []DealFile `toml:"deal"`
}

// DealFile is one [[deal]] table of a game file
type DealFile struct {
	Stack string `toml:"stack"`
	Suit  string `toml:"suit"`
	Cards int    `toml:"cards"`
	Extra int    `toml:"extra"`
}

// DecodeFile parses a game file without interpreting its identifiers
func DecodeFile(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("game file not found: %s", path)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", filepath.Base(path), err)
	}
	return &f, nil
}

// LoadGame loads a game from a TOML file. Unknown stack or suit names
// fail with card.ErrInvalidIdentifier; counts are taken as written.
func LoadGame(path string) (*Game, error) {
	f, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	deals, err := f.GameDescription()
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", filepath.Base(path), err)
	}

	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &Game{
		Name:        name,
		Description: f.Description,
		Path:        path,
		Seed:        f.Seed,
		Deals:       deals,
	}, nil
}

// GameDescription converts the file's deal tables into a game description
func (f *File) GameDescription() (card.GameDescription, error) {
	g := make(card.GameDescription, 0, len(f.Deals))
	for i, df := range f.Deals {
		stack, err := card.ParseStack(df.Stack)
		if err != nil {
			return nil, fmt.Errorf("deal %d: %w", i+1, err)
		}
		suit, err := card.ParseSuit(df.Suit)
		if err != nil {
			return nil, fmt.Errorf("deal %d: %w", i+1, err)
		}
		g = append(g, card.StackDeal{Stack: stack, Suit: suit, Count: df.Cards, Extra: df.Extra})
	}
	return g, nil
}

// NewFile converts a game description into its file form
func NewFile(name string, g card.GameDescription) *File {
	f := &File{Name: name, Deals: make([]DealFile, 0, len(g))}
	for _, d := range g {
		f.Deals = append(f.Deals, DealFile{
			Stack: d.Stack.String(),
			Suit:  d.Suit.String(),
			Cards: d.Count,
			Extra: d.Extra,
		})
	}
	return f
}

// SaveGame writes a game file, creating parent directories as needed
func SaveGame(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating game directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating game file: %v", err)
	}
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(f); err != nil {
		file.Close()
		return fmt.Errorf("error encoding game: %v", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("error writing game file: %v", err)
	}
	return nil
}

// Format renders a description the way it is echoed after generation
func Format(g card.GameDescription) string {
	var b strings.Builder
	b.WriteString("Cards to draw (stack, suit, no. cards, extra):\n\n")
	if len(g) == 0 {
		b.WriteString(" []\n")
		return b.String()
	}
	for i, d := range g {
		switch {
		case len(g) == 1:
			fmt.Fprintf(&b, " [%s]\n", d)
		case i == 0:
			fmt.Fprintf(&b, " [%s,\n", d)
		case i == len(g)-1:
			fmt.Fprintf(&b, "  %s]\n", d)
		default:
			fmt.Fprintf(&b, "  %s,\n", d)
		}
	}
	return b.String()
}
