package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v2"

	"github.com/lox/kittybid/internal/game"
)

const defaultNumGames = 1

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalid           = errors.New("invalid config")
)

// File is a tournament document as written by the user. JSON and HCL share
// the hcl tags; YAML uses the yaml tags.
type File struct {
	NumCards int            `hcl:"num_cards" yaml:"num_cards"`
	NumGames int            `hcl:"num_games,optional" yaml:"num_games"`
	Seed     int64          `hcl:"seed,optional" yaml:"seed"`
	Players  []PlayerConfig `hcl:"players" yaml:"players"`
}

// PlayerConfig seats one player. Order in the file is bidding order.
type PlayerConfig struct {
	Name     string `cty:"name" yaml:"name"`
	Strategy string `cty:"strategy" yaml:"strategy"`
}

// Load reads, decodes, defaults and validates the document at path. The
// format is chosen from the extension: .json, .hcl, .yaml or .yml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes data as if it had been read from filename
func Parse(data []byte, filename string) (*File, error) {
	var f File
	var err error

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json", ".hcl":
		err = decodeHCL(data, filename, ext, &f)
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(data, &f)
		if err != nil {
			err = fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func decodeHCL(data []byte, filename, ext string, f *File) error {
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if ext == ".json" {
		file, diags = parser.ParseJSON(data, filename)
	} else {
		file, diags = parser.ParseHCL(data, filename)
	}
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	diags = gohcl.DecodeBody(file.Body, nil, f)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}
	return nil
}

func (f *File) applyDefaults() {
	if f.NumGames == 0 {
		f.NumGames = defaultNumGames
	}
	for i := range f.Players {
		f.Players[i].Name = strings.TrimSpace(f.Players[i].Name)
	}
}

// Validate validates the tournament document
func (f *File) Validate() error {
	if len(f.Players) == 0 {
		return fmt.Errorf("%w: at least one player is required", ErrInvalid)
	}

	seen := make(map[string]bool, len(f.Players))
	for i, p := range f.Players {
		if p.Name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrInvalid, i+1)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate player name %q", ErrInvalid, p.Name)
		}
		seen[p.Name] = true
	}

	if f.NumGames < 1 {
		return fmt.Errorf("%w: num_games must be at least 1, got %d", ErrInvalid, f.NumGames)
	}
	if need := len(f.Players) + 1; f.NumCards < need {
		return fmt.Errorf("%w: num_cards must be at least %d for %d players, got %d",
			ErrInvalid, need, len(f.Players), f.NumCards)
	}
	return nil
}

// UnknownStrategies lists players whose strategy name is not recognised.
// Such players bid with next_card.
func (f *File) UnknownStrategies() []string {
	var names []string
	for _, p := range f.Players {
		if _, ok := game.LookupStrategy(p.Strategy); !ok {
			names = append(names, p.Name)
		}
	}
	return names
}

// HasInteractive reports whether any player needs a console
func (f *File) HasInteractive() bool {
	for _, p := range f.Players {
		if game.ParseStrategy(p.Strategy).IsInteractive() {
			return true
		}
	}
	return false
}

// GameConfig derives the numbers the engine plays with
func (f *File) GameConfig() game.Config {
	return game.NewConfig(len(f.Players), f.NumGames, f.NumCards)
}

// Table seats a fresh player for every entry, in file order
func (f *File) Table() *game.Table {
	players := make([]*game.Player, len(f.Players))
	for i, p := range f.Players {
		players[i] = game.NewPlayer(p.Name, game.ParseStrategy(p.Strategy))
	}
	return game.NewTable(players...)
}
