// Package fixtures loads league files: the characters and teams the CLI
// seeds into storage before a game.
package fixtures

import (
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

// Stats missing from a fixture are rolled as StatDiceCount dice of StatDiceSize
const (
	StatDiceCount = 2
	StatDiceSize  = 10
)

// League is the parsed content of a league file
type League struct {
	Characters []*entities.Character
	Teams      []*entities.Team
}

type leagueFile struct {
	Characters []characterFile `yaml:"characters"`
	Teams      []teamFile      `yaml:"teams"`
}

type characterFile struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Modifiers []string       `yaml:"modifiers"`
	Stats     map[string]int `yaml:"stats"`
}

type teamFile struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Colour string   `yaml:"colour"`
	Roster []string `yaml:"roster"`
}

// Config configures a Loader
type Config struct {
	// Roller rolls missing stats. Defaults to the toolkit's default roller.
	Roller dice.Roller
}

// Loader parses league files
type Loader struct {
	roller dice.Roller
}

// NewLoader creates a loader
func NewLoader(cfg *Config) *Loader {
	l := &Loader{roller: dice.DefaultRoller}
	if cfg != nil && cfg.Roller != nil {
		l.roller = cfg.Roller
	}
	return l
}

// LoadFile reads and parses the league file at path
func (l *Loader) LoadFile(path string) (*League, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("league file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read league file %s", path)
	}

	league, err := l.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load league").WithMeta("path", path)
	}
	return league, nil
}

// Parse decodes a league document, rolls any missing stats and checks that
// every roster entry names a character from the same document
func (l *Loader) Parse(data []byte) (*League, error) {
	var doc leagueFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode league yaml")
	}

	league := &League{
		Characters: make([]*entities.Character, 0, len(doc.Characters)),
		Teams:      make([]*entities.Team, 0, len(doc.Teams)),
	}

	known := make(map[string]bool, len(doc.Characters))
	for i, cf := range doc.Characters {
		char, err := l.character(cf)
		if err != nil {
			return nil, errors.Wrapf(err, "character %d", i)
		}
		if known[cf.ID] {
			return nil, errors.AlreadyExistsf("character %s is defined twice", cf.ID)
		}
		known[cf.ID] = true
		league.Characters = append(league.Characters, char)
	}

	teams := make(map[string]bool, len(doc.Teams))
	for i, tf := range doc.Teams {
		team, err := teamFromFile(tf, known)
		if err != nil {
			return nil, errors.Wrapf(err, "team %d", i)
		}
		if teams[tf.ID] {
			return nil, errors.AlreadyExistsf("team %s is defined twice", tf.ID)
		}
		teams[tf.ID] = true
		league.Teams = append(league.Teams, team)
	}

	return league, nil
}

func (l *Loader) character(cf characterFile) (*entities.Character, error) {
	char := &entities.Character{
		ID:   entities.NewID[entities.Character](cf.ID),
		Name: cf.Name,
	}
	for _, m := range cf.Modifiers {
		char.Modifiers = append(char.Modifiers, entities.ModifierKind(m))
	}

	vb := errors.NewValidationBuilder()
	for name, value := range cf.Stats {
		errors.ValidateRange("stats."+name, value, 0, StatDiceCount*StatDiceSize, vb)
		if !char.Stats.Set(entities.Stat(name), int8(min(max(value, 0), StatDiceCount*StatDiceSize))) {
			vb.InvalidField("stats", "unknown stat "+name)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	for _, stat := range entities.StatOrder {
		if _, given := cf.Stats[string(stat)]; given {
			continue
		}
		rolls, err := l.roller.RollN(StatDiceCount, StatDiceSize)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", stat)
		}
		total := 0
		for _, r := range rolls {
			total += r
		}
		char.Stats.Set(stat, int8(total))
	}

	if err := char.Validate(); err != nil {
		return nil, err
	}
	return char, nil
}

func teamFromFile(tf teamFile, known map[string]bool) (*entities.Team, error) {
	team := &entities.Team{
		ID:     entities.NewID[entities.Team](tf.ID),
		Name:   tf.Name,
		Colour: entities.Colour(tf.Colour),
	}
	for _, raw := range tf.Roster {
		if !known[raw] {
			return nil, errors.NotFoundf("roster character %s is not defined", raw).
				WithMeta("team_id", tf.ID)
		}
		team.Roster = append(team.Roster, entities.NewID[entities.Character](raw))
	}
	if err := team.Validate(); err != nil {
		return nil, err
	}
	return team, nil
}
