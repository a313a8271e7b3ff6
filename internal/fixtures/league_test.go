package fixtures_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/fixtures"
	"github.com/KirkDiggler/delver-sim/internal/pkg/rng"
)

const leagueYAML = `
characters:
  - id: gorm
    name: Gorm
    modifiers: [grinder]
    stats:
      violence: 12
  - id: brynn
    name: Brynn
    modifiers: [resilient, vengeful]
teams:
  - id: reds
    name: Reds
    colour: red
    roster: [gorm]
  - id: blues
    name: Blues
    colour: blue
    roster: [brynn]
`

type LeagueTestSuite struct {
	suite.Suite
	loader *fixtures.Loader
}

func TestLeagueTestSuite(t *testing.T) {
	suite.Run(t, new(LeagueTestSuite))
}

func (s *LeagueTestSuite) SetupTest() {
	s.loader = fixtures.NewLoader(&fixtures.Config{Roller: rng.NewRoller(rng.New(1))})
}

func (s *LeagueTestSuite) TestParse() {
	league, err := s.loader.Parse([]byte(leagueYAML))
	s.Require().NoError(err)
	s.Require().Len(league.Characters, 2)
	s.Require().Len(league.Teams, 2)

	gorm := league.Characters[0]
	s.Equal(entities.NewID[entities.Character]("gorm"), gorm.ID)
	s.Equal("Gorm", gorm.Name)
	s.Equal([]entities.ModifierKind{entities.ModifierGrinder}, gorm.Modifiers)
	s.Equal(int8(12), gorm.Stats.Violence)

	brynn := league.Characters[1]
	s.Equal([]entities.ModifierKind{entities.ModifierResilient, entities.ModifierVengeful}, brynn.Modifiers)

	reds := league.Teams[0]
	s.Equal(entities.ColourRed, reds.Colour)
	s.Equal([]entities.CharacterID{gorm.ID}, reds.Roster)
}

func (s *LeagueTestSuite) TestMissingStatsAreRolled() {
	league, err := s.loader.Parse([]byte(leagueYAML))
	s.Require().NoError(err)

	for _, char := range league.Characters {
		for _, stat := range entities.StatOrder {
			v := char.Stats.Get(stat)
			s.GreaterOrEqual(v, int8(fixtures.StatDiceCount), "%s %s", char.Name, stat)
			s.LessOrEqual(v, int8(fixtures.StatDiceCount*fixtures.StatDiceSize), "%s %s", char.Name, stat)
		}
	}
}

func (s *LeagueTestSuite) TestRollsAreReproducible() {
	parse := func() *fixtures.League {
		loader := fixtures.NewLoader(&fixtures.Config{Roller: rng.NewRoller(rng.New(77))})
		league, err := loader.Parse([]byte(leagueYAML))
		s.Require().NoError(err)
		return league
	}
	s.Equal(parse().Characters[1].Stats, parse().Characters[1].Stats)
}

func (s *LeagueTestSuite) TestDefaultRoller() {
	league, err := fixtures.NewLoader(nil).Parse([]byte(leagueYAML))
	s.Require().NoError(err)
	s.False(league.Characters[1].Stats.IsZero())
}

func (s *LeagueTestSuite) TestInvalidDocuments() {
	testCases := []struct {
		name  string
		doc   string
		check func(error) bool
	}{
		{
			name:  "bad yaml",
			doc:   "characters: [",
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown roster character",
			doc:   "teams:\n  - {id: t, name: T, colour: red, roster: [ghost]}\n",
			check: errors.IsNotFound,
		},
		{
			name:  "unknown modifier",
			doc:   "characters:\n  - {id: a, name: A, modifiers: [telepathy]}\n",
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown stat",
			doc:   "characters:\n  - {id: a, name: A, stats: {charisma: 3}}\n",
			check: errors.IsInvalidArgument,
		},
		{
			name:  "stat out of range",
			doc:   "characters:\n  - {id: a, name: A, stats: {run: 99}}\n",
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown colour",
			doc:   "teams:\n  - {id: t, name: T, colour: mauve}\n",
			check: errors.IsInvalidArgument,
		},
		{
			name:  "duplicate character",
			doc:   "characters:\n  - {id: a, name: A}\n  - {id: a, name: B}\n",
			check: errors.IsAlreadyExists,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.loader.Parse([]byte(tc.doc))
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *LeagueTestSuite) TestLoadFile() {
	s.Run("reads a file", func() {
		path := filepath.Join(s.T().TempDir(), "league.yaml")
		s.Require().NoError(os.WriteFile(path, []byte(leagueYAML), 0o600))

		league, err := s.loader.LoadFile(path)
		s.Require().NoError(err)
		s.Len(league.Teams, 2)
	})

	s.Run("missing file", func() {
		_, err := s.loader.LoadFile(filepath.Join(s.T().TempDir(), "nope.yaml"))
		s.True(errors.IsNotFound(err))
	})
}
