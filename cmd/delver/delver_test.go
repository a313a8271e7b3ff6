package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

const testLeague = `
characters:
  - {id: gorm, name: Gorm, modifiers: [grinder]}
  - {id: brynn, name: Brynn, modifiers: [resilient]}
  - {id: hal, name: Hal, modifiers: [herald]}
teams:
  - {id: reds, name: Reds, colour: red, roster: [gorm, hal]}
  - {id: blues, name: Blues, colour: blue, roster: [brynn]}
`

// CommandTestSuite runs the commands end to end against a sqlite file
type CommandTestSuite struct {
	suite.Suite
	dir string
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("DELVER_STORE", "sqlite")
	s.T().Setenv("DELVER_SQLITE_PATH", filepath.Join(s.dir, "delver.db"))
	s.T().Setenv("DELVER_LOG_LEVEL", "error")
	s.T().Setenv("DELVER_SEED", "11")
	s.T().Setenv("DELVER_COLOR", "false")
}

func (s *CommandTestSuite) execute(args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	s.Require().NoError(rootCmd.Execute())
	return out.String()
}

func (s *CommandTestSuite) TestSeedPlayShow() {
	league := filepath.Join(s.dir, "league.yaml")
	s.Require().NoError(os.WriteFile(league, []byte(testLeague), 0o600))

	out := s.execute("seed", "--file", league)
	s.Contains(out, "seeded 3 characters and 2 teams")

	out = s.execute("play", "--team", "blues", "--team", "reds", "--turns", "3")
	firstLine, _, _ := strings.Cut(out, "\n")
	s.Require().True(strings.HasPrefix(firstLine, "game "), firstLine)
	gameID := strings.Fields(firstLine)[1]

	// reds joined last, so they attack first and Hal's herald fires on turn 3
	s.Contains(out, "Turn 1\nGorm attacks Brynn")
	s.Contains(out, "Turn 3\nHal rallies the team")
	s.Contains(out, "Reds\n  top     Gorm")

	out = s.execute("show", "--game", gameID)
	s.Contains(out, "game "+gameID+" after turn 3")
	s.Contains(out, "Blues\n  top     Brynn")
}
