package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenTestSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestUUID() {
	id := idgen.NewUUID("game").Generate()
	s.True(strings.HasPrefix(id, "game_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "game_"))
	s.NoError(err)

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	s.NoError(err)
}

func (s *IDGenTestSuite) TestSequential() {
	g := idgen.NewSequential("char")
	s.Equal("char_1", g.Generate())
	s.Equal("char_2", g.Generate())
	s.Equal("1", idgen.NewSequential("").Generate())
}

func (s *IDGenTestSuite) TestSequentialConcurrent() {
	g := idgen.NewSequential("x")
	seen := sync.Map{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(g.Generate(), true)
			s.False(dup)
		}()
	}
	wg.Wait()
}

func (s *IDGenTestSuite) TestTypedIDs() {
	g := idgen.NewSequential("team")
	id := idgen.New[entities.Team](g)
	var typed entities.TeamID = id
	s.Equal("team_1", typed.String())
}
