package rng_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/pkg/rng"
	rngmock "github.com/KirkDiggler/delver-sim/internal/pkg/rng/mock"
)

type RollerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSrc *rngmock.MockSource
	roller  *rng.Roller
}

func TestRollerTestSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSrc = rngmock.NewMockSource(s.ctrl)
	s.roller = rng.NewRoller(s.mockSrc)
}

func (s *RollerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RollerTestSuite) TestRollIsOneBased() {
	s.mockSrc.EXPECT().IntN(10).Return(0)
	s.mockSrc.EXPECT().IntN(10).Return(9)

	low, err := s.roller.Roll(10)
	s.Require().NoError(err)
	s.Equal(1, low)

	high, err := s.roller.Roll(10)
	s.Require().NoError(err)
	s.Equal(10, high)
}

func (s *RollerTestSuite) TestRollN() {
	gomock.InOrder(
		s.mockSrc.EXPECT().IntN(6).Return(2),
		s.mockSrc.EXPECT().IntN(6).Return(4),
		s.mockSrc.EXPECT().IntN(6).Return(0),
	)

	results, err := s.roller.RollN(3, 6)
	s.Require().NoError(err)
	s.Equal([]int{3, 5, 1}, results)
}

func (s *RollerTestSuite) TestInvalidInput() {
	s.Run("non-positive size", func() {
		_, err := s.roller.Roll(0)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("non-positive count", func() {
		_, err := s.roller.RollN(0, 6)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RollerTestSuite) TestStreamBackedRollsRepeat() {
	roll := func() []int {
		out, err := rng.NewRoller(rng.New(5)).RollN(14, 10)
		s.Require().NoError(err)
		return out
	}
	s.Equal(roll(), roll())
}
