package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/delver-sim/internal/orchestrators/game/mock"
)

type PlayTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ctx     context.Context
	mockSvc *gamemock.MockService
	out     *bytes.Buffer
}

func TestPlayTestSuite(t *testing.T) {
	suite.Run(t, new(PlayTestSuite))
}

func (s *PlayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockSvc = gamemock.NewMockService(s.ctrl)
	s.out = &bytes.Buffer{}
}

func (s *PlayTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func noWait() backoff.BackOff {
	return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, saveRetries)
}

// saveFailure mimics the error a game returns when its snapshot cannot be stored
func saveFailure() error {
	return errors.Unavailable("redis down").WithMeta("save_failed", true)
}

func (s *PlayTestSuite) TestRunTurnsPrintsEachTurn() {
	s.mockSvc.EXPECT().Turn(gomock.Any(), gomock.Any()).Return(&game.TurnOutput{}, nil).Times(2)
	s.mockSvc.EXPECT().LatestEvents(gomock.Any(), gomock.Any()).Return(&game.LatestEventsOutput{Text: "Gorm attacks Brynn"}, nil).Times(2)

	err := runTurns(s.ctx, s.mockSvc, 2, s.out, noWait)
	s.Require().NoError(err)
	s.Equal("\nTurn 1\nGorm attacks Brynn\n\nTurn 2\nGorm attacks Brynn\n", s.out.String())
}

func (s *PlayTestSuite) TestRunTurnsRetriesFailedSave() {
	s.Require().True(game.IsSaveError(saveFailure()))

	gomock.InOrder(
		s.mockSvc.EXPECT().Turn(gomock.Any(), gomock.Any()).Return(nil, saveFailure()),
		s.mockSvc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, saveFailure()),
		s.mockSvc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&game.SaveOutput{Version: 4}, nil),
		s.mockSvc.EXPECT().LatestEvents(gomock.Any(), gomock.Any()).Return(&game.LatestEventsOutput{Text: "x"}, nil),
	)

	s.Require().NoError(runTurns(s.ctx, s.mockSvc, 1, s.out, noWait))
	s.Contains(s.out.String(), "Turn 1")
}

func (s *PlayTestSuite) TestRunTurnsStopsWhenSaveKeepsFailing() {
	s.mockSvc.EXPECT().Turn(gomock.Any(), gomock.Any()).Return(nil, saveFailure())
	s.mockSvc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, saveFailure()).Times(saveRetries + 1)

	err := runTurns(s.ctx, s.mockSvc, 5, s.out, noWait)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Empty(s.out.String())
}

func (s *PlayTestSuite) TestRunTurnsStopsOnAbortedGame() {
	s.mockSvc.EXPECT().Turn(gomock.Any(), gomock.Any()).Return(nil, errors.Aborted("event resolution exceeded max depth"))

	err := runTurns(s.ctx, s.mockSvc, 3, s.out, noWait)
	s.True(errors.IsAborted(err))
	s.Equal(3, errors.GetCode(err).ExitCode())
}

func (s *PlayTestSuite) TestPrintStandingsPairsTeams() {
	teams := []game.TeamState{
		{ID: entities.NewGameTeamID("g:t1")},
		{ID: entities.NewGameTeamID("g:t2")},
		{ID: entities.NewGameTeamID("g:t3")},
	}
	s.mockSvc.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(&game.SnapshotOutput{
		Snapshot: &game.Snapshot{Teams: teams, Aborted: true, AbortReason: "boom"},
	}, nil)
	gomock.InOrder(
		s.mockSvc.EXPECT().Display(gomock.Any(), &game.DisplayInput{TeamA: teams[0].ID, TeamB: teams[1].ID}).
			Return(&game.DisplayOutput{Text: "one two"}, nil),
		s.mockSvc.EXPECT().Display(gomock.Any(), &game.DisplayInput{TeamA: teams[1].ID, TeamB: teams[2].ID}).
			Return(&game.DisplayOutput{Text: "two three"}, nil),
	)

	s.Require().NoError(printStandings(s.ctx, s.mockSvc, s.out))
	s.Equal("\none two\n\ntwo three\n\ngame aborted: boom\n", s.out.String())
}
