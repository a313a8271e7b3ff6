package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

type EntitiesTestSuite struct {
	suite.Suite
}

func TestEntitiesTestSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) TestIDJSON() {
	type payload struct {
		Team  entities.TeamID                            `json:"team"`
		Seats map[entities.ParticipantID]entities.Colour `json:"seats"`
	}

	in := payload{
		Team: entities.NewID[entities.Team]("team_ravens"),
		Seats: map[entities.ParticipantID]entities.Colour{
			entities.NewParticipantID("p_1"): entities.ColourRed,
		},
	}
	s.Run("round trips as plain strings", func() {
		data, err := json.Marshal(in)
		s.Require().NoError(err)
		s.JSONEq(`{"team":"team_ravens","seats":{"p_1":"red"}}`, string(data))

		var out payload
		s.Require().NoError(json.Unmarshal(data, &out))
		s.Equal(in, out)
	})
}

func (s *EntitiesTestSuite) TestIDZero() {
	var id entities.CharacterID
	s.True(id.IsZero())
	s.True(errors.IsInvalidArgument(entities.RequireID("character_id", id)))

	id = entities.NewID[entities.Character]("c_1")
	s.False(id.IsZero())
	s.Equal("c_1", id.String())
	s.NoError(entities.RequireID("character_id", id))
}

func (s *EntitiesTestSuite) TestParseColour() {
	c, err := entities.ParseColour("blue")
	s.Require().NoError(err)
	s.Equal(entities.ColourBlue, c)

	_, err = entities.ParseColour("mauve")
	s.True(errors.IsInvalidArgument(err))
}

func (s *EntitiesTestSuite) TestCharacterValidate() {
	testCases := []struct {
		name      string
		character entities.Character
		wantErr   bool
	}{
		{
			name: "valid",
			character: entities.Character{
				ID:        entities.NewID[entities.Character]("c_1"),
				Name:      "Gorm",
				Modifiers: []entities.ModifierKind{entities.ModifierGrinder},
			},
		},
		{
			name:      "missing id and name",
			character: entities.Character{},
			wantErr:   true,
		},
		{
			name: "unknown modifier",
			character: entities.Character{
				ID:        entities.NewID[entities.Character]("c_1"),
				Name:      "Gorm",
				Modifiers: []entities.ModifierKind{"berserk"},
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.character.Validate()
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.NoError(err)
		})
	}
}

func (s *EntitiesTestSuite) TestTeamValidate() {
	roster := make([]entities.CharacterID, entities.MaxRosterSize+1)
	team := entities.Team{
		ID:     entities.NewID[entities.Team]("t_1"),
		Name:   "Ravens",
		Colour: entities.ColourRed,
		Roster: roster,
	}
	s.Error(team.Validate())

	team.Roster = roster[:entities.MaxRosterSize]
	s.NoError(team.Validate())

	team.Colour = "mauve"
	s.Error(team.Validate())
}

func (s *EntitiesTestSuite) TestStats() {
	var stats entities.Stats
	s.True(stats.IsZero())

	for i, stat := range entities.StatOrder {
		s.True(stats.Set(stat, int8(i+1)))
	}
	s.False(stats.Set("charisma", 3))

	s.Equal(int8(1), stats.Get(entities.StatViolence))
	s.Equal(int8(7), stats.Get(entities.StatRun))
	s.Equal(int8(7), stats.Run)
	s.False(stats.IsZero())
}

func (s *EntitiesTestSuite) TestSheetsAreVersionedEntities() {
	c := &entities.Character{ID: entities.NewID[entities.Character]("c_9")}
	s.Equal("characters", c.Table())
	s.Equal("c_9", c.EntityID())

	t := &entities.Team{ID: entities.NewID[entities.Team]("t_9")}
	s.Equal("teams", t.Table())
	s.Equal("t_9", t.EntityID())
}
