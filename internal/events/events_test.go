package events_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/gauge"
)

type EventsTestSuite struct {
	suite.Suite
	gorm  entities.ParticipantID
	brynn entities.ParticipantID
	tree  events.Completed
}

func TestEventsTestSuite(t *testing.T) {
	suite.Run(t, new(EventsTestSuite))
}

func (s *EventsTestSuite) SetupTest() {
	s.gorm = entities.NewParticipantID("p_gorm")
	s.brynn = entities.NewParticipantID("p_brynn")

	// gorm attacks brynn, brynn's resilience announces itself before the
	// damage lands and gorm earns xp afterwards
	s.tree = events.Completed{
		Event: events.Attack{Attacker: s.gorm, Target: s.brynn},
		Outcomes: []events.Completed{
			{
				Event: events.ProgressGauge{Location: events.HP(s.brynn), Amount: 1},
				PreResponses: []events.Completed{
					{Event: events.Announce{Text: "brynn braces"}},
				},
			},
		},
		PostResponses: []events.Completed{
			{Event: events.ProgressGauge{Location: events.XP(s.gorm), Amount: 1}},
		},
	}
}

func (s *EventsTestSuite) TestWalkOrder() {
	var kinds []events.Kind
	var depths []int
	err := s.tree.Walk(func(depth int, node events.Completed) error {
		kinds = append(kinds, node.Event.Kind())
		depths = append(depths, depth)
		return nil
	})
	s.Require().NoError(err)

	s.Equal([]events.Kind{
		events.KindAttack,
		events.KindProgressGauge,
		events.KindAnnounce,
		events.KindProgressGauge,
	}, kinds)
	s.Equal([]int{0, 1, 2, 1}, depths)
	s.Equal(4, s.tree.Size())
}

func (s *EventsTestSuite) TestWalkStopsOnError() {
	visited := 0
	err := s.tree.Walk(func(int, events.Completed) error {
		visited++
		return errors.Internal("stop")
	})
	s.Error(err)
	s.Equal(1, visited)
}

func (s *EventsTestSuite) TestChildrenOrder() {
	node := events.Completed{
		Event:         events.Announce{Text: "root"},
		PreResponses:  []events.Completed{{Event: events.Announce{Text: "pre"}}},
		Outcomes:      []events.Completed{{Event: events.Announce{Text: "outcome"}}},
		PostResponses: []events.Completed{{Event: events.Announce{Text: "post"}}},
	}
	var texts []string
	for _, child := range node.Children() {
		texts = append(texts, child.Event.(events.Announce).Text)
	}
	s.Equal([]string{"pre", "outcome", "post"}, texts)
}

func (s *EventsTestSuite) TestFind() {
	progress := events.Find[events.ProgressGauge](s.tree)
	s.Require().Len(progress, 2)
	s.Equal(events.HP(s.brynn), progress[0].Location)
	s.Equal(events.XP(s.gorm), progress[1].Location)

	s.Empty(events.Find[events.CreateGauge](s.tree))
}

func (s *EventsTestSuite) TestTreeJSON() {
	data, err := json.Marshal(s.tree)
	s.Require().NoError(err)

	var decoded events.Completed
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(s.tree, decoded)
}

func (s *EventsTestSuite) TestCreateGaugeEnvelope() {
	ev := events.CreateGauge{Location: events.XP(s.gorm), Gauge: gauge.XPBar()}
	data, err := events.Marshal(ev)
	s.Require().NoError(err)
	s.Contains(string(data), `"kind":"create_gauge"`)

	decoded, err := events.Unmarshal(data)
	s.Require().NoError(err)
	s.Equal(ev, decoded)
}

func (s *EventsTestSuite) TestUnmarshalErrors() {
	_, err := events.Unmarshal([]byte(`{"kind":"teleport","data":{}}`))
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))

	_, err = events.Unmarshal([]byte(`not json`))
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))

	_, err = events.Marshal(nil)
	s.True(errors.IsInvalidArgument(err))
}
