package display_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/delver-sim/internal/display"
	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/gauge"
	"github.com/KirkDiggler/delver-sim/internal/roster"
	"github.com/KirkDiggler/delver-sim/internal/world"
)

type DisplayTestSuite struct {
	suite.Suite
	renderer *display.Renderer
	world    *world.World
	gorm     entities.ParticipantID
	brynn    entities.ParticipantID
}

func TestDisplayTestSuite(t *testing.T) {
	suite.Run(t, new(DisplayTestSuite))
}

func (s *DisplayTestSuite) SetupTest() {
	s.renderer = display.New(&display.Config{Colour: false})
	s.gorm = entities.NewParticipantID("p_gorm")
	s.brynn = entities.NewParticipantID("p_brynn")

	hp := gauge.HealthBar()
	hp.Increment(1)
	xp := gauge.XPBar()
	xp.Increment(1)

	s.world = world.New()
	s.Require().NoError(s.world.Add(&world.Participant{ID: s.gorm, Name: "Gorm", Gauges: []gauge.Gauge{gauge.HealthBar(), xp}}))
	s.Require().NoError(s.world.Add(&world.Participant{ID: s.brynn, Name: "Brynn", Gauges: []gauge.Gauge{hp}}))
}

func (s *DisplayTestSuite) TestShort() {
	testCases := []struct {
		name  string
		event events.Event
		want  string
	}{
		{
			name:  "attack",
			event: events.Attack{Attacker: s.gorm, Target: s.brynn},
			want:  "Gorm attacks Brynn",
		},
		{
			name:  "create",
			event: events.CreateGauge{Location: events.HP(s.gorm), Gauge: gauge.HealthBar()},
			want:  "Created Gorm's HP",
		},
		{
			name:  "drain gauge decreases",
			event: events.ProgressGauge{Location: events.HP(s.brynn), Amount: 1},
			want:  "Brynn's HP decreases by 1",
		},
		{
			name:  "fill gauge increases",
			event: events.ProgressGauge{Location: events.XP(s.gorm), Amount: 1},
			want:  "Gorm's XP increases by 1",
		},
		{
			name:  "unknown participant falls back to id",
			event: events.ProgressGauge{Location: events.HP(entities.NewParticipantID("ghost")), Amount: 2},
			want:  "ghost's HP changes by 2",
		},
		{
			name:  "announce",
			event: events.Announce{Text: "Gorm rallies the team"},
			want:  "Gorm rallies the team",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, s.renderer.Short(s.world, tc.event))
		})
	}
}

func (s *DisplayTestSuite) TestLong() {
	tree := events.Completed{
		Event: events.Attack{Attacker: s.gorm, Target: s.brynn},
		Outcomes: []events.Completed{
			{
				Event:        events.ProgressGauge{Location: events.HP(s.brynn), Amount: 1},
				PreResponses: []events.Completed{{Event: events.Announce{Text: "Brynn braces"}}},
			},
		},
		PostResponses: []events.Completed{
			{Event: events.ProgressGauge{Location: events.XP(s.gorm), Amount: 1}},
		},
	}

	want := strings.Join([]string{
		"Gorm attacks Brynn",
		"- Brynn's HP decreases by 1 => [.###]",
		"- - Brynn braces",
		"- Gorm's XP increases by 1 => [#...]",
	}, "\n")
	s.Equal(want, s.renderer.Long(s.world, tree))
}

func (s *DisplayTestSuite) TestBar() {
	g := gauge.New(5, "Stamina", entities.ColourGreen, gauge.StyleFill)
	g.Increment(2)
	s.Equal("[##...]", s.renderer.Bar(g))

	coloured := display.New(&display.Config{Colour: true}).Bar(g)
	s.Equal(5, strings.Count(coloured, "o"))
	s.Contains(coloured, "\x1b[")
}

func (s *DisplayTestSuite) TestTeams() {
	gorm, err := s.world.Participant(s.gorm)
	s.Require().NoError(err)
	brynn, err := s.world.Participant(s.brynn)
	s.Require().NoError(err)

	out := s.renderer.Teams(
		display.TeamView{Name: "Ravens", Colour: entities.ColourRed, Members: []display.MemberView{
			{Seat: roster.Top, Participant: gorm},
		}},
		display.TeamView{Name: "Moles", Colour: entities.ColourGreen, Members: []display.MemberView{
			{Seat: roster.Charm, Participant: brynn},
		}},
	)

	s.Equal(strings.Join([]string{
		"Ravens",
		"  top     Gorm HP [####] XP [#...]",
		"Moles",
		"  charm   Brynn HP [.###]",
	}, "\n"), out)
}
