// Package game runs a single game: it seats teams, drives turns through the
// event engine and stores a snapshot after every change.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/delver-sim/internal/orchestrators/game Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/delver-sim/internal/display"
	"github.com/KirkDiggler/delver-sim/internal/engine"
	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/gauge"
	"github.com/KirkDiggler/delver-sim/internal/modifiers"
	"github.com/KirkDiggler/delver-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/delver-sim/internal/pkg/rng"
	"github.com/KirkDiggler/delver-sim/internal/repositories/versioned"
	"github.com/KirkDiggler/delver-sim/internal/roster"
	"github.com/KirkDiggler/delver-sim/internal/turnorder"
	"github.com/KirkDiggler/delver-sim/internal/world"
)

// EventResolved is the toolkit event type published for every resolved node
const EventResolved = "delver.event.resolved"

// Keys set on the context of published toolkit events
const (
	ContextKeyGameID = "game_id"
	ContextKeyTurn   = "turn"
	ContextKeyKind   = "kind"
	ContextKeyDepth  = "depth"
)

const metaSaveFailed = "save_failed"

// Service defines the operations a host can run against a game
type Service interface {
	// AddTeam brings a stored team into the game and seats its roster
	AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error)

	// AddParticipant seats a stored character on a team already in the game
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error)

	// Turn resolves one attacker/defender exchange
	Turn(ctx context.Context, input *TurnInput) (*TurnOutput, error)

	// Display renders two teams side by side
	Display(ctx context.Context, input *DisplayInput) (*DisplayOutput, error)

	// LatestEvents returns the trees resolved by the most recent turn
	LatestEvents(ctx context.Context, input *LatestEventsInput) (*LatestEventsOutput, error)

	// Snapshot captures the current game state
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)

	// Save stores the current game state again. Saving is idempotent so
	// hosts may retry it after a failed turn save.
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
}

// Hooks supplies the events a participant's modifiers emit outside of
// event resolution
type Hooks interface {
	OnEnter(p *world.Participant) []events.Event
	StartTurn(p *world.Participant) []events.Event
}

// Config holds the dependencies for a game
type Config struct {
	Characters versioned.Store[entities.Character, entities.Character]
	Teams      versioned.Store[entities.Team, entities.Team]
	Games      versioned.Store[entities.GameKind, Snapshot]
	Engine     engine.Engine

	// IDGenerator names new games. Restored games keep their id.
	IDGenerator idgen.Generator

	// Seed seeds the game's random stream. Restored games use the stored stream.
	Seed uint64

	// Hooks defaults to the modifier catalogue
	Hooks Hooks

	// Renderer defaults to a plain text renderer
	Renderer *display.Renderer

	// Bus receives every resolved event when set
	Bus rpgevents.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Characters == nil {
		vb.RequiredField("Characters")
	}
	if c.Teams == nil {
		vb.RequiredField("Teams")
	}
	if c.Games == nil {
		vb.RequiredField("Games")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type team struct {
	id      entities.GameTeamID
	sheetID entities.TeamID
	name    string
	colour  entities.Colour
	roster  *roster.Roster
}

type orchestrator struct {
	characters versioned.Store[entities.Character, entities.Character]
	teamSheets versioned.Store[entities.Team, entities.Team]
	games      versioned.Store[entities.GameKind, Snapshot]
	engine     engine.Engine
	hooks      Hooks
	renderer   *display.Renderer
	bus        rpgevents.EventBus

	// mu serialises operations; a turn runs as one unit
	mu          sync.Mutex
	gameID      entities.GameID
	turn        int
	order       *turnorder.Order
	teams       []*team
	world       *world.World
	latest      []events.Completed
	rng         *rng.Stream
	aborted     bool
	abortReason string
}

func newOrchestrator(cfg *Config) (*orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		characters: cfg.Characters,
		teamSheets: cfg.Teams,
		games:      cfg.Games,
		engine:     cfg.Engine,
		hooks:      cfg.Hooks,
		renderer:   cfg.Renderer,
		bus:        cfg.Bus,
		order:      turnorder.New(),
		world:      world.New(),
	}
	if o.hooks == nil {
		o.hooks = modifiers.Catalogue{}
	}
	if o.renderer == nil {
		o.renderer = display.New(nil)
	}
	return o, nil
}

// New starts an empty game
func New(cfg *Config) (Service, error) {
	o, err := newOrchestrator(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.IDGenerator == nil {
		return nil, errors.InvalidArgument("IDGenerator is required for a new game")
	}

	o.gameID = idgen.New[entities.GameKind](cfg.IDGenerator)
	o.rng = rng.New(cfg.Seed)

	slog.Info("Game created", "game_id", o.gameID, "seed", cfg.Seed)
	return o, nil
}

// Restore rebuilds a game from a snapshot. Turns run on the restored game
// continue exactly as they would have on the game that produced it.
func Restore(cfg *Config, snap *Snapshot) (Service, error) {
	if snap == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}
	o, err := newOrchestrator(cfg)
	if err != nil {
		return nil, err
	}
	if err := o.restoreState(snap); err != nil {
		return nil, errors.Wrap(err, "failed to restore game").WithMeta("game_id", snap.GameID.String())
	}
	return o, nil
}

// Load restores the latest stored snapshot of a game
func Load(ctx context.Context, cfg *Config, id entities.GameID) (Service, error) {
	if cfg == nil || cfg.Games == nil {
		return nil, errors.InvalidArgument("games store is required")
	}
	snap, err := cfg.Games.LoadLatest(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", id)
	}
	return Restore(cfg, snap)
}

// AddTeam brings a stored team into the game, puts it at the front of the
// turn order and seats its roster in listed order
func (o *orchestrator) AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := entities.RequireID("team_id", input.TeamID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkActive(); err != nil {
		return nil, err
	}

	sheet, err := o.teamSheets.LoadLatest(ctx, input.TeamID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load team %s", input.TeamID)
	}

	if len(sheet.Roster) > roster.SeatCount {
		return nil, errors.Wrapf(roster.ErrRosterFull, "team %s lists %d characters", sheet.Name, len(sheet.Roster)).
			WithMeta("team_id", sheet.ID.String())
	}

	// every member must be able to join before the team touches the game
	members := make([]*entities.Character, 0, len(sheet.Roster))
	for _, charID := range sheet.Roster {
		char, err := o.loadJoiner(ctx, charID)
		if err != nil {
			return nil, errors.Wrapf(err, "team %s cannot join", sheet.Name).
				WithMeta("team_id", sheet.ID.String())
		}
		members = append(members, char)
	}

	t := &team{
		id:      entities.NewGameTeamID(fmt.Sprintf("%s:t%d", o.gameID, len(o.teams)+1)),
		sheetID: sheet.ID,
		name:    sheet.Name,
		colour:  sheet.Colour,
		roster:  roster.New(),
	}
	if err := o.order.AddFront(t.id); err != nil {
		return nil, err
	}
	o.teams = append(o.teams, t)

	output := &AddTeamOutput{GameTeamID: t.id}
	for _, char := range members {
		added, err := o.seat(ctx, char, t)
		if err != nil {
			return nil, err
		}
		output.Participants = append(output.Participants, added.ParticipantID)
		output.Events = append(output.Events, added.Events...)
	}

	slog.InfoContext(ctx, "Team joined game",
		"game_id", o.gameID,
		"team_id", t.id,
		"sheet_id", sheet.ID,
		"participants", len(output.Participants),
	)

	if _, err := o.save(ctx); err != nil {
		return nil, err
	}
	return output, nil
}

// AddParticipant seats a stored character on a team in the game
func (o *orchestrator) AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.CharacterID.IsZero() {
		vb.RequiredField("character_id")
	}
	if input.GameTeamID.IsZero() {
		vb.RequiredField("game_team_id")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkActive(); err != nil {
		return nil, err
	}

	t, err := o.team(input.GameTeamID)
	if err != nil {
		return nil, err
	}

	char, err := o.loadJoiner(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	output, err := o.seat(ctx, char, t)
	if err != nil {
		return nil, err
	}

	if _, err := o.save(ctx); err != nil {
		return nil, err
	}
	return output, nil
}

// loadJoiner loads a character and checks it can take part in a game
func (o *orchestrator) loadJoiner(ctx context.Context, charID entities.CharacterID) (*entities.Character, error) {
	char, err := o.characters.LoadLatest(ctx, charID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load character %s", charID)
	}
	if err := modifiers.Validate(char.Modifiers); err != nil {
		return nil, errors.Wrapf(err, "character %s cannot join", charID).
			WithMeta("character_id", charID.String())
	}
	return char, nil
}

// seat places the character on the team, then resolves its health bar and
// the entry events of its modifiers
func (o *orchestrator) seat(ctx context.Context, char *entities.Character, t *team) (*AddParticipantOutput, error) {
	p := &world.Participant{
		ID:          entities.NewParticipantID(fmt.Sprintf("%s:p%d", o.gameID, o.world.Len()+1)),
		CharacterID: char.ID,
		TeamID:      t.id,
		Name:        char.Name,
		Modifiers:   append([]entities.ModifierKind(nil), char.Modifiers...),
	}

	seat, err := t.roster.Add(p.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seat %s", char.Name).
			WithMeta("team_id", t.id.String())
	}
	if err := o.world.Add(p); err != nil {
		return nil, err
	}

	entry := append([]events.Event{
		events.CreateGauge{Location: events.HP(p.ID), Gauge: gauge.HealthBar()},
	}, o.hooks.OnEnter(p)...)

	resolved, err := o.engine.CompleteAll(ctx, &engine.CompleteAllInput{World: o.world, Events: entry})
	if err != nil {
		return nil, o.abort(ctx, err)
	}

	slog.DebugContext(ctx, "Participant seated",
		"game_id", o.gameID,
		"participant_id", p.ID,
		"character_id", char.ID,
		"team_id", t.id,
		"seat", seat,
	)

	return &AddParticipantOutput{
		ParticipantID: p.ID,
		Seat:          seat,
		Events:        resolved.Completed,
	}, nil
}

// Turn rotates the turn order, picks the attacker and defender and resolves
// the attack. Random draws always happen in the same order: the defending
// team first, then the defender's seat.
func (o *orchestrator) Turn(ctx context.Context, _ *TurnInput) (*TurnOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkActive(); err != nil {
		return nil, err
	}
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	attackerTeamID, defenderTeamID, err := o.order.Advance(o.rng)
	if err != nil {
		return nil, err
	}
	attackerTeam, err := o.team(attackerTeamID)
	if err != nil {
		return nil, o.abort(ctx, err)
	}
	defenderTeam, err := o.team(defenderTeamID)
	if err != nil {
		return nil, o.abort(ctx, err)
	}

	o.latest = nil

	attackerSeat, ok := attackerTeam.roster.NextFilled()
	if !ok {
		return nil, o.abort(ctx, emptyRoster(attackerTeam))
	}
	defenderSeat, ok := defenderTeam.roster.RandomFilled(o.rng)
	if !ok {
		return nil, o.abort(ctx, emptyRoster(defenderTeam))
	}

	attacker, err := o.world.Participant(attackerSeat.ParticipantID)
	if err != nil {
		return nil, o.abort(ctx, err)
	}

	start, err := o.engine.CompleteAll(ctx, &engine.CompleteAllInput{
		World:  o.world,
		Events: o.hooks.StartTurn(attacker),
	})
	if err != nil {
		return nil, o.abort(ctx, err)
	}
	o.latest = append(o.latest, start.Completed...)

	attack, err := o.engine.Complete(ctx, &engine.CompleteInput{
		World: o.world,
		Event: events.Attack{Attacker: attackerSeat.ParticipantID, Target: defenderSeat.ParticipantID},
	})
	if err != nil {
		return nil, o.abort(ctx, err)
	}
	o.latest = append(o.latest, attack.Completed)
	o.turn++

	o.publish(ctx, attackerSeat.ParticipantID, defenderSeat.ParticipantID)

	slog.InfoContext(ctx, "Turn resolved",
		"game_id", o.gameID,
		"turn", o.turn,
		"attacker", attackerSeat.ParticipantID,
		"defender", defenderSeat.ParticipantID,
		"attacker_seat", attackerSeat.Seat,
		"defender_seat", defenderSeat.Seat,
	)

	output := &TurnOutput{
		Turn:         o.turn,
		AttackerTeam: attackerTeamID,
		DefenderTeam: defenderTeamID,
		Attacker:     attackerSeat.ParticipantID,
		Defender:     defenderSeat.ParticipantID,
		Events:       o.latest,
	}

	if _, err := o.save(ctx); err != nil {
		return nil, err
	}
	return output, nil
}

// Display renders both teams with their seated participants and gauges
func (o *orchestrator) Display(_ context.Context, input *DisplayInput) (*DisplayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	var views []display.TeamView
	for _, id := range []entities.GameTeamID{input.TeamA, input.TeamB} {
		t, err := o.team(id)
		if err != nil {
			return nil, err
		}
		view, err := o.teamView(t)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return &DisplayOutput{Text: o.renderer.Teams(views...)}, nil
}

// LatestEvents returns the trees of the most recent turn and their long form
func (o *orchestrator) LatestEvents(_ context.Context, _ *LatestEventsInput) (*LatestEventsOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	lines := make([]string, 0, len(o.latest))
	for _, c := range o.latest {
		lines = append(lines, o.renderer.Long(o.world, c))
	}

	return &LatestEventsOutput{
		Events: o.latest,
		Text:   strings.Join(lines, "\n"),
	}, nil
}

// Snapshot captures the current game state
func (o *orchestrator) Snapshot(_ context.Context, _ *SnapshotInput) (*SnapshotOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap, err := o.snapshot()
	if err != nil {
		return nil, err
	}
	return &SnapshotOutput{Snapshot: snap}, nil
}

// Save stores the current game state
func (o *orchestrator) Save(ctx context.Context, _ *SaveInput) (*SaveOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	version, err := o.save(ctx)
	if err != nil {
		return nil, err
	}
	return &SaveOutput{Version: version}, nil
}

func (o *orchestrator) save(ctx context.Context) (int, error) {
	snap, err := o.snapshot()
	if err != nil {
		return 0, err
	}
	version, err := o.games.Save(ctx, snap)
	if err != nil {
		return 0, errors.Wrap(err, "failed to save game snapshot").
			WithMeta("game_id", o.gameID.String()).
			WithMeta("turn", o.turn).
			WithMeta(metaSaveFailed, true)
	}
	return version, nil
}

// abort marks the game as unplayable. Effects applied before the failure
// are kept and stored with the aborted flag.
func (o *orchestrator) abort(ctx context.Context, cause error) error {
	o.aborted = true
	o.abortReason = cause.Error()

	slog.ErrorContext(ctx, "Game aborted",
		"game_id", o.gameID,
		"turn", o.turn,
		"error", cause,
	)

	if _, err := o.save(ctx); err != nil {
		slog.WarnContext(ctx, "Failed to store aborted game",
			"game_id", o.gameID,
			"error", err,
		)
	}
	return errors.Wrap(cause, "game aborted").WithMeta("game_id", o.gameID.String())
}

func (o *orchestrator) checkActive() error {
	if o.aborted {
		return errors.FailedPrecondition("game is aborted").
			WithMeta("game_id", o.gameID.String()).
			WithMeta("reason", o.abortReason)
	}
	return nil
}

// checkReady refuses a turn before any state changes when the game has not
// been set up for play
func (o *orchestrator) checkReady() error {
	if o.order.Len() < turnorder.MinTeams {
		return errors.FailedPreconditionf("a turn needs at least %d teams, game has %d",
			turnorder.MinTeams, o.order.Len())
	}
	for _, t := range o.teams {
		if t.roster.Len() == 0 {
			return emptyRoster(t)
		}
	}
	return nil
}

func (o *orchestrator) team(id entities.GameTeamID) (*team, error) {
	for _, t := range o.teams {
		if t.id == id {
			return t, nil
		}
	}
	return nil, errors.NotFoundf("team %s is not in the game", id).WithMeta("team_id", id.String())
}

func (o *orchestrator) teamView(t *team) (display.TeamView, error) {
	view := display.TeamView{Name: t.name, Colour: t.colour}
	for _, occ := range t.roster.Occupants() {
		p, err := o.world.Participant(occ.ParticipantID)
		if err != nil {
			return display.TeamView{}, err
		}
		view.Members = append(view.Members, display.MemberView{Seat: occ.Seat, Participant: p})
	}
	return view, nil
}

// publish sends every node of the latest trees to the bus. Observers cannot
// change the outcome, so a failing observer is logged and play continues.
func (o *orchestrator) publish(ctx context.Context, attackerID, defenderID entities.ParticipantID) {
	if o.bus == nil {
		return
	}
	attacker, err := o.world.Participant(attackerID)
	if err != nil {
		return
	}
	defender, err := o.world.Participant(defenderID)
	if err != nil {
		return
	}

	for _, tree := range o.latest {
		err := tree.Walk(func(depth int, node events.Completed) error {
			ev := rpgevents.NewGameEvent(EventResolved, attacker, defender)
			ev.Context().Set(ContextKeyGameID, o.gameID.String())
			ev.Context().Set(ContextKeyTurn, o.turn)
			ev.Context().Set(ContextKeyKind, string(node.Event.Kind()))
			ev.Context().Set(ContextKeyDepth, depth)
			return o.bus.Publish(ctx, ev)
		})
		if err != nil {
			slog.WarnContext(ctx, "Failed to publish resolved events",
				"game_id", o.gameID,
				"turn", o.turn,
				"error", err,
			)
			return
		}
	}
}

// IsSaveError reports whether err came from storing a snapshot. The game
// state is intact after such an error and Save may be retried.
func IsSaveError(err error) bool {
	failed, _ := errors.GetMeta(err)[metaSaveFailed].(bool)
	return failed
}

func emptyRoster(t *team) error {
	return errors.FailedPreconditionf("team %s has no seated participants", t.name).
		WithMeta("team_id", t.id.String())
}
