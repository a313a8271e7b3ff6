// Package versioned stores every saved revision of an entity and loads the
// newest one back by typed id.
package versioned

//go:generate mockgen -destination=mock/mock.go -package=versionedmock github.com/KirkDiggler/delver-sim/internal/repositories/versioned Backend,Store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

// Entity is anything a Repository can store
type Entity interface {
	// EntityID is the raw id the entity is stored under
	EntityID() string
	// Table groups entities of one kind
	Table() string
}

// Backend appends and reads raw revisions
type Backend interface {
	// Append stores data as the next revision and returns its version, starting at 1
	Append(ctx context.Context, table, id string, data []byte) (int, error)
	// Latest returns the newest revision and its version, or NotFound
	Latest(ctx context.Context, table, id string) ([]byte, int, error)
	// Versions counts stored revisions, zero when the id was never saved
	Versions(ctx context.Context, table, id string) (int, error)
}

// Store is the typed save and load capability for one entity kind. K is the
// kind of the ids it is addressed by and V the stored value.
type Store[K any, V any] interface {
	Save(ctx context.Context, v *V) (int, error)
	LoadLatest(ctx context.Context, id entities.ID[K]) (*V, error)
	Versions(ctx context.Context, id entities.ID[K]) (int, error)
}

type validator interface {
	Validate() error
}

// Config configures a Repository
type Config struct {
	Backend Backend
}

// Validate validates the config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Backend == nil {
		return errors.InvalidArgument("backend cannot be nil")
	}
	return nil
}

// Repository implements Store on top of a Backend using JSON encoding
type Repository[K any, V any] struct {
	backend Backend
	table   string
	idOf    func(*V) string
}

// New creates a repository for values of type V addressed by ids of kind K.
// P is inferred as *V.
func New[K any, V any, P interface {
	*V
	Entity
}](cfg *Config) (*Repository[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Repository[K, V]{
		backend: cfg.Backend,
		table:   P(new(V)).Table(),
		idOf:    func(v *V) string { return P(v).EntityID() },
	}, nil
}

// Table returns the table this repository writes to
func (r *Repository[K, V]) Table() string {
	return r.table
}

// Save appends v as a new revision and returns its version
func (r *Repository[K, V]) Save(ctx context.Context, v *V) (int, error) {
	if v == nil {
		return 0, errors.InvalidArgumentf("%s: entity cannot be nil", r.table)
	}
	id := r.idOf(v)
	if id == "" {
		return 0, errors.InvalidArgumentf("%s: entity id cannot be empty", r.table)
	}
	if val, ok := any(v).(validator); ok {
		if err := val.Validate(); err != nil {
			return 0, err
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to marshal %s %s", r.table, id)
	}

	version, err := r.backend.Append(ctx, r.table, id, data)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to save %s %s", r.table, id)
	}

	slog.DebugContext(ctx, "Saved entity version",
		"table", r.table,
		"id", id,
		"version", version)

	return version, nil
}

// LoadLatest returns the newest revision of id
func (r *Repository[K, V]) LoadLatest(ctx context.Context, id entities.ID[K]) (*V, error) {
	if id.IsZero() {
		return nil, errors.InvalidArgumentf("%s: id cannot be empty", r.table)
	}

	data, _, err := r.backend.Latest(ctx, r.table, id.String())
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("%s %s not found", r.table, id).WithMeta("id", id.String())
		}
		return nil, errors.Wrapf(err, "failed to load %s %s", r.table, id)
	}

	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal "+r.table+" "+id.String())
	}
	return &v, nil
}

// Versions counts the stored revisions of id
func (r *Repository[K, V]) Versions(ctx context.Context, id entities.ID[K]) (int, error) {
	if id.IsZero() {
		return 0, errors.InvalidArgumentf("%s: id cannot be empty", r.table)
	}
	n, err := r.backend.Versions(ctx, r.table, id.String())
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count %s %s versions", r.table, id)
	}
	return n, nil
}
