package events

import (
	"encoding/json"

	"github.com/KirkDiggler/delver-sim/internal/errors"
)

// envelope is the stored form of an event
type envelope struct {
	Kind Kind            `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Marshal encodes an event with its kind tag
func Marshal(ev Event) ([]byte, error) {
	if ev == nil {
		return nil, errors.InvalidArgument("event is required")
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s event", ev.Kind())
	}
	out, err := json.Marshal(envelope{Kind: ev.Kind(), Data: data})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event envelope")
	}
	return out, nil
}

// Unmarshal decodes an event written by Marshal
func Unmarshal(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal event envelope")
	}

	switch env.Kind {
	case KindAttack:
		return decode[Attack](env)
	case KindCreateGauge:
		return decode[CreateGauge](env)
	case KindProgressGauge:
		return decode[ProgressGauge](env)
	case KindAnnounce:
		return decode[Announce](env)
	default:
		return nil, errors.DataLossf("unknown event kind %q", env.Kind)
	}
}

func decode[T Event](env envelope) (Event, error) {
	var ev T
	if err := json.Unmarshal(env.Data, &ev); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal "+string(env.Kind)+" event")
	}
	return ev, nil
}

type completedJSON struct {
	Event         json.RawMessage `json:"event"`
	PreResponses  []Completed     `json:"pre,omitempty"`
	Outcomes      []Completed     `json:"outcomes,omitempty"`
	PostResponses []Completed     `json:"post,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (c Completed) MarshalJSON() ([]byte, error) {
	ev, err := Marshal(c.Event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(completedJSON{
		Event:         ev,
		PreResponses:  c.PreResponses,
		Outcomes:      c.Outcomes,
		PostResponses: c.PostResponses,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Completed) UnmarshalJSON(data []byte) error {
	var raw completedJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal completed event")
	}
	ev, err := Unmarshal(raw.Event)
	if err != nil {
		return err
	}
	*c = Completed{
		Event:         ev,
		PreResponses:  raw.PreResponses,
		Outcomes:      raw.Outcomes,
		PostResponses: raw.PostResponses,
	}
	return nil
}
