// Package notation decodes the logogram move notation of cetkaik records.
package notation

import (
	"encoding/json"
	"strings"

	"github.com/lgbarn/kiaak-go/internal/cetkaik"
)

// Kind identifies which move shape a Move was decoded from. The zero value
// is InvalidKind, carried by the Move a failed decode returns.
type Kind int

const (
	InvalidKind Kind = iota
	NoStepAndNoStick
	NoStepAndWaterStick
	StepAndNoStick
	StepAndWaterStick
	StepAndBridgeStick
	StepAndBridgeStickAndWaterStick
	TamNoStep
	TamStepUnspecified
	TamStepDuringFormer
	TamStepDuringLatter
	Parachute
	NumKinds
)

var kindNames = [...]string{
	InvalidKind:                     "Invalid",
	NoStepAndNoStick:                "NoStepAndNoStick",
	NoStepAndWaterStick:             "NoStepAndWaterStick",
	StepAndNoStick:                  "StepAndNoStick",
	StepAndWaterStick:               "StepAndWaterStick",
	StepAndBridgeStick:              "StepAndBridgeStick",
	StepAndBridgeStickAndWaterStick: "StepAndBridgeStickAndWaterStick",
	TamNoStep:                       "TamNoStep",
	TamStepUnspecified:              "TamStepUnspecified",
	TamStepDuringFormer:             "TamStepDuringFormer",
	TamStepDuringLatter:             "TamStepDuringLatter",
	Parachute:                       "Parachute",
}

// String returns the name of a move kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Valid reports whether k is a decodable move kind.
func (k Kind) Valid() bool {
	return k > InvalidKind && k < NumKinds
}

// MarshalText encodes a kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsTam returns true for the coordinator move kinds.
func (k Kind) IsTam() bool {
	return k >= TamNoStep && k <= TamStepDuringLatter
}

// HasStep returns true if moves of this kind always state an intermediate square.
func (k Kind) HasStep() bool {
	switch k {
	case StepAndNoStick, StepAndWaterStick, StepAndBridgeStick, StepAndBridgeStickAndWaterStick,
		TamStepUnspecified, TamStepDuringFormer, TamStepDuringLatter:
		return true
	}
	return false
}

// StickThrow is the outcome of a stick throw deciding a hazard crossing.
// Size is nil when the record does not state the numeral; Successful is
// always known.
type StickThrow struct {
	Size       *int `json:"size"`
	Successful bool `json:"successful"`
}

// Move is one decoded move. Which fields are meaningful depends on Kind:
//
//   - Ordinary moves use Src, Prof, Dest and, for step kinds, Step; Water and
//     Bridge are set when the kind carries them.
//   - Tam moves use Src, Step (step kinds only), FirstDest and Dest, where
//     Dest is the second destination. Prof is nil.
//   - Parachute moves use Color, Prof and Dest.
//
// A nil Prof on an ordinary move means the record marks the piece as unknown.
// A nil FirstDest on a Tam move means the first destination is not stated.
type Move struct {
	Kind      Kind
	Src       cetkaik.Coord
	Prof      *cetkaik.Profession
	Step      *cetkaik.Coord
	FirstDest *cetkaik.Coord
	Dest      cetkaik.Coord
	Color     cetkaik.Color
	Water     *StickThrow
	Bridge    *StickThrow
}

// IsWildcard returns true if an ordinary move does not know its piece.
func (m Move) IsWildcard() bool {
	return m.Prof == nil && !m.Kind.IsTam()
}

// String renders the move in canonical notation. Decoding the result yields
// an equal move, except that a TamNoStep written as "[或]" is rendered
// without the bracket. A move of InvalidKind renders as "".
func (m Move) String() string {
	if !m.Kind.Valid() {
		return ""
	}
	var sb strings.Builder

	switch {
	case m.Kind == Parachute:
		sb.WriteString(m.Color.Logogram())
		sb.WriteString(professionLogogram(m.Prof))
		sb.WriteString(m.Dest.String())
		return sb.String()

	case m.Kind.IsTam():
		sb.WriteString(m.Src.String())
		sb.WriteRune(TamMarker)
		switch m.Kind {
		case TamNoStep:
			if m.FirstDest != nil {
				writeBracket(&sb, m.FirstDest)
			}
		case TamStepUnspecified:
			writeCoord(&sb, m.Step)
		case TamStepDuringFormer:
			writeCoord(&sb, m.Step)
			writeBracket(&sb, m.FirstDest)
		case TamStepDuringLatter:
			writeBracket(&sb, m.FirstDest)
			writeCoord(&sb, m.Step)
		}
		sb.WriteString(m.Dest.String())
		return sb.String()
	}

	sb.WriteString(m.Src.String())
	sb.WriteString(professionLogogram(m.Prof))
	if m.Kind.HasStep() {
		writeCoord(&sb, m.Step)
	}
	sb.WriteString(m.Dest.String())

	switch m.Kind {
	case NoStepAndNoStick, StepAndNoStick:
		sb.WriteString(NoStickMarker)
	case NoStepAndWaterStick, StepAndWaterStick:
		writeWater(&sb, m.Water)
	case StepAndBridgeStick:
		writeBridge(&sb, m.Bridge)
		if m.Bridge != nil && !m.Bridge.Successful {
			sb.WriteString(FailureMarker)
		}
	case StepAndBridgeStickAndWaterStick:
		writeBridge(&sb, m.Bridge)
		writeWater(&sb, m.Water)
	}
	return sb.String()
}

func professionLogogram(p *cetkaik.Profession) string {
	if p == nil {
		return string(Wildcard)
	}
	return p.Logogram()
}

func writeCoord(sb *strings.Builder, c *cetkaik.Coord) {
	if c != nil {
		sb.WriteString(c.String())
	}
}

func writeBracket(sb *strings.Builder, c *cetkaik.Coord) {
	sb.WriteRune(BracketOpen)
	if c == nil {
		sb.WriteRune(Unspecified)
	} else {
		sb.WriteString(c.String())
	}
	sb.WriteRune(BracketClose)
}

func writeSize(sb *strings.Builder, n *int) {
	if n == nil || *n < 0 || *n >= len(numerals) {
		sb.WriteRune(Unspecified)
		return
	}
	sb.WriteRune(numerals[*n])
}

func writeWater(sb *strings.Builder, s *StickThrow) {
	sb.WriteRune(WaterMarker)
	if s == nil {
		sb.WriteRune(Unspecified)
		return
	}
	writeSize(sb, s.Size)
	// Sizes 3 to 5 imply success and never carry the marker.
	if !s.Successful {
		sb.WriteString(FailureMarker)
	}
}

func writeBridge(sb *strings.Builder, s *StickThrow) {
	sb.WriteRune(BridgeMarker)
	if s == nil {
		sb.WriteRune(Unspecified)
		return
	}
	writeSize(sb, s.Size)
}

// jsonMove is the wire form of a Move.
type jsonMove struct {
	Kind      Kind        `json:"kind"`
	Notation  string      `json:"notation"`
	Src       string      `json:"src,omitempty"`
	Prof      *string     `json:"prof,omitempty"`
	Step      string      `json:"step,omitempty"`
	FirstDest *string     `json:"firstDest,omitempty"`
	Dest      string      `json:"dest"`
	Color     string      `json:"color,omitempty"`
	Water     *StickThrow `json:"water,omitempty"`
	Bridge    *StickThrow `json:"bridge,omitempty"`
	Wildcard  bool        `json:"wildcard,omitempty"`
}

// MarshalJSON encodes squares and pieces by their record names.
func (m Move) MarshalJSON() ([]byte, error) {
	jm := jsonMove{
		Kind:     m.Kind,
		Notation: m.String(),
		Dest:     m.Dest.String(),
		Water:    m.Water,
		Bridge:   m.Bridge,
		Wildcard: m.IsWildcard(),
	}
	if m.Kind != Parachute {
		jm.Src = m.Src.String()
	} else {
		jm.Color = m.Color.String()
	}
	if m.Prof != nil {
		name := m.Prof.String()
		jm.Prof = &name
	}
	if m.Step != nil {
		jm.Step = m.Step.String()
	}
	if m.Kind.IsTam() && m.Kind != TamStepUnspecified {
		// "" marks an unstated first destination.
		var first string
		if m.FirstDest != nil {
			first = m.FirstDest.String()
		}
		jm.FirstDest = &first
	}
	return json.Marshal(jm)
}
