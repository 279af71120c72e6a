package notation

import (
	"fmt"

	errs "github.com/lgbarn/kiaak-go/internal/errors"
)

type shapeFunc func(string) (Move, string, error)

// shapes lists the move shapes in the order they are tried. Several shapes
// share a prefix, so a longer shape must come before every shape that is a
// prefix of it; otherwise the shorter one would match and leave a tail.
var shapes = [...]struct {
	kind  Kind
	parse shapeFunc
}{
	{Parachute, parseParachute},
	{TamStepDuringFormer, parseTamStepDuringFormer},
	{TamStepDuringLatter, parseTamStepDuringLatter},
	{TamStepUnspecified, parseTamStepUnspecified},
	{TamNoStep, parseTamNoStep},
	{StepAndBridgeStickAndWaterStick, parseStepAndBridgeStickAndWaterStick},
	{StepAndBridgeStick, parseStepAndBridgeStick},
	{StepAndWaterStick, parseStepAndWaterStick},
	{StepAndNoStick, parseStepAndNoStick},
	{NoStepAndWaterStick, parseNoStepAndWaterStick},
	{NoStepAndNoStick, parseNoStepAndNoStick},
}

// ShapeOrder returns the kinds in the order Parse tries them.
func ShapeOrder() []Kind {
	order := make([]Kind, len(shapes))
	for i, sh := range shapes {
		order[i] = sh.kind
	}
	return order
}

// Parse decodes one move from the start of input and returns it with the
// unconsumed remainder. A caller decoding a sequence of moves feeds the
// remainder to the next call.
//
// The first shape that matches wins. When none does, the returned error wraps
// ErrNoMatchingShape together with the failure of the shape that got
// furthest into the input, as a *errors.ParseError.
func Parse(input string) (Move, string, error) {
	var deepest *decodeError

	for _, sh := range shapes {
		m, rest, err := sh.parse(input)
		if err == nil {
			return m, rest, nil
		}
		de, ok := err.(*decodeError)
		if !ok {
			return Move{}, input, err
		}
		// Ties go to the earlier, more specific shape.
		if deepest == nil || len(de.rest) < len(deepest.rest) {
			deepest = de
		}
	}

	return Move{}, input, fmt.Errorf("%w: %w", errs.ErrNoMatchingShape, toParseError(input, deepest))
}

// ParseExact decodes input as exactly one move. Trailing text is an
// ErrUnexpectedSymbol.
func ParseExact(input string) (Move, error) {
	m, rest, err := Parse(input)
	if err != nil {
		return Move{}, err
	}
	if rest != "" {
		return Move{}, toParseError(input, unexpected(rest, "end of move"))
	}
	return m, nil
}
