package notation

import "github.com/lgbarn/kiaak-go/internal/cetkaik"

// Each shape decoder is a straight run of sub-decodes. The first failure
// aborts the shape and hands back the untouched input.

// ordinaryHead reads the source square, piece and, if withStep, the step
// square and destination shared by every ordinary move.
func ordinaryHead(s string, withStep bool) (Move, string, error) {
	var m Move
	src, rest, err := parseSquare(s)
	if err != nil {
		return m, s, err
	}
	prof, rest, err := parseProfessionOrWildcard(rest)
	if err != nil {
		return m, s, err
	}
	m.Src = src
	m.Prof = prof

	if withStep {
		step, after, err := parseSquare(rest)
		if err != nil {
			return m, s, err
		}
		m.Step = &step
		rest = after
	}

	dest, rest, err := parseSquare(rest)
	if err != nil {
		return m, s, err
	}
	m.Dest = dest
	return m, rest, nil
}

func parseNoStepAndNoStick(s string) (Move, string, error) {
	m, rest, err := ordinaryHead(s, false)
	if err != nil {
		return Move{}, s, err
	}
	rest, err = expectTag(rest, NoStickMarker)
	if err != nil {
		return Move{}, s, err
	}
	m.Kind = NoStepAndNoStick
	return m, rest, nil
}

func parseNoStepAndWaterStick(s string) (Move, string, error) {
	m, rest, err := ordinaryHead(s, false)
	if err != nil {
		return Move{}, s, err
	}
	water, rest, err := parseWaterStick(rest)
	if err != nil {
		return Move{}, s, err
	}
	m.Kind = NoStepAndWaterStick
	m.Water = &water
	return m, rest, nil
}

func parseStepAndNoStick(s string) (Move, string, error) {
	m, rest, err := ordinaryHead(s, true)
	if err != nil {
		return Move{}, s, err
	}
	rest, err = expectTag(rest, NoStickMarker)
	if err != nil {
		return Move{}, s, err
	}
	m.Kind = StepAndNoStick
	return m, rest, nil
}

func parseStepAndWaterStick(s string) (Move, string, error) {
	m, rest, err := ordinaryHead(s, true)
	if err != nil {
		return Move{}, s, err
	}
	water, rest, err := parseWaterStick(rest)
	if err != nil {
		return Move{}, s, err
	}
	m.Kind = StepAndWaterStick
	m.Water = &water
	return m, rest, nil
}

// parseStepAndBridgeStick succeeds unless the size is followed by the failure
// marker, whatever the size. Sizes 0 to 2 can therefore decode as successful.
func parseStepAndBridgeStick(s string) (Move, string, error) {
	m, rest, err := ordinaryHead(s, true)
	if err != nil {
		return Move{}, s, err
	}
	n, rest, err := parseBridgeStickSize(rest)
	if err != nil {
		return Move{}, s, err
	}
	successful := true
	if after, err := expectTag(rest, FailureMarker); err == nil {
		successful = false
		rest = after
	}
	m.Kind = StepAndBridgeStick
	m.Bridge = &StickThrow{Size: n, Successful: successful}
	return m, rest, nil
}

// parseStepAndBridgeStickAndWaterStick reads a bridge throw followed by a
// water throw. Reaching the water means the bridge was crossed.
func parseStepAndBridgeStickAndWaterStick(s string) (Move, string, error) {
	m, rest, err := ordinaryHead(s, true)
	if err != nil {
		return Move{}, s, err
	}
	n, rest, err := parseBridgeStickSize(rest)
	if err != nil {
		return Move{}, s, err
	}
	water, rest, err := parseWaterStick(rest)
	if err != nil {
		return Move{}, s, err
	}
	m.Kind = StepAndBridgeStickAndWaterStick
	m.Bridge = &StickThrow{Size: n, Successful: true}
	m.Water = &water
	return m, rest, nil
}

// tamHead reads the source square and the coordinator marker.
func tamHead(s string) (cetkaik.Coord, string, error) {
	src, rest, err := parseSquare(s)
	if err != nil {
		return src, s, err
	}
	rest, err = expectRune(rest, TamMarker)
	if err != nil {
		return src, s, err
	}
	return src, rest, nil
}

// parseTamNoStep accepts an optional bracket; both "[或]" and no bracket at
// all leave the first destination unstated.
func parseTamNoStep(s string) (Move, string, error) {
	src, rest, err := tamHead(s)
	if err != nil {
		return Move{}, s, err
	}
	var first *cetkaik.Coord
	if c, after, err := parseTamBracket(rest); err == nil {
		first = c
		rest = after
	}
	second, rest, err := parseSquare(rest)
	if err != nil {
		return Move{}, s, err
	}
	return Move{Kind: TamNoStep, Src: src, FirstDest: first, Dest: second}, rest, nil
}

func parseTamStepUnspecified(s string) (Move, string, error) {
	src, rest, err := tamHead(s)
	if err != nil {
		return Move{}, s, err
	}
	step, rest, err := parseSquare(rest)
	if err != nil {
		return Move{}, s, err
	}
	second, rest, err := parseSquare(rest)
	if err != nil {
		return Move{}, s, err
	}
	return Move{Kind: TamStepUnspecified, Src: src, Step: &step, Dest: second}, rest, nil
}

// parseTamStepDuringFormer reads "src皇step[first]second": the step lies on
// the way to the first destination.
func parseTamStepDuringFormer(s string) (Move, string, error) {
	src, rest, err := tamHead(s)
	if err != nil {
		return Move{}, s, err
	}
	step, rest, err := parseSquare(rest)
	if err != nil {
		return Move{}, s, err
	}
	first, rest, err := parseTamBracket(rest)
	if err != nil {
		return Move{}, s, err
	}
	second, rest, err := parseSquare(rest)
	if err != nil {
		return Move{}, s, err
	}
	return Move{Kind: TamStepDuringFormer, Src: src, Step: &step, FirstDest: first, Dest: second}, rest, nil
}

// parseTamStepDuringLatter reads "src皇[first]step second": the step lies
// between the first and second destinations.
func parseTamStepDuringLatter(s string) (Move, string, error) {
	src, rest, err := tamHead(s)
	if err != nil {
		return Move{}, s, err
	}
	first, rest, err := parseTamBracket(rest)
	if err != nil {
		return Move{}, s, err
	}
	step, rest, err := parseSquare(rest)
	if err != nil {
		return Move{}, s, err
	}
	second, rest, err := parseSquare(rest)
	if err != nil {
		return Move{}, s, err
	}
	return Move{Kind: TamStepDuringLatter, Src: src, FirstDest: first, Step: &step, Dest: second}, rest, nil
}

// parseParachute reads a colour, a concrete profession and a destination.
func parseParachute(s string) (Move, string, error) {
	color, rest, err := parseColor(s)
	if err != nil {
		return Move{}, s, err
	}
	prof, rest, err := parseProfession(rest)
	if err != nil {
		return Move{}, s, err
	}
	dest, rest, err := parseSquare(rest)
	if err != nil {
		return Move{}, s, err
	}
	return Move{Kind: Parachute, Color: color, Prof: &prof, Dest: dest}, rest, nil
}
