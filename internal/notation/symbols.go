package notation

import "github.com/lgbarn/kiaak-go/internal/cetkaik"

// Record symbols. Every position in a move accepts only its own closed set;
// anything else is a lexical failure.
const (
	TamMarker      = '皇'
	BracketOpen    = '['
	BracketClose   = ']'
	WaterMarker    = '水'
	BridgeMarker   = '橋'
	Unspecified    = '或'
	Wildcard       = '片'
	FailureMarker  = "此無"
	NoStickMarker  = "無撃裁"
	waterRunSymbol = "或無一二三四五此"
)

// Stick numerals, indexed by the size they denote.
var numerals = [...]rune{'無', '一', '二', '三', '四', '五'}

// professionSymbols maps logograms to professions.
var professionSymbols = map[rune]cetkaik.Profession{
	'船': cetkaik.Nuak1,
	'兵': cetkaik.Kauk2,
	'弓': cetkaik.Gua2,
	'車': cetkaik.Kaun1,
	'虎': cetkaik.Dau2,
	'馬': cetkaik.Maun1,
	'筆': cetkaik.Kua2,
	'巫': cetkaik.Tuk2,
	'将': cetkaik.Uai1,
	'王': cetkaik.Io,
}

var colorSymbols = map[rune]cetkaik.Color{
	'黒': cetkaik.Huok2,
	'赤': cetkaik.Kok1,
}

// waterOutcomes is the closed set of legal water-stick runs. Sizes 0 to 2
// always fail and must say so; sizes 3 to 5 always succeed and must not carry
// a failure marker.
var waterOutcomes = map[string]StickThrow{
	"無此無": {Size: size(0), Successful: false},
	"一此無": {Size: size(1), Successful: false},
	"二此無": {Size: size(2), Successful: false},
	"三":   {Size: size(3), Successful: true},
	"四":   {Size: size(4), Successful: true},
	"五":   {Size: size(5), Successful: true},
	"或":   {Size: nil, Successful: true},
	"或此無": {Size: nil, Successful: false},
}

// bridgeSizes maps the single symbol after the bridge marker to a size; nil
// means the record does not state it.
var bridgeSizes = map[rune]*int{
	'或': nil,
	'無': size(0),
	'一': size(1),
	'二': size(2),
	'三': size(3),
	'四': size(4),
	'五': size(5),
}

func size(n int) *int {
	return &n
}

func copySize(n *int) *int {
	if n == nil {
		return nil
	}
	return size(*n)
}

// clone returns a copy that shares no memory with s, so table entries are
// never handed out.
func (s StickThrow) clone() StickThrow {
	return StickThrow{Size: copySize(s.Size), Successful: s.Successful}
}

// isColumn returns true if r is a column symbol.
func isColumn(r rune) bool {
	switch r {
	case 'K', 'L', 'N', 'T', 'Z', 'X', 'C', 'M', 'P':
		return true
	}
	return false
}

// isRowLetter returns true if r can appear in a row name.
func isRowLetter(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}

// isWaterRunSymbol returns true if r may appear after the water marker.
func isWaterRunSymbol(r rune) bool {
	for _, s := range waterRunSymbol {
		if s == r {
			return true
		}
	}
	return false
}
