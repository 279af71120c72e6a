// Package cetkaik provides the board coordinates, professions and colours
// that move records refer to.
package cetkaik

// Color is the colour of a piece. It only matters for pieces re-entering the
// board from the reserve; on the board ownership is tracked separately.
type Color int

const (
	Kok1  Color = iota // red
	Huok2              // black
)

// String returns the name of a colour.
func (c Color) String() string {
	if c == Huok2 {
		return "Huok2"
	}
	return "Kok1"
}

// Logogram returns the record symbol for a colour.
func (c Color) Logogram() string {
	if c == Huok2 {
		return "黒"
	}
	return "赤"
}

// Profession is the type of a piece.
type Profession int

const (
	Nuak1 Profession = iota // 船
	Kauk2                   // 兵
	Gua2                    // 弓
	Kaun1                   // 車
	Dau2                    // 虎
	Maun1                   // 馬
	Kua2                    // 筆
	Tuk2                    // 巫
	Uai1                    // 将
	Io                      // 王
	NumProfessions
)

var professionNames = [...]string{
	Nuak1: "Nuak1",
	Kauk2: "Kauk2",
	Gua2:  "Gua2",
	Kaun1: "Kaun1",
	Dau2:  "Dau2",
	Maun1: "Maun1",
	Kua2:  "Kua2",
	Tuk2:  "Tuk2",
	Uai1:  "Uai1",
	Io:    "Io",
}

var professionLogograms = [...]string{
	Nuak1: "船",
	Kauk2: "兵",
	Gua2:  "弓",
	Kaun1: "車",
	Dau2:  "虎",
	Maun1: "馬",
	Kua2:  "筆",
	Tuk2:  "巫",
	Uai1:  "将",
	Io:    "王",
}

// String returns the romanised name of a profession.
func (p Profession) String() string {
	if p >= 0 && p < NumProfessions {
		return professionNames[p]
	}
	return "Unknown"
}

// Logogram returns the record symbol for a profession, or "?" if p is out of range.
func (p Profession) Logogram() string {
	if p >= 0 && p < NumProfessions {
		return professionLogograms[p]
	}
	return "?"
}

// Professions returns every profession in declaration order.
func Professions() []Profession {
	ps := make([]Profession, 0, NumProfessions)
	for p := Nuak1; p < NumProfessions; p++ {
		ps = append(ps, p)
	}
	return ps
}
