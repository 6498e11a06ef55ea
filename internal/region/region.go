// Package region holds the fixed province (sido) tables used for display and matching.
package region

import "strings"

// cityNames maps the short sido form to its full legal name.
var cityNames = map[string]string{
	"서울": "서울특별시",
	"부산": "부산광역시",
	"대구": "대구광역시",
	"인천": "인천광역시",
	"광주": "광주광역시",
	"대전": "대전광역시",
	"울산": "울산광역시",
	"세종": "세종특별자치시",
	"경기": "경기도",
	"강원": "강원특별자치도",
	"충북": "충청북도",
	"충남": "충청남도",
	"전북": "전북특별자치도",
	"전남": "전라남도",
	"경북": "경상북도",
	"경남": "경상남도",
	"제주": "제주특별자치도",
}

// sidoSynonyms lists every surface form of a sido, keyed by its short form.
var sidoSynonyms = map[string][]string{
	"서울": {"서울특별시", "서울", "서울시"},
	"부산": {"부산광역시", "부산", "부산시"},
	"대구": {"대구광역시", "대구", "대구시"},
	"인천": {"인천광역시", "인천", "인천시"},
	"광주": {"광주광역시", "광주", "광주시"},
	"대전": {"대전광역시", "대전", "대전시"},
	"울산": {"울산광역시", "울산", "울산시"},
	"세종": {"세종특별자치시", "세종", "세종시"},
	"경기": {"경기도", "경기"},
	"강원": {"강원특별자치도", "강원도", "강원"},
	"충북": {"충청북도", "충북"},
	"충남": {"충청남도", "충남"},
	"전북": {"전북특별자치도", "전라북도", "전북"},
	"전남": {"전라남도", "전남"},
	"경북": {"경상북도", "경북"},
	"경남": {"경상남도", "경남"},
	"제주": {"제주특별자치도", "제주도", "제주"},
}

// prefixRewrites is applied in order; the first matching prefix wins.
var prefixRewrites = []struct{ from, to string }{
	{"서울특별시", "서울"},
	{"서울시", "서울"},
	{"부산광역시", "부산"},
	{"부산시", "부산"},
	{"대구광역시", "대구"},
	{"대구시", "대구"},
	{"인천광역시", "인천"},
	{"인천시", "인천"},
	{"광주광역시", "광주"},
	{"광주시", "광주"},
	{"대전광역시", "대전"},
	{"대전시", "대전"},
	{"울산광역시", "울산"},
	{"울산시", "울산"},
	{"세종특별자치시", "세종"},
	{"세종시", "세종"},
	{"경기도", "경기"},
	{"강원특별자치도", "강원"},
	{"강원도", "강원"},
	{"충청북도", "충북"},
	{"충청남도", "충남"},
	{"전북특별자치도", "전북"},
	{"전라북도", "전북"},
	{"전라남도", "전남"},
	{"경상북도", "경북"},
	{"경상남도", "경남"},
	{"제주특별자치도", "제주"},
	{"제주도", "제주"},
}

var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]string {
	idx := make(map[string]string)
	for short, forms := range sidoSynonyms {
		for _, f := range forms {
			idx[f] = short
		}
	}
	return idx
}

// ExpandCity returns the full legal name of a short sido name.
// Unknown names, full names and "" are returned unchanged.
func ExpandCity(name string) string {
	if full, ok := cityNames[name]; ok {
		return full
	}
	return name
}

// ShortNames returns the short sido names of the City Name Table.
func ShortNames() []string {
	names := make([]string, 0, len(cityNames))
	for k := range cityNames {
		names = append(names, k)
	}
	return names
}

// Canonical returns the short form of any known sido surface form.
func Canonical(name string) (string, bool) {
	short, ok := synonymIndex[name]
	return short, ok
}

// SameSido reports whether a and b name the same sido.
func SameSido(a, b string) bool {
	ca, ok := Canonical(a)
	if !ok {
		return false
	}
	cb, ok := Canonical(b)
	return ok && ca == cb
}

// ShortenPrefix rewrites a leading full-form sido name to its short form.
// The prefix must be followed by whitespace, a comma or the end of the string.
func ShortenPrefix(addr string) string {
	for _, r := range prefixRewrites {
		rest, ok := strings.CutPrefix(addr, r.from)
		if !ok {
			continue
		}
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == ',' {
			return r.to + rest
		}
	}
	return addr
}
