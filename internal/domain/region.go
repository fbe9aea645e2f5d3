package domain

// WholeWorld is the selector value for "no specific region".
const WholeWorld = "전 세계"

// RegionCase is the fixed damage and mitigation narrative for one country.
type RegionCase struct {
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Damage      string `json:"damage"`
	Mitigation  string `json:"mitigation"`
}

// regionOrder is the selector order after the WholeWorld entry.
var regionOrder = []string{"대한민국", "투발루", "몰디브", "방글라데시", "네덜란드"}

var regionCases = map[string]RegionCase{
	"투발루": {
		Name:        "투발루",
		EnglishName: "Tuvalu",
		Damage:      "국토의 40% 이상이 침수 위협, 농경지와 식수원 오염, 환경 난민 발생.",
		Mitigation:  "국제 사회에 기후 난민 보호 요청, 해안 방벽 설치 시도.",
	},
	"몰디브": {
		Name:        "몰디브",
		EnglishName: "Maldives",
		Damage:      "리조트와 주거지가 반복적인 홍수 피해.",
		Mitigation:  "인공섬 건설, 해안 방파제 강화.",
	},
	"방글라데시": {
		Name:        "방글라데시",
		EnglishName: "Bangladesh",
		Damage:      "델타 지역 농경지와 마을 침수.",
		Mitigation:  "방조제 건설, 홍수 예측 시스템 개발.",
	},
	"네덜란드": {
		Name:        "네덜란드",
		EnglishName: "Netherlands",
		Damage:      "과거 해수면 상승과 폭풍으로 국토 침수 경험.",
		Mitigation:  "세계적 수준의 방조제·수문 관리 시스템 구축.",
	},
	"대한민국": {
		Name:        "대한민국",
		EnglishName: "South Korea",
		Damage:      "인천·부산 등 해안 도시 침수 위험 증가.",
		Mitigation:  "연안관리 기본계획 수립, 해안 방벽·배수 시설 확충.",
	},
}

// Lookup returns the case for name. WholeWorld and unknown names report false;
// callers omit the case panel rather than failing.
func Lookup(name string) (RegionCase, bool) {
	c, ok := regionCases[name]
	return c, ok
}

// RegionOptions lists the selector values in display order, WholeWorld first.
func RegionOptions() []string {
	opts := make([]string, 0, len(regionOrder)+1)
	opts = append(opts, WholeWorld)
	return append(opts, regionOrder...)
}

// RegionCases returns every case in selector order.
func RegionCases() []RegionCase {
	cases := make([]RegionCase, 0, len(regionOrder))
	for _, name := range regionOrder {
		cases = append(cases, regionCases[name])
	}
	return cases
}

// IsSelectable reports whether name is a catalog key or WholeWorld.
func IsSelectable(name string) bool {
	if name == WholeWorld {
		return true
	}
	_, ok := regionCases[name]
	return ok
}
