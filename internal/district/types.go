package district

import "fmt"

// RadiusTiers 회원이 선택할 수 있는 반경 (km)
var RadiusTiers = []int{2, 5, 7, 10}

// MaxRadius is the largest tier; neighbours beyond it are never stored.
const MaxRadius = 10

func IsRadiusTier(radius int) bool {
	for _, t := range RadiusTiers {
		if t == radius {
			return true
		}
	}
	return false
}

// Location 시도 / 시군구 / 읍면동 복합 키
type Location struct {
	Sido string
	Sgg  string
	Emd  string
}

func (l Location) String() string {
	return fmt.Sprintf("%s %s %s", l.Sido, l.Sgg, l.Emd)
}

type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type LocationInfo struct {
	Sido string `json:"sido"`
	Sgg  string `json:"sgg"`
	Emd  string `json:"emd"`
}
