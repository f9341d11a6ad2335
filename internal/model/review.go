package model

// ReviewType 모임 종료 후 참가자에게 보내는 리뷰
type ReviewType string

const (
	ReviewExcellent ReviewType = "EXCELLENT" // 최고예요
	ReviewGood      ReviewType = "GOOD"      // 좋아요
	ReviewBad       ReviewType = "BAD"       // 별로예요
	ReviewNoShow    ReviewType = "NOSHOW"    // 노쇼예요
)

// 리뷰 타입별 버디 지수 증감
var reviewScores = map[ReviewType]float64{
	ReviewExcellent: 2.0,
	ReviewGood:      1.0,
	ReviewBad:       -1.0,
	ReviewNoShow:    -5.0,
}

func (r ReviewType) Score() float64 {
	return reviewScores[r]
}

func (r ReviewType) IsValid() bool {
	_, ok := reviewScores[r]
	return ok
}

func ParseReviewType(s string) (ReviewType, bool) {
	r := ReviewType(s)
	if !r.IsValid() {
		return "", false
	}
	return r, true
}
