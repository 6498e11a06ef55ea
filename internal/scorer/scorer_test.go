package scorer

import (
	"testing"

	"address-resolver/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		foundLot  string
		foundRoad string
		expected  models.Confidence
	}{
		{
			name:     "nothing found",
			original: "서울 강남구 역삼동 835-6",
			expected: models.ConfidenceNone,
		},
		{
			name:     "exact lot match",
			original: "서울 강남구 역삼동 835-6",
			foundLot: "서울 강남구 역삼동 835-6",
			expected: models.ConfidenceHigh,
		},
		{
			name:     "sido synonym and numbered dong",
			original: "서울 강남구 역삼1동 835",
			foundLot: "서울특별시 강남구 역삼동 835",
			expected: models.ConfidenceHigh,
		},
		{
			name:     "province and district only",
			original: "서울 강남구 역삼동 835-6",
			foundLot: "서울 강남구 삼성동 100",
			expected: models.ConfidenceMedium,
		},
		{
			name:     "neighborhood and number only",
			original: "서울 강남구 역삼동 835-6",
			foundLot: "부산 해운대구 역삼동 835",
			expected: models.ConfidenceLow,
		},
		{
			name:     "no overlap",
			original: "서울 강남구 역삼동 835-6",
			foundLot: "부산 해운대구 우동 1408",
			expected: models.ConfidenceNone,
		},
		{
			name:      "road address only",
			original:  "경기 의정부시 녹양동 157-5",
			foundRoad: "경기 의정부시 녹양로 34",
			expected:  models.ConfidenceMedium,
		},
		{
			name:      "road upgrades a weak lot result",
			original:  "서울 강남구 역삼동 835-6",
			foundLot:  "부산 해운대구 역삼동 835",
			foundRoad: "서울 강남구 테헤란로 152",
			expected:  models.ConfidenceMedium,
		},
		{
			name:      "high road result wins over weak lot result",
			original:  "서울 강남구 역삼동 835-6",
			foundLot:  "부산 해운대구 우동 1408",
			foundRoad: "서울 강남구 역삼동 835",
			expected:  models.ConfidenceHigh,
		},
		{
			name:     "no digits in input skips the number check",
			original: "서울 강남구 역삼동",
			foundLot: "서울 강남구 역삼동 835",
			expected: models.ConfidenceHigh,
		},
		{
			name:     "single rune neighborhood is not checked",
			original: "세종 조치원읍 가",
			foundLot: "세종특별자치시 조치원읍 원리 1",
			expected: models.ConfidenceHigh,
		},
		{
			name:     "district found inside second token",
			original: "경기 성남 정자동 178-1",
			foundLot: "경기 성남시 분당구 정자동 178-1",
			expected: models.ConfidenceHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.original, tt.foundLot, tt.foundRoad))
		})
	}
}

func TestScore_Monotonicity(t *testing.T) {
	original := "대전 중구 선화동 369-4"

	// every token and a number shared
	assert.Equal(t, models.ConfidenceHigh, Score(original, "대전광역시 중구 선화동 369-4", ""))
	assert.Equal(t, models.ConfidenceHigh, Score(original, "", "대전 중구 선화동 369"))

	// neither province nor district shared
	for _, found := range []string{
		"부산 해운대구 선화동 369-4",
		"광주 북구 선화동 369",
		"울산 남구 삼산동 1521",
	} {
		c := Score(original, found, found)
		assert.Contains(t, []models.Confidence{models.ConfidenceNone, models.ConfidenceLow}, c, found)
	}
}

func TestScore_Deterministic(t *testing.T) {
	first := Score("대구 북구 산격동 1666", "대구 북구 산격동 1666", "대구 북구 대학로 80")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score("대구 북구 산격동 1666", "대구 북구 산격동 1666", "대구 북구 대학로 80"))
	}
}
