package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "annex floor clause",
			input:    "서울 강남구 역삼동 835-6, 별관3층",
			expected: "서울 강남구 역삼동 835-6",
		},
		{
			name:     "floor clause and province rewrite",
			input:    "경기도 의정부시 녹양동 157-5, 3층",
			expected: "경기 의정부시 녹양동 157-5",
		},
		{
			name:     "unit number",
			input:    "대구 북구 산격동 1666, 503호",
			expected: "대구 북구 산격동 1666",
		},
		{
			name:     "unit number with syllable prefix",
			input:    "대전 중구 선화동 369-4, 가301호",
			expected: "대전 중구 선화동 369-4",
		},
		{
			name:     "numbered floor form",
			input:    "서울특별시 중구 을지로 100, 제14층",
			expected: "서울 중구 을지로 100",
		},
		{
			name:     "lettered block",
			input:    "인천 연수구 송도동 24-5, A2동 301호",
			expected: "인천 연수구 송도동 24-5",
		},
		{
			name:     "main block",
			input:    "부산 해운대구 우동 1408, 주2동",
			expected: "부산 해운대구 우동 1408",
		},
		{
			name:     "plain block",
			input:    "광주 북구 용봉동 77, 1동",
			expected: "광주 북구 용봉동 77",
		},
		{
			name:     "shopping block",
			input:    "울산 남구 삼산동 1521, 상가동 102호",
			expected: "울산 남구 삼산동 1521",
		},
		{
			name:     "basement unit",
			input:    "서울 마포구 서교동 395-1, 비-1002호",
			expected: "서울 마포구 서교동 395-1",
		},
		{
			name:     "parenthesized building name",
			input:    "경기 성남시 분당구 정자동 178-1 (유림스텐), 2층",
			expected: "경기 성남시 분당구 정자동 178-1",
		},
		{
			name:     "surrounding whitespace",
			input:    "   서울 성북구 성북동1가 109-6   ",
			expected: "서울 성북구 성북동1가 109-6",
		},
		{
			name:     "comma without detail clause is kept",
			input:    "서울 종로구 세종로 1, 정부청사",
			expected: "서울 종로구 세종로 1, 정부청사",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_CleanInputOnlyShortensProvince(t *testing.T) {
	clean := []string{
		"서울 강남구 역삼동 835-6",
		"경기 의정부시 녹양동 157-5",
		"제주 제주시 연동 312-1",
	}
	for _, addr := range clean {
		assert.Equal(t, addr, Normalize(addr))
	}

	assert.Equal(t, "충북 청주시 상당구 문화동 89", Normalize("충청북도 청주시 상당구 문화동 89"))
}

func TestNormalize_DecomposedHangul(t *testing.T) {
	decomposed := norm.NFD.String("경기도 의정부시 녹양동 157-5, 3층")
	assert.Equal(t, "경기 의정부시 녹양동 157-5", Normalize(decomposed))
}
