package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandCity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "metropolitan city", input: "서울", expected: "서울특별시"},
		{name: "province", input: "경기", expected: "경기도"},
		{name: "special self-governing province", input: "강원", expected: "강원특별자치도"},
		{name: "jeonbuk", input: "전북", expected: "전북특별자치도"},
		{name: "jeju", input: "제주", expected: "제주특별자치도"},
		{name: "full name passes through", input: "부산광역시", expected: "부산광역시"},
		{name: "unknown passes through", input: "도쿄", expected: "도쿄"},
		{name: "empty stays empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandCity(tt.input))
		})
	}
}

func TestExpandCity_Idempotent(t *testing.T) {
	assert.Len(t, ShortNames(), 17)
	for _, short := range ShortNames() {
		once := ExpandCity(short)
		assert.NotEmpty(t, once)
		assert.Equal(t, once, ExpandCity(once), short)
	}
}

func TestSidoTablesAgree(t *testing.T) {
	for _, short := range ShortNames() {
		forms, ok := sidoSynonyms[short]
		assert.True(t, ok, "missing synonyms for %s", short)
		assert.Contains(t, forms, short)
		assert.Contains(t, forms, ExpandCity(short))
	}
}

func TestSameSido(t *testing.T) {
	assert.True(t, SameSido("서울", "서울특별시"))
	assert.True(t, SameSido("서울시", "서울특별시"))
	assert.True(t, SameSido("전라북도", "전북특별자치도"))
	assert.True(t, SameSido("강원도", "강원"))
	assert.False(t, SameSido("경기", "서울"))
	assert.False(t, SameSido("강남구", "강남구"))
	assert.False(t, SameSido("", ""))
}

func TestShortenPrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"서울특별시 강남구 역삼동", "서울 강남구 역삼동"},
		{"서울시 종로구", "서울 종로구"},
		{"경기도 의정부시 녹양동 157-5", "경기 의정부시 녹양동 157-5"},
		{"강원도 춘천시", "강원 춘천시"},
		{"강원특별자치도 춘천시", "강원 춘천시"},
		{"전라북도 전주시", "전북 전주시"},
		{"제주특별자치도 제주시 연동", "제주 제주시 연동"},
		{"충청남도", "충남"},
		{"서울 강남구", "서울 강남구"},
		{"서울시청로 1", "서울시청로 1"},
		{"경기 경기도로", "경기 경기도로"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShortenPrefix(tt.input))
		})
	}
}
