package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TEST SUITE 1: AMOUNT PARSING
// ============================================================================

func TestParseAmount_TurkishThousands(t *testing.T) {
	assert.Equal(t, "12345.5", ParseAmount("12.345,50").String())
	assert.Equal(t, "4500", ParseAmount("4.500,00").String())
}

func TestParseAmount_DotOnlyThousands(t *testing.T) {
	assert.Equal(t, "1234567", ParseAmount("1.234.567").String())
}

func TestParseAmount_PlainDecimal(t *testing.T) {
	assert.Equal(t, "1250.75", ParseAmount("1250.75").String())
}

func TestParseAmount_Numeric(t *testing.T) {
	assert.Equal(t, "980.5", ParseAmount(980.5).String())
	assert.Equal(t, "0", ParseAmount("0").String())
}

func TestParseAmount_Unreadable(t *testing.T) {
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("n/a").IsZero())
	assert.True(t, ParseAmount(nil).IsZero())
}

// ============================================================================
// TEST SUITE 2: DATE PARSING
// ============================================================================

func TestParseDate_Serial(t *testing.T) {
	// 45000 is 2023-03-15 in the 1900 date system.
	parsed := ParseDate(45000.0)
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDate_SerialAsText(t *testing.T) {
	parsed := ParseDate("45000")
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDate_TurkishSpelling(t *testing.T) {
	parsed := ParseDate("15.03.2023")
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), parsed)

	parsed = ParseDate("1/2/2024")
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDate_Unreadable(t *testing.T) {
	assert.True(t, ParseDate("gelecek yıl").IsZero())
	assert.True(t, ParseDate(nil).IsZero())
}

// ============================================================================
// TEST SUITE 3: ROW NORMALIZATION
// ============================================================================

func TestNormalize_HeaderSynonyms(t *testing.T) {
	normalizer := NewRowNormalizer()

	row, ok := normalizer.Normalize(RawRow{
		"MÜŞTERİ ADI":     "mehmet yılmaz",
		"TC KİMLİK NO":    "11111111111",
		"POLİÇE NUMARASI": "TR-2024-001",
		"SİGORTA ŞİRKETİ": "Anadolu",
		"BRANŞ":           "Trafik",
		"KESİM TARİHİ":    "15.03.2023",
		"VADE TARİHİ":     "15.03.2024",
		"PRİM":            "4.500,00",
		"KOMİSYON":        "450,00",
	})

	assert.True(t, ok)
	assert.Equal(t, "Mehmet Yılmaz", row.CustomerName)
	assert.Equal(t, "11111111111", row.NationalOrTaxID)
	assert.Equal(t, "TR-2024-001", row.PolicyNumber)
	assert.Equal(t, "Anadolu", row.CompanyName)
	assert.Equal(t, "Trafik", row.TypeLabel)
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), row.StartDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), row.EndDate)
	assert.Equal(t, "4500", row.Premium.String())
	assert.Equal(t, "450", row.Commission.String())
}

func TestNormalize_TitleCasesTurkishName(t *testing.T) {
	normalizer := NewRowNormalizer()

	row, ok := normalizer.Normalize(RawRow{"Müşteri": "AYŞE ÇELİK"})

	assert.True(t, ok)
	assert.Equal(t, "Ayşe Çelik", row.CustomerName)
	assert.Equal(t, "ayşe çelik", row.CustomerKey)
}

func TestNormalize_EmptyRowIsNoOp(t *testing.T) {
	normalizer := NewRowNormalizer()

	_, ok := normalizer.Normalize(RawRow{
		"Müşteri":  "  ",
		"Prim":     "1.000,00",
		"Açıklama": "yok",
	})

	assert.False(t, ok)
}

func TestNormalize_EndDateDefaultsToStartPlusOneYear(t *testing.T) {
	normalizer := NewRowNormalizer()

	row, ok := normalizer.Normalize(RawRow{
		"Müşteri":          "Ali Veli",
		"Başlangıç Tarihi": "01.06.2024",
	})

	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), row.EndDate)
}

func TestNormalize_StartDateDefaultsToEndMinusOneYear(t *testing.T) {
	normalizer := NewRowNormalizer()

	row, ok := normalizer.Normalize(RawRow{
		"Müşteri":     "Ali Veli",
		"Vade Tarihi": "01.06.2025",
	})

	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), row.StartDate)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), row.EndDate)
}

func TestNormalize_PlateFoldsIntoDescription(t *testing.T) {
	normalizer := NewRowNormalizer()

	row, ok := normalizer.Normalize(RawRow{
		"Müşteri": "Ali Veli",
		"Plaka":   "34 ABC 123",
		"Not":     "kasko yenileme",
	})

	assert.True(t, ok)
	assert.Equal(t, "Plaka: 34 ABC 123 - kasko yenileme", row.Description)
}

func TestFoldTurkish(t *testing.T) {
	assert.Equal(t, "police turu", FoldTurkish("POLİÇE TÜRÜ"))
	assert.Equal(t, "isyeri", FoldTurkish("İşyeri"))
	assert.Equal(t, "saglik", FoldTurkish("Sağlık"))
}
