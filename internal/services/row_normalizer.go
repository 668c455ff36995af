package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RawRow is one record of the imported tabular file, keyed by whatever the
// source sheet called its columns.
type RawRow = map[string]any

// PolicyRow is the canonical shape a raw row is normalized into before any
// resolution runs. CustomerName is the cosmetic title-cased display form;
// CustomerKey is the lower-folded copy used for matching and nothing else.
type PolicyRow struct {
	CustomerName    string
	CustomerKey     string
	NationalOrTaxID string
	PolicyNumber    string
	CompanyName     string
	TypeLabel       string
	ProductName     string
	Phone           string
	Plate           string
	Description     string
	StartDate       time.Time
	EndDate         time.Time
	Premium         decimal.Decimal
	Commission      decimal.Decimal
}

// RowNormalizer folds header spelling variants and loosely-typed cell values
// into PolicyRow records. One instance serves one batch; the casers it holds
// are not safe for concurrent use.
type RowNormalizer struct {
	title cases.Caser
	lower cases.Caser
	now   func() time.Time
}

func NewRowNormalizer() *RowNormalizer {
	return &RowNormalizer{
		title: cases.Title(language.Turkish),
		lower: cases.Lower(language.Turkish),
		now:   time.Now,
	}
}

// Normalize converts one raw row into its canonical form. Rows carrying
// neither a customer name nor a policy number are dropped as no-ops: the
// second return is false and the row is excluded from every counter.
func (n *RowNormalizer) Normalize(raw RawRow) (*PolicyRow, bool) {
	fields := map[string]any{}
	for key, value := range raw {
		if field := canonicalField(key); field != "" {
			fields[field] = value
		}
	}

	rawName := valueString(fields["customer_name"])
	policyNumber := valueString(fields["policy_number"])
	if rawName == "" && policyNumber == "" {
		return nil, false
	}

	row := &PolicyRow{
		CustomerName:    n.title.String(rawName),
		CustomerKey:     n.lower.String(rawName),
		NationalOrTaxID: valueString(fields["identity_no"]),
		PolicyNumber:    policyNumber,
		CompanyName:     valueString(fields["company"]),
		TypeLabel:       valueString(fields["policy_type"]),
		ProductName:     valueString(fields["product"]),
		Phone:           valueString(fields["phone"]),
		Plate:           valueString(fields["plate"]),
		Description:     valueString(fields["description"]),
		StartDate:       ParseDate(fields["start_date"]),
		EndDate:         ParseDate(fields["end_date"]),
		Premium:         ParseAmount(fields["premium"]),
		Commission:      ParseAmount(fields["commission"]),
	}

	// Annual term defaulting: either missing date is derived from the other
	// so a zero time never reaches the store.
	switch {
	case row.EndDate.IsZero() && !row.StartDate.IsZero():
		row.EndDate = row.StartDate.AddDate(1, 0, 0)
	case row.StartDate.IsZero() && !row.EndDate.IsZero():
		row.StartDate = row.EndDate.AddDate(-1, 0, 0)
	case row.StartDate.IsZero() && row.EndDate.IsZero():
		today := dateOnly(n.now())
		row.StartDate = today
		row.EndDate = today
	}

	if row.Plate != "" {
		if row.Description != "" {
			row.Description = "Plaka: " + row.Plate + " - " + row.Description
		} else {
			row.Description = "Plaka: " + row.Plate
		}
	}

	return row, true
}

var turkishFolder = strings.NewReplacer(
	"İ", "i", "I", "i", "ı", "i",
	"Ş", "s", "ş", "s",
	"Ğ", "g", "ğ", "g",
	"Ü", "u", "ü", "u",
	"Ö", "o", "ö", "o",
	"Ç", "c", "ç", "c",
)

// FoldTurkish lower-cases s and strips Turkish diacritics, so that header
// spellings and keyword labels compare regardless of how the sheet was typed.
func FoldTurkish(s string) string {
	return strings.ToLower(turkishFolder.Replace(strings.TrimSpace(s)))
}

// canonicalField maps a folded header spelling to its canonical field name.
// Checks are ordered; the first containment wins, mirroring how the source
// sheets actually vary ("poliçe no" vs "poliçe numarası" and so on).
func canonicalField(header string) string {
	h := FoldTurkish(header)
	switch {
	case h == "":
		return ""
	case strings.Contains(h, "musteri"):
		return "customer_name"
	case strings.Contains(h, "tckn") || strings.Contains(h, "vkn") || strings.Contains(h, "tc kimlik") || strings.Contains(h, "tc no"):
		return "identity_no"
	case strings.Contains(h, "police no") || strings.Contains(h, "police numarasi"):
		return "policy_number"
	case strings.Contains(h, "police turu") || strings.Contains(h, "brans"):
		return "policy_type"
	case strings.Contains(h, "sigorta sirketi") || strings.Contains(h, "sirket"):
		return "company"
	case strings.Contains(h, "kesim") || strings.Contains(h, "baslangic"):
		return "start_date"
	case strings.Contains(h, "vade") || strings.Contains(h, "bitis"):
		return "end_date"
	case strings.Contains(h, "prim"):
		return "premium"
	case strings.Contains(h, "gelir") || strings.Contains(h, "komisyon"):
		return "commission"
	case strings.Contains(h, "urun"):
		return "product"
	case strings.Contains(h, "plaka"):
		return "plate"
	case strings.Contains(h, "cep") || strings.Contains(h, "tel"):
		return "phone"
	case strings.Contains(h, "aciklama") || strings.Contains(h, "not"):
		return "description"
	default:
		return ""
	}
}

// valueString renders a loosely-typed cell as a trimmed string. Numeric cells
// keep their full digits (identity numbers arrive as numbers in some sheets).
func valueString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

var dateLayouts = []string{
	"2.1.2006",
	"2/1/2006",
	"2006-01-02",
	"2-1-2006",
}

// ParseDate reads a cell holding a spreadsheet date serial, a serial rendered
// as text, or one of the date spellings seen in the source sheets. Anything
// unreadable yields the zero time.
func ParseDate(v any) time.Time {
	switch val := v.(type) {
	case float64:
		return fromExcelSerial(val)
	case int:
		return fromExcelSerial(float64(val))
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return fromExcelSerial(serial)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return dateOnly(t)
			}
		}
	}
	return time.Time{}
}

// fromExcelSerial converts a 1900-system date serial to a calendar date.
// Serial day 25569 is 1970-01-01.
func fromExcelSerial(serial float64) time.Time {
	if serial <= 0 {
		return time.Time{}
	}
	unix := int64((serial - 25569) * 86400)
	return dateOnly(time.Unix(unix, 0).UTC())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var thousandsDotPattern = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// ParseAmount normalizes a localized amount cell to a decimal. "12.345,50"
// yields 12345.50; empty or unreadable cells yield zero, matching how the
// source sheets treat blank premium columns.
func ParseAmount(v any) decimal.Decimal {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(val), " ", "")
		if s == "" {
			return decimal.Zero
		}
		if strings.Contains(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else if thousandsDotPattern.MatchString(s) {
			s = strings.ReplaceAll(s, ".", "")
		}
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return amount
	}
	return decimal.Zero
}
