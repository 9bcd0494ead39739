package entity

import (
	"encoding/json"
	"math"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	leadingNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	maxYears      = decimal.NewFromInt(math.MaxInt32)
)

// Doctor is a read-only record decoded from the remote directory payload.
// Decoding is tolerant: fields of the wrong shape fall back to their zero value.
type Doctor struct {
	Name          string          `json:"name" validate:"required"`
	Mode          string          `json:"mode"`
	Speciality    []string        `json:"speciality"`
	Experience    int             `json:"experience" validate:"gte=0"`
	Fees          decimal.Decimal `json:"fees"`
	Qualification string          `json:"qualification,omitempty"`
	Hospital      string          `json:"hospital,omitempty"`
	Location      string          `json:"location,omitempty"`
	Languages     []string        `json:"languages,omitempty"`
}

type doctorPayload struct {
	Name          json.RawMessage `json:"name"`
	Mode          json.RawMessage `json:"mode"`
	VideoConsult  json.RawMessage `json:"video_consult"`
	InClinic      json.RawMessage `json:"in_clinic"`
	Speciality    json.RawMessage `json:"speciality"`
	Specialities  json.RawMessage `json:"specialities"`
	Experience    json.RawMessage `json:"experience"`
	Fees          json.RawMessage `json:"fees"`
	Qualification json.RawMessage `json:"qualification"`
	Hospital      json.RawMessage `json:"hospital"`
	Location      json.RawMessage `json:"location"`
	Languages     json.RawMessage `json:"languages"`
}

func (d *Doctor) UnmarshalJSON(data []byte) error {
	var p doctorPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	specialities := p.Speciality
	if len(specialities) == 0 {
		specialities = p.Specialities
	}

	*d = Doctor{
		Name:          rawString(p.Name),
		Mode:          rawString(p.Mode),
		Speciality:    rawSpecialities(specialities),
		Experience:    rawYears(p.Experience),
		Fees:          rawAmount(p.Fees),
		Qualification: rawString(p.Qualification),
		Hospital:      rawString(p.Hospital),
		Location:      rawString(p.Location),
		Languages:     rawStrings(p.Languages),
	}

	if d.Mode == "" {
		switch {
		case rawBool(p.VideoConsult):
			d.Mode = ModeVideoConsult
		case rawBool(p.InClinic):
			d.Mode = ModeInClinic
		}
	}

	return nil
}

// HasSpeciality reports whether the doctor lists the given speciality.
func (d Doctor) HasSpeciality(name string) bool {
	for _, s := range d.Speciality {
		if s == name {
			return true
		}
	}
	return false
}

func rawString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func rawBool(raw json.RawMessage) bool {
	var b bool
	if len(raw) == 0 || json.Unmarshal(raw, &b) != nil {
		return false
	}
	return b
}

func rawStrings(raw json.RawMessage) []string {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := rawString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// rawSpecialities accepts a list of names or a list of {"name": ...} objects.
// Anything that is not a list yields an empty speciality.
func rawSpecialities(raw json.RawMessage) []string {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := rawString(item); s != "" {
			out = append(out, s)
			continue
		}
		var named struct {
			Name string `json:"name"`
		}
		if json.Unmarshal(item, &named) == nil && named.Name != "" {
			out = append(out, named.Name)
		}
	}
	return out
}

// rawYears reads 13, 13.0 or "13 Years of experience".
func rawYears(raw json.RawMessage) int {
	amount := rawAmount(raw)
	if amount.IsZero() {
		return 0
	}
	if amount.GreaterThan(maxYears) {
		return math.MaxInt32
	}
	return int(amount.IntPart())
}

// rawAmount reads 500, "500" or "₹ 500". Negative or unreadable amounts are zero.
func rawAmount(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := decimal.NewFromString(n.String()); err == nil && !v.IsNegative() {
			return v
		}
		return decimal.Zero
	}

	s := rawString(raw)
	match := leadingNumber.FindString(s)
	if match == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(match)
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	return v
}
