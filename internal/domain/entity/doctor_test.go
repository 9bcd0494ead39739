package entity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor_UnmarshalJSON(t *testing.T) {
	payload := `{
		"name": "Dr. Alice",
		"mode": "Video Consult",
		"speciality": ["Dentist", "ENT"],
		"experience": 12,
		"fees": 450.5,
		"qualification": "BDS",
		"languages": ["English", "Hindi"]
	}`

	var d Doctor
	require.NoError(t, json.Unmarshal([]byte(payload), &d))

	assert.Equal(t, "Dr. Alice", d.Name)
	assert.Equal(t, ModeVideoConsult, d.Mode)
	assert.Equal(t, []string{"Dentist", "ENT"}, d.Speciality)
	assert.Equal(t, 12, d.Experience)
	assert.True(t, d.Fees.Equal(decimal.RequireFromString("450.5")))
	assert.Equal(t, "BDS", d.Qualification)
	assert.Empty(t, d.Hospital)
	assert.Equal(t, []string{"English", "Hindi"}, d.Languages)
}

func TestDoctor_UnmarshalJSON_Tolerant(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		speciality []string
		experience int
		fees       string
		mode       string
	}{
		{
			name:       "malformed speciality",
			payload:    `{"name":"A","speciality":"Dentist","experience":3,"fees":100}`,
			experience: 3,
			fees:       "100",
		},
		{
			name:       "speciality objects",
			payload:    `{"name":"A","specialities":[{"name":"Dentist"},{"name":""},7,"ENT"]}`,
			speciality: []string{"Dentist", "ENT"},
			fees:       "0",
		},
		{
			name:       "textual amounts",
			payload:    `{"name":"A","experience":"13 Years of experience","fees":"₹ 500"}`,
			experience: 13,
			fees:       "500",
		},
		{
			name:    "negative amounts",
			payload: `{"name":"A","experience":-4,"fees":-10}`,
			fees:    "0",
		},
		{
			name:    "negative textual amounts",
			payload: `{"name":"A","experience":"-3 years","fees":"₹ -200"}`,
			fees:    "0",
		},
		{
			name:       "experience beyond int32",
			payload:    `{"name":"A","experience":1e19}`,
			experience: math.MaxInt32,
			fees:       "0",
		},
		{
			name:    "mode from flags",
			payload: `{"name":"A","video_consult":false,"in_clinic":true}`,
			fees:    "0",
			mode:    ModeInClinic,
		},
		{
			name:    "wrongly typed display fields",
			payload: `{"name":"A","hospital":42,"languages":"English"}`,
			fees:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Doctor
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &d))

			assert.Equal(t, "A", d.Name)
			assert.Equal(t, tt.speciality, nilIfEmpty(d.Speciality))
			assert.Equal(t, tt.experience, d.Experience)
			assert.True(t, d.Fees.Equal(decimal.RequireFromString(tt.fees)), "fees = %s", d.Fees)
			assert.Equal(t, tt.mode, d.Mode)
			assert.Empty(t, d.Hospital)
			assert.Empty(t, d.Languages)
		})
	}
}

func TestDoctor_UnmarshalJSON_NotAnObject(t *testing.T) {
	var d Doctor
	assert.Error(t, json.Unmarshal([]byte(`["A"]`), &d))
}

func TestDoctor_HasSpeciality(t *testing.T) {
	d := Doctor{Speciality: []string{"ENT"}}

	assert.True(t, d.HasSpeciality("ENT"))
	assert.False(t, d.HasSpeciality("ent"))
	assert.False(t, Doctor{}.HasSpeciality("ENT"))
}

func TestSpecialties_Vocabulary(t *testing.T) {
	assert.Len(t, Specialties, 24)
	assert.True(t, IsKnownSpecialty("Dietitian/Nutritionist"))
	assert.False(t, IsKnownSpecialty("Surgeon"))
}

func TestParseSortKey(t *testing.T) {
	key, ok := ParseSortKey("fees")
	assert.True(t, ok)
	assert.Equal(t, SortByFees, key)

	key, ok = ParseSortKey("rating")
	assert.False(t, ok)
	assert.Equal(t, SortNone, key)
}

func TestParseSpecialtyMatch(t *testing.T) {
	match, ok := ParseSpecialtyMatch(" ANY ")
	assert.True(t, ok)
	assert.Equal(t, MatchAny, match)

	match, ok = ParseSpecialtyMatch("some")
	assert.False(t, ok)
	assert.Equal(t, MatchAll, match)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"ENT", "Dentist"}, SplitList(" ENT,,Dentist,ENT "))
	assert.Nil(t, SplitList(""))
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
