package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/rostergen/pkg/hierarchy"
)

func sampleRecord() *EmployeeRecord {
	path := hierarchy.OrgPath{Division: "Litigation", Department: "Commercial Litigation", Team: "Contract Disputes", SubTeam: "Vendor Disputes"}
	return &EmployeeRecord{
		FirstName:        "Amélie",
		LastName:         "Dubois",
		EmployeeID:       "K123456",
		EmploymentType:   "Full-Time",
		EmploymentStatus: "Active",
		HireDate:         "03/14/2011",
		LegalEntity:      "First National Bank AG",
		JobTitle:         "Vendor Disputes Advisor",
		JobCode:          "104512",
		JobFamily:        "Litigation",
		Grade:            "Vice President",
		Manager:          "Hans Weber",
		Region:           "EMEA",
		SubRegion:        "Europe",
		Country:          "France",
		City:             "Paris",
		SiteCode:         "CDG01",
		CostCenter:       "CC2080",
		CostCenterName:   "Legal Litigation",
		BusinessLine:     "Legal",
		Path:             path,
		Depth:            12,
		SNODE: hierarchy.Assemble("Commercial Bank", "Legal", path,
			[]string{"Review", "Internal", "Escalation", "Tier 1", "Unit A", "Desk 2"}),
	}
}

func TestColumns(t *testing.T) {
	cols := Columns()

	require.Len(t, cols, 36)
	assert.Equal(t, 21, FlatColumnCount)
	assert.Equal(t, ColFirstName, cols[0])
	assert.Equal(t, ColBusinessLine, cols[20])
	assert.Equal(t, "SNODE L1", cols[21])
	assert.Equal(t, "SNODE L15", cols[35])

	seen := map[string]bool{}
	for _, c := range cols {
		assert.False(t, seen[c], "duplicate column %q", c)
		seen[c] = true
	}
}

func TestValues_RoundTrip(t *testing.T) {
	rec := sampleRecord()
	vals := rec.Values()
	require.Len(t, vals, len(Columns()))
	assert.Equal(t, "K123456", vals[2])
	assert.Equal(t, "104512", vals[9])
	assert.Equal(t, "", vals[6])
	assert.Equal(t, "", vals[len(vals)-1])

	back, err := FromValues(vals)
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}

func TestFromValues_WrongWidth(t *testing.T) {
	_, err := FromValues([]string{"a", "b"})
	assert.ErrorContains(t, err, "expected 36 columns")
}

func TestValidateHeader(t *testing.T) {
	require.NoError(t, ValidateHeader(Columns()))

	short := Columns()[:35]
	assert.ErrorContains(t, ValidateHeader(short), "35 columns")

	swapped := Columns()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	assert.ErrorContains(t, ValidateHeader(swapped), "column 1")
}
