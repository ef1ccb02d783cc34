// Package models defines the roster record and its fixed column schema.
//
// The header text is the contract with downstream consumers, which look
// columns up by name. Column order never changes between runs.
package models

import (
	"fmt"

	"github.com/ajitpratap0/rostergen/pkg/hierarchy"
	"github.com/ajitpratap0/rostergen/pkg/refdata"
)

// Flat column headers in output order.
const (
	ColFirstName        = "Employee First Name"
	ColLastName         = "Employee Last Name"
	ColEmployeeID       = "Employee ID"
	ColEmploymentType   = "Employment Type"
	ColEmploymentStatus = "Employment Status"
	ColHireDate         = "Hire Date"
	ColContractEndDate  = "Contract End Date"
	ColLegalEntity      = "Legal Entity"
	ColJobTitle         = "Job Title"
	ColJobCode          = "Job Code"
	ColJobFamily        = "Job Family"
	ColGrade            = "Job Grade / Band"
	ColManager          = "Manager Name"
	ColRegion           = "Region"
	ColSubRegion        = "Sub-Region / Country"
	ColCountry          = "Country"
	ColCity             = "Employee Location (City)"
	ColSiteCode         = "Office / Site Code"
	ColCostCenter       = "Cost Center"
	ColCostCenterName   = "Cost Center Name"
	ColBusinessLine     = "Business Line"
)

// HireDateLayout is the text format of the hire date column.
const HireDateLayout = "01/02/2006"

// flatColumns is the flat part of the schema, in order.
var flatColumns = []string{
	ColFirstName, ColLastName, ColEmployeeID,
	ColEmploymentType, ColEmploymentStatus, ColHireDate, ColContractEndDate,
	ColLegalEntity, ColJobTitle, ColJobCode, ColJobFamily, ColGrade,
	ColManager, ColRegion, ColSubRegion, ColCountry,
	ColCity, ColSiteCode,
	ColCostCenter, ColCostCenterName, ColBusinessLine,
}

// FlatColumnCount is the number of non-SNODE columns.
var FlatColumnCount = len(flatColumns)

// Columns returns the full header: flat columns then SNODE L1..L15.
func Columns() []string {
	cols := make([]string, 0, len(flatColumns)+refdata.Levels)
	cols = append(cols, flatColumns...)
	for lvl := 1; lvl <= refdata.Levels; lvl++ {
		cols = append(cols, hierarchy.Header(lvl))
	}
	return cols
}

// EmployeeRecord is one row of the roster.
type EmployeeRecord struct {
	FirstName        string
	LastName         string
	EmployeeID       string
	EmploymentType   string
	EmploymentStatus string
	HireDate         string
	ContractEndDate  string
	LegalEntity      string
	JobTitle         string
	JobCode          string
	JobFamily        string
	Grade            string
	Manager          string
	Region           string
	SubRegion        string
	Country          string
	City             string
	SiteCode         string
	CostCenter       string
	CostCenterName   string
	BusinessLine     string
	Path             hierarchy.OrgPath
	Depth            int
	SNODE            hierarchy.SNODE
}

// Values returns the record as text in Columns() order.
func (r *EmployeeRecord) Values() []string {
	vals := []string{
		r.FirstName, r.LastName, r.EmployeeID,
		r.EmploymentType, r.EmploymentStatus, r.HireDate, r.ContractEndDate,
		r.LegalEntity, r.JobTitle, r.JobCode, r.JobFamily, r.Grade,
		r.Manager, r.Region, r.SubRegion, r.Country,
		r.City, r.SiteCode,
		r.CostCenter, r.CostCenterName, r.BusinessLine,
	}
	return append(vals, r.SNODE[:]...)
}

// FromValues parses a row in Columns() order. The org path is taken from
// SNODE L3..L6 and Depth from the highest populated level.
func FromValues(vals []string) (*EmployeeRecord, error) {
	want := len(flatColumns) + refdata.Levels
	if len(vals) != want {
		return nil, fmt.Errorf("expected %d columns, got %d", want, len(vals))
	}
	r := &EmployeeRecord{
		FirstName:        vals[0],
		LastName:         vals[1],
		EmployeeID:       vals[2],
		EmploymentType:   vals[3],
		EmploymentStatus: vals[4],
		HireDate:         vals[5],
		ContractEndDate:  vals[6],
		LegalEntity:      vals[7],
		JobTitle:         vals[8],
		JobCode:          vals[9],
		JobFamily:        vals[10],
		Grade:            vals[11],
		Manager:          vals[12],
		Region:           vals[13],
		SubRegion:        vals[14],
		Country:          vals[15],
		City:             vals[16],
		SiteCode:         vals[17],
		CostCenter:       vals[18],
		CostCenterName:   vals[19],
		BusinessLine:     vals[20],
	}
	copy(r.SNODE[:], vals[len(flatColumns):])
	r.Path = hierarchy.OrgPath{
		Division:   r.SNODE.Level(3),
		Department: r.SNODE.Level(4),
		Team:       r.SNODE.Level(5),
		SubTeam:    r.SNODE.Level(6),
	}
	r.Depth = r.SNODE.EffectiveDepth()
	return r, nil
}

// ValidateHeader checks that header matches Columns() exactly.
func ValidateHeader(header []string) error {
	cols := Columns()
	if len(header) != len(cols) {
		return fmt.Errorf("header has %d columns, expected %d", len(header), len(cols))
	}
	for i, name := range cols {
		if header[i] != name {
			return fmt.Errorf("column %d is %q, expected %q", i+1, header[i], name)
		}
	}
	return nil
}
