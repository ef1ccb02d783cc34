// Package report summarizes a roster: how records spread over business
// lines, job families and cost centers, how many distinct titles exist and
// how deep the SNODE codes go. The summary is diagnostic output only.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"

	"github.com/ajitpratap0/rostergen/pkg/models"
)

// Count is one bucket of a frequency table.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DepthCount is one bucket of the SNODE depth distribution.
type DepthCount struct {
	Depth   int     `json:"depth"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Stats is the summary of a record list. Frequency tables are sorted by
// count descending, then name. Depths are sorted ascending.
type Stats struct {
	Records         int          `json:"records"`
	Columns         int          `json:"columns"`
	BusinessLines   []Count      `json:"business_lines"`
	JobFamilies     []Count      `json:"job_families"`
	CostCenters     []Count      `json:"cost_centers"`
	UniqueJobTitles int          `json:"unique_job_titles"`
	Depths          []DepthCount `json:"snode_depths"`
}

// Compute builds the summary. The depth of a record is its highest populated
// SNODE level, read from the labels rather than the assigned depth.
func Compute(records []*models.EmployeeRecord) *Stats {
	lines := map[string]int{}
	families := map[string]int{}
	centers := map[string]int{}
	titles := map[string]struct{}{}
	depths := map[int]int{}

	for _, r := range records {
		lines[r.BusinessLine]++
		families[r.JobFamily]++
		centers[r.CostCenterName]++
		titles[r.JobTitle] = struct{}{}
		depths[r.SNODE.EffectiveDepth()]++
	}

	s := &Stats{
		Records:         len(records),
		Columns:         len(models.Columns()),
		BusinessLines:   sortedCounts(lines),
		JobFamilies:     sortedCounts(families),
		CostCenters:     sortedCounts(centers),
		UniqueJobTitles: len(titles),
		Depths:          make([]DepthCount, 0, len(depths)),
	}
	for d, n := range depths {
		s.Depths = append(s.Depths, DepthCount{
			Depth:   d,
			Count:   n,
			Percent: 100 * float64(n) / float64(len(records)),
		})
	}
	sort.Slice(s.Depths, func(i, j int) bool { return s.Depths[i].Depth < s.Depths[j].Depth })
	return s
}

func sortedCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for name, n := range m {
		out = append(out, Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// PrintText writes the human-readable summary.
func PrintText(w io.Writer, path string, s *Stats) error {
	p := &printer{w: w}
	if path != "" {
		p.printf("Written %d employees to %s\n", s.Records, path)
	} else {
		p.printf("Read %d employees\n", s.Records)
	}
	p.printf("Columns: %d\n", s.Columns)

	p.table("Business Lines", s.BusinessLines)
	p.table("Job Families", s.JobFamilies)
	p.table("Cost Centers", s.CostCenters)

	p.printf("\nUnique Job Titles: %d\n", s.UniqueJobTitles)
	p.printf("\nSNODE Depth Distribution:\n")
	for _, d := range s.Depths {
		p.printf("  L%d: %d employees (%.1f%%)\n", d.Depth, d.Count, d.Percent)
	}
	return p.err
}

// PrintJSON writes the summary as one indented JSON document.
func PrintJSON(w io.Writer, path string, s *Stats) error {
	doc := struct {
		Path string `json:"path,omitempty"`
		*Stats
	}{Path: path, Stats: s}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) table(title string, counts []Count) {
	p.printf("\n%s (%d):\n", title, len(counts))
	for _, c := range counts {
		p.printf("  %s: %d\n", c.Name, c.Count)
	}
}
