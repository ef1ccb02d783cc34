package sampler

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/rostergen/pkg/hierarchy"
	"github.com/ajitpratap0/rostergen/pkg/models"
	"github.com/ajitpratap0/rostergen/pkg/refdata"
	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

var idPattern = regexp.MustCompile(`^[A-HJ-NP-Z][0-9]{6}$`)

type countingObserver struct {
	records    map[string]int
	depths     map[int]int
	collisions int
}

func (o *countingObserver) RecordGenerated(bl string, depth int) {
	if o.records == nil {
		o.records = map[string]int{}
		o.depths = map[int]int{}
	}
	o.records[bl]++
	o.depths[depth]++
}

func (o *countingObserver) IDCollision() { o.collisions++ }

func generate(t *testing.T, seed uint64, n int, opts ...Option) []*models.EmployeeRecord {
	t.Helper()
	s, err := New(Config{Seed: seed}, refdata.Default(), opts...)
	require.NoError(t, err)
	records, err := s.Generate(context.Background(), n)
	require.NoError(t, err)
	require.Len(t, records, n)
	return records
}

func TestGenerate_RecordsAreConsistent(t *testing.T) {
	catalog := refdata.Default()
	s, err := New(Config{Seed: 42}, catalog)
	require.NoError(t, err)
	records, err := s.Generate(context.Background(), 1000)
	require.NoError(t, err)

	managers := map[string]bool{}
	for _, m := range s.Managers() {
		managers[m] = true
	}
	assert.Len(t, s.Managers(), DefaultManagerPoolSize)

	seen := map[string]bool{}
	for i, r := range records {
		assert.Truef(t, idPattern.MatchString(r.EmployeeID), "record %d id %q", i, r.EmployeeID)
		assert.Falsef(t, seen[r.EmployeeID], "duplicate id %s", r.EmployeeID)
		seen[r.EmployeeID] = true

		bl, ok := catalog.BusinessLine(r.BusinessLine)
		require.True(t, ok)
		assert.True(t, hierarchy.Contains(*bl, r.Path), "path %+v not in %s", r.Path, bl.Name)
		assert.Contains(t, bl.CostCenters, refdata.CostCenter{Code: r.CostCenter, Name: r.CostCenterName})
		assert.Contains(t, bl.JobFamilies, r.JobFamily)
		assert.Contains(t, catalog.Grades, r.Grade)

		_, graded := refdata.ContainsGrade(r.JobTitle, catalog.Grades)
		assert.Falsef(t, graded, "title %q contains a grade", r.JobTitle)

		region, ok := catalog.Region(r.Region)
		require.True(t, ok)
		assert.Equal(t, region.LegalEntity, r.LegalEntity)

		assert.Equal(t, EmploymentType, r.EmploymentType)
		assert.Equal(t, EmploymentStatus, r.EmploymentStatus)
		assert.Empty(t, r.ContractEndDate)
		assert.True(t, managers[r.Manager])
		assert.Regexp(t, `^[1-9][0-9]{5}$`, r.JobCode)

		hired, err := time.Parse(models.HireDateLayout, r.HireDate)
		require.NoError(t, err)
		assert.False(t, hired.Before(hireDateFirst))
		assert.False(t, hired.After(hireDateLast))

		assert.Equal(t, "Commercial Bank", r.SNODE.Level(1))
		assert.Equal(t, r.BusinessLine, r.SNODE.Level(2))
		assert.Equal(t, r.Path.Division, r.SNODE.Level(3))
		assert.Equal(t, r.Path.SubTeam, r.SNODE.Level(6))
		assert.GreaterOrEqual(t, r.Depth, hierarchy.MinDepth)
		assert.Equal(t, r.Depth, r.SNODE.EffectiveDepth())
		for lvl := 1; lvl <= refdata.Levels; lvl++ {
			if lvl <= r.Depth {
				assert.NotEmptyf(t, r.SNODE.Level(lvl), "record %d level %d", i, lvl)
			} else {
				assert.Emptyf(t, r.SNODE.Level(lvl), "record %d level %d", i, lvl)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(t, 7, 300)
	b := generate(t, 7, 300)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different records (-a +b):\n%s", diff)
	}

	c := generate(t, 8, 300)
	assert.NotEqual(t, a[0].EmployeeID+a[1].EmployeeID, c[0].EmployeeID+c[1].EmployeeID)
}

func TestGenerate_PrefixStable(t *testing.T) {
	short := generate(t, 42, 50)
	long := generate(t, 42, 120)
	if diff := cmp.Diff(short, long[:50]); diff != "" {
		t.Fatalf("first records depend on count (-short +long):\n%s", diff)
	}
}

func TestGenerate_DepthDistribution(t *testing.T) {
	const n = 20000
	obs := &countingObserver{}
	records := generate(t, 42, n, WithObserver(obs))

	counts := map[int]int{}
	for _, r := range records {
		counts[r.Depth]++
	}
	assert.Equal(t, counts, obs.depths)

	want := map[int]float64{15: 0.05, 14: 0.15, 13: 0.30, 12: 0.50}
	for depth, frac := range want {
		assert.InDeltaf(t, frac, float64(counts[depth])/n, 0.02, "depth %d", depth)
	}
	assert.Len(t, counts, 4)
}

func TestGenerate_BusinessLineWeights(t *testing.T) {
	const n = 20000
	obs := &countingObserver{}
	generate(t, 3, n, WithObserver(obs))

	catalog := refdata.Default()
	total := 0.0
	for _, bl := range catalog.BusinessLines {
		total += bl.Weight
	}
	for _, bl := range catalog.BusinessLines {
		assert.InDeltaf(t, bl.Weight/total, float64(obs.records[bl.Name])/n, 0.02, "business line %s", bl.Name)
	}
}

func TestGenerate_Zero(t *testing.T) {
	records := generate(t, 42, 0)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestGenerate_Errors(t *testing.T) {
	s, err := New(Config{Seed: 1}, refdata.Default())
	require.NoError(t, err)

	_, err = s.Generate(context.Background(), -1)
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeValidation))

	_, err = s.Generate(context.Background(), IDSpace+1)
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeValidation))
	assert.ErrorContains(t, err, "id space")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Generate(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_RejectsBadInput(t *testing.T) {
	empty := refdata.Default()
	empty.BusinessLines = nil
	_, err := New(Config{}, empty)
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeData))

	_, err = New(Config{ManagerPoolSize: -1}, refdata.Default())
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeValidation))

	_, err = New(Config{MaxIDAttempts: -5}, refdata.Default())
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeValidation))
}

func TestNew_ManagerPoolSize(t *testing.T) {
	s, err := New(Config{Seed: 1, ManagerPoolSize: 3}, refdata.Default())
	require.NoError(t, err)
	require.Len(t, s.Managers(), 3)
	for _, m := range s.Managers() {
		assert.Len(t, strings.Fields(m), 2, m)
	}
}

func TestTitle_SkipsGradedNames(t *testing.T) {
	catalog := refdata.Default()
	catalog.BusinessLines = []refdata.BusinessLine{{
		Name:        "Human Resources",
		Weight:      1,
		CostCenters: []refdata.CostCenter{{Code: "CC9001", Name: "HR Campus"}},
		JobFamilies: []string{"Talent"},
		Divisions: []refdata.Division{{Name: "Talent", Departments: []refdata.Department{{
			Name: "Campus Recruiting",
			Teams: []refdata.Team{
				{Name: "Associate Program", SubTeams: []string{"Analyst Program"}},
				{Name: "Internships", SubTeams: []string{"Analyst Program"}},
			},
		}}}},
	}}

	s, err := New(Config{Seed: 9}, catalog)
	require.NoError(t, err)
	records, err := s.Generate(context.Background(), 200)
	require.NoError(t, err)

	bases := map[string]bool{}
	for _, r := range records {
		_, graded := refdata.ContainsGrade(r.JobTitle, catalog.Grades)
		require.Falsef(t, graded, "title %q", r.JobTitle)

		switch r.Path.Team {
		case "Associate Program":
			assert.True(t, strings.HasPrefix(r.JobTitle, "Campus Recruiting "), r.JobTitle)
			bases["department"] = true
		case "Internships":
			assert.True(t, strings.HasPrefix(r.JobTitle, "Internships "), r.JobTitle)
			bases["team"] = true
		}
	}
	assert.Len(t, bases, 2)
}

func TestIDAllocator_Exhausted(t *testing.T) {
	taken := drawID(rand.New(rand.NewPCG(1, 2)))

	collisions := 0
	a := newIDAllocator(1, func() { collisions++ })
	a.used[taken] = struct{}{}

	_, err := a.next(rand.New(rand.NewPCG(1, 2)))
	require.Error(t, err)
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeExhausted))
	assert.Equal(t, 1, collisions)
	assert.Equal(t, IDSpace-1, a.remaining())
}

func TestIDAllocator_RetriesPastCollision(t *testing.T) {
	taken := drawID(rand.New(rand.NewPCG(5, 6)))

	collisions := 0
	a := newIDAllocator(0, func() { collisions++ })
	assert.Equal(t, DefaultMaxIDAttempts, a.maxAttempts)
	a.used[taken] = struct{}{}

	id, err := a.next(rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)
	assert.NotEqual(t, taken, id)
	assert.Equal(t, 1, collisions)
	assert.Regexp(t, idPattern, id)
}

func TestWeighted(t *testing.T) {
	_, err := NewWeighted(nil)
	assert.Error(t, err)
	_, err = NewWeighted([]float64{0, 0})
	assert.ErrorContains(t, err, "sum to zero")
	_, err = NewWeighted([]float64{1, -1})
	assert.ErrorContains(t, err, "negative")

	w, err := NewWeighted([]float64{0, 3, 0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 4.0, w.Total())

	rng := rand.New(rand.NewPCG(11, 12))
	counts := make([]int, 5)
	const n = 40000
	for i := 0; i < n; i++ {
		counts[w.Pick(rng)]++
	}
	assert.Zero(t, counts[0])
	assert.Zero(t, counts[2])
	assert.Zero(t, counts[4])
	assert.InDelta(t, 0.75, float64(counts[1])/n, 0.01)
	assert.InDelta(t, 0.25, float64(counts[3])/n, 0.01)
}

func TestHireDateRange(t *testing.T) {
	assert.Equal(t, 9284, hireDateDays)
}
