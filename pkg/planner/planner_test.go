package planner_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cardforge/pkg/adapters/mapping"
	"github.com/aretw0/cardforge/pkg/core"
	"github.com/aretw0/cardforge/pkg/planner"
)

var (
	noteC    = core.Note{Name: "C", LocalizedName: "Do", FontChar: "c", StaffPosition: -1.0}
	noteCs   = core.Note{Name: "C#", LocalizedName: "Do#", FontChar: "", StaffPosition: -1.0}
	noteAsHi = core.Note{Name: "A#²", LocalizedName: "La#²", FontChar: "h", StaffPosition: 1.5}
)

func altoC(notes ...core.Note) core.OcarinaDefinition {
	return core.OcarinaDefinition{
		ID:       "12H_AltoC",
		Label:    "12-Hole Alto C",
		FontName: "Open 12 Hole Ocarina 1",
		Notes:    notes,
	}
}

func jobNames(jobs []core.RenderJob) []string {
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.String())
	}
	return names
}

func TestPlan_Scenario(t *testing.T) {
	variant := altoC(noteC, noteCs, noteAsHi)
	reg := mapping.New(variant)
	p := planner.New()

	t.Run("Full", func(t *testing.T) {
		plan := p.Plan(reg, core.ModeFull)

		want := []core.RenderJob{
			{Variant: variant, Note: noteC},
			{Variant: variant, Note: noteAsHi},
		}
		if diff := cmp.Diff(want, plan.Jobs); diff != "" {
			t.Errorf("jobs mismatch (-want +got):\n%s", diff)
		}
		assert.Len(t, plan.Variants, 1)
		assert.Equal(t, 3, plan.Candidates)
		assert.Equal(t, 2, plan.Eligible)
		assert.Equal(t, core.ModeFull, plan.Mode)
	})

	t.Run("Single", func(t *testing.T) {
		plan := p.Plan(reg, core.ModeSingle)
		assert.Equal(t, []string{"12H_AltoC/A#²"}, jobNames(plan.Jobs))
		assert.Len(t, plan.Variants, 1)
	})

	t.Run("Representative", func(t *testing.T) {
		plan := p.Plan(reg, core.ModeRepresentative)
		assert.Equal(t, []string{"12H_AltoC/C", "12H_AltoC/A#²"}, jobNames(plan.Jobs))
		assert.Len(t, plan.Variants, 1)
	})
}

func TestPlan_Single(t *testing.T) {
	t.Run("Reference Anywhere", func(t *testing.T) {
		reg := mapping.New(
			altoC(noteC),
			core.OcarinaDefinition{ID: "other", Notes: []core.Note{noteC, noteAsHi}},
		)
		plan := planner.New().Plan(reg, core.ModeSingle)

		require.Len(t, plan.Jobs, 1)
		assert.Equal(t, "other/A#²", plan.Jobs[0].String())
		require.Len(t, plan.Variants, 1)
		assert.Equal(t, "other", plan.Variants[0].ID)
	})

	t.Run("Fallback To First Eligible", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		reg := mapping.New(altoC(noteCs, core.Note{Name: "D", FontChar: "d"}, noteC))

		plan := planner.New(planner.WithLogger(logger)).Plan(reg, core.ModeSingle)

		assert.Equal(t, []string{"12H_AltoC/D"}, jobNames(plan.Jobs))
		assert.Contains(t, logs.String(), "reference note not found")
	})

	t.Run("Custom Reference", func(t *testing.T) {
		reg := mapping.New(altoC(noteC, noteAsHi))
		p := planner.New(planner.WithReferenceNote("C"))

		assert.Equal(t, "C", p.ReferenceNote())
		assert.Equal(t, []string{"12H_AltoC/C"}, jobNames(p.Plan(reg, core.ModeSingle).Jobs))
	})

	t.Run("Reference In Another Unicode Form", func(t *testing.T) {
		// Composed in the mapping, decomposed in the configuration.
		mi := core.Note{Name: "Mi\u00e9", LocalizedName: "Mi\u00e9", FontChar: "m"}
		reg := mapping.New(altoC(noteC, mi))
		var logs bytes.Buffer
		p := planner.New(
			planner.WithReferenceNote("Mie\u0301"),
			planner.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		)

		assert.Equal(t, []string{"12H_AltoC/Mi\u00e9"}, jobNames(p.Plan(reg, core.ModeSingle).Jobs))
		assert.NotContains(t, logs.String(), "reference note not found")
	})

	t.Run("Nothing Eligible", func(t *testing.T) {
		reg := mapping.New(altoC(noteCs))
		plan := planner.New().Plan(reg, core.ModeSingle)

		assert.True(t, plan.Empty())
		assert.Empty(t, plan.Variants)
	})
}

func TestPlan_Representative_AllBuckets(t *testing.T) {
	notes := []core.Note{
		{Name: "C", FontChar: "a"},
		{Name: "D", FontChar: "b"},
		{Name: "C#", FontChar: "c"},
		{Name: "D#", FontChar: "d"},
		{Name: "C²", FontChar: "e"},
		{Name: "C#²", FontChar: "f"},
		{Name: "D²", FontChar: "g"},
	}
	reg := mapping.New(altoC(notes...))

	plan := planner.New().Plan(reg, core.ModeRepresentative)

	assert.Equal(t, []string{"12H_AltoC/C", "12H_AltoC/C#", "12H_AltoC/C²", "12H_AltoC/C#²"}, jobNames(plan.Jobs))
}

func TestPlan_UnknownModeIsFull(t *testing.T) {
	reg := mapping.New(altoC(noteC, noteAsHi))
	plan := planner.New().Plan(reg, core.Mode("bogus"))

	assert.Equal(t, core.ModeFull, plan.Mode)
	assert.Len(t, plan.Jobs, 2)
}

// randomRegistry builds variants whose note names mix the sharp and high markers.
func randomRegistry(r *rand.Rand) *mapping.Registry {
	var variants []core.OcarinaDefinition
	variantCount := 1 + r.Intn(4)
	for v := 0; v < variantCount; v++ {
		def := core.OcarinaDefinition{ID: fmt.Sprintf("v%d", v), Label: "variant"}
		noteCount := r.Intn(12)
		for n := 0; n < noteCount; n++ {
			name := string(rune('A' + r.Intn(7)))
			if r.Intn(2) == 0 {
				name += core.SharpMarker
			}
			if r.Intn(3) == 0 {
				name += core.HighMarker
			}
			name += fmt.Sprint(n)
			glyph := ""
			if r.Intn(4) != 0 {
				glyph = string(rune('a' + n))
			}
			def.Notes = append(def.Notes, core.Note{Name: name, FontChar: glyph})
		}
		variants = append(variants, def)
	}
	return mapping.New(variants...)
}

func TestPlan_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	p := planner.New(planner.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	modes := []core.Mode{core.ModeFull, core.ModeSingle, core.ModeRepresentative}

	for i := 0; i < 200; i++ {
		reg := randomRegistry(r)
		for _, mode := range modes {
			plan := p.Plan(reg, mode)

			ids := map[string]bool{}
			for _, j := range plan.Jobs {
				require.True(t, j.Note.Eligible(), "ineligible note %s planned in %s", j, mode)
				ids[j.Variant.ID] = true
			}
			require.Len(t, plan.Variants, len(ids), "one base per distinct variant in %s", mode)

			switch mode {
			case core.ModeSingle:
				require.LessOrEqual(t, len(plan.Jobs), 1)
			case core.ModeRepresentative:
				require.LessOrEqual(t, len(plan.Jobs), 4)
				buckets := map[planner.Bucket]bool{}
				for _, j := range plan.Jobs {
					b := planner.BucketOf(j.Note)
					require.False(t, buckets[b], "bucket %+v chosen twice", b)
					buckets[b] = true
				}
			case core.ModeFull:
				require.Equal(t, plan.Eligible, len(plan.Jobs))
			}
		}
	}
}

func TestDistinctVariants_FirstSeenOrder(t *testing.T) {
	a := core.OcarinaDefinition{ID: "a"}
	b := core.OcarinaDefinition{ID: "b"}
	jobs := []core.RenderJob{{Variant: b}, {Variant: a}, {Variant: b}, {Variant: a}}

	got := planner.DistinctVariants(jobs)

	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestPlanner_State(t *testing.T) {
	p := planner.New()
	assert.Equal(t, planner.PlannerState{ReferenceNote: planner.DefaultReferenceNote}, p.State())
	assert.Equal(t, "planner", p.ComponentType())
}
