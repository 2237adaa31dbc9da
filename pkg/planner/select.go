package planner

import "github.com/aretw0/cardforge/pkg/core"

// CrossProduct pairs every variant with every one of its notes, in registry order.
func CrossProduct(variants []core.OcarinaDefinition) []core.RenderJob {
	var jobs []core.RenderJob
	for _, v := range variants {
		for _, n := range v.Notes {
			jobs = append(jobs, core.RenderJob{Variant: v, Note: n})
		}
	}
	return jobs
}

// Eligible drops jobs whose note has no glyph yet.
func Eligible(jobs []core.RenderJob) []core.RenderJob {
	out := make([]core.RenderJob, 0, len(jobs))
	for _, j := range jobs {
		if j.Note.Eligible() {
			out = append(out, j)
		}
	}
	return out
}

// Bucket is a (sharp, high octave) classification of a note.
type Bucket struct {
	Sharp bool
	High  bool
}

// BucketOf classifies a note by the markers in its name.
func BucketOf(n core.Note) Bucket {
	return Bucket{Sharp: core.IsSharp(n.Name), High: core.IsHigh(n.Name)}
}

// Representative keeps the first job seen for each of the four buckets and stops
// once all four are filled. Buckets without a matching job are left out.
func Representative(jobs []core.RenderJob) []core.RenderJob {
	const buckets = 4

	var out []core.RenderJob
	found := make(map[Bucket]bool, buckets)
	for _, j := range jobs {
		b := BucketOf(j.Note)
		if found[b] {
			continue
		}
		found[b] = true
		out = append(out, j)
		if len(found) == buckets {
			break
		}
	}
	return out
}

// DistinctVariants returns the variants referenced by jobs, deduplicated by ID in first-seen order.
func DistinctVariants(jobs []core.RenderJob) []core.OcarinaDefinition {
	var out []core.OcarinaDefinition
	seen := make(map[string]bool)
	for _, j := range jobs {
		if seen[j.Variant.ID] {
			continue
		}
		seen[j.Variant.ID] = true
		out = append(out, j.Variant)
	}
	return out
}
