// Package recommendation composes a scenario, a resolved seed and the
// operator's topology and transport into the final Recommendation.
//
// The external command always has the positional form
//
//	<tool> <topology> <transport> <seed> <duration>
//
// and Build never reorders or omits those fields. Identical requests with
// the same seed produce identical Recommendations, including the run ID.
package recommendation
