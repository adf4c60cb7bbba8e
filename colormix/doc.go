// Package colormix provides perceptual colour blending and palette
// generation for assigning distinguishable colours to generated puzzle
// regions (e.g. the polyominoes a divvy call produces, or a Latin square's
// column groups).
//
// What
//
//   - Mix(a, b, t): linearly interpolate two colours in gamma-corrected
//     (linear-light) space rather than raw sRGB, so a 50/50 mix looks like
//     a perceptual midpoint instead of the darker, muddier result naive
//     sRGB averaging produces.
//   - Palette(n, rs): generate n colours spread around the hue wheel at
//     roughly equal angular distance, with a small random jitter from rs so
//     repeated calls at the same n don't look identical across puzzles.
//
// Why
//
//   - A region-partitioning back-end (divvy) has no opinion on how its
//     regions should be rendered, by design (spec Non-goals exclude
//     rendering) — but it is still useful for this module to offer the one
//     piece of colour-assignment logic that is genuinely
//     algorithm-adjacent: turning "n regions" into "n well-separated
//     colours", as opposed to anything screen- or toolkit-specific.
package colormix
