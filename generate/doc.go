// Package generate produces trees and arrangements, exhaustively or at
// random.
//
// What this package offers
//
//   - Exhaustive tree enumerators: AllLabelledFree (Prüfer sequences in
//     lexicographic order), AllUnlabelledFree (canonical level sequences
//     by the Wright–Richmond–Odlyzko–McKay successor), AllLabelledRooted
//     (labelled free trees times every root), AllUnlabelledRooted
//     (canonical rooted level sequences).
//   - Uniform random tree samplers: RandLabelledFree (uniform Prüfer),
//     RandLabelledRooted (free tree plus uniform root),
//     RandUnlabelledRooted (the Nijenhuis–Wilf ranrut procedure over a
//     cached table of rooted tree counts), RandUnlabelledFree (Wilf's
//     split into the bicentroidal and unicentroidal cases).
//   - Arrangement generators for a fixed tree: AllProjective, AllPlanar,
//     RandProjective, RandPlanar.
//
// Generator protocol
//
// Every exhaustive generator is constructed positioned on its first
// object. End reports exhaustion, Tree (or Arrangement) materializes the
// current object, Next advances, Reset returns to the first object, and
// YieldTree combines Tree with Next. Enumeration order is deterministic:
// two runs over the same parameters produce the same sequence.
//
// Samplers take a 64-bit seed; seed 0 draws the seed from the operating
// system so that every run differs. Any other seed fixes the stream and
// makes the sampler fully reproducible.
//
// Tree generators share the post-processing flags of Postprocess:
// produced trees can be normalized, annotated with subtree sizes (rooted
// trees), and classified (free trees) before they are handed out. All
// flags start enabled.
//
// Generators are not safe for concurrent use; independent instances are.
package generate
