// Package minla computes minimum-cost linear arrangements of trees.
//
// Three variants of the problem are solved, each returning the optimal
// cost together with an arrangement realizing it:
//
//   - Unconstrained: minimum sum of edge lengths over all n!
//     arrangements, by divide and conquer around centroids; Shiloach's
//     and Chung's procedures are selectable with WithStrategy.
//   - Planar: minimum over arrangements with no edge crossings.
//   - Projective: minimum over planar arrangements that leave the root
//     uncovered.
//
// Inputs must be valid trees; disconnected or otherwise malformed
// graphs are rejected with core.ErrNotATree. The empty tree costs 0
// with an empty arrangement, the singleton costs 0 under the identity.
package minla
