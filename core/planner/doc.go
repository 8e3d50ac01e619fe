// Package planner implements the multi-step move planning pass over a
// student roster.
//
// It takes the courses ranked by imbalance and, course by course,
// searches for students that can move from the line with the highest
// enrollment to the line with the lowest, into the least-filled class
// section. Moves are applied to a working copy of the roster as soon as
// they are decided, so every subsequent search sees up-to-date counts.
//
// Key components:
//   - Finder: selects the next candidate move for one course.
//   - Planner: orchestrates the finder across ranked courses and
//     assembles the final Plan with before/after distributions.
//   - guard: enforces the global safeguards (one move per student per
//     course, per-student total move cap) against live counters.
//
// The pass is greedy and order-dependent: it never backtracks, never
// tries alternative line pairs for a course, and never optimizes across
// courses jointly. Exhaustion is a normal terminal state
// (still_unbalanced), not an error.
package planner
