// Package maxprec implements the MaxPrecisionIndex (component C): for each
// variable i, it tracks kappa_i = max_{j: i in V_j} pi_{ji} under insertion
// and update, in O(log s_i) where s_i is the number of factors touching i.
//
// The representation is one indexed binary max-heap per variable, generalizing
// the lazy-deletion container/heap priority queues used elsewhere in this
// corpus (see dijkstra, prim_kruskal): instead of pushing a fresh entry and
// ignoring stale ones, each entry carries a back-reference so Update can
// locate and fix it in place (container/heap's decrease/increase-key idiom:
// mutate, then heap.Fix). This is required here because selective damping
// needs an exact, always-current maximum, not an eventually-consistent one.
package maxprec
