// Package basisfactor implements a sparse basis-matrix factorization and
// update engine for an LP simplex solver.
//
// Given the constraint matrix A (columns stored in compressed form) and an
// ordered list of column indices selecting a square basis submatrix B, the
// Engine produces a triangular factorization PBQ = LU suitable for repeated
// linear solves against B and B^T (Ftran/Btran), and supports a low-rank
// update when one basis column is replaced per simplex iteration (Update).
//
// The surrounding simplex driver that chooses which column enters and
// leaves the basis, the LP model storage, and logging/timing telemetry are
// external collaborators and are not implemented here.
package basisfactor
