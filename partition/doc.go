// SPDX-License-Identifier: MIT

// Package partition chooses the dimension n of the active subspace from a
// descending eigenvalue spectrum, optionally informed by bootstrap statistics.
//
// Three selectors are available through the closed enumeration Kind:
//
//   - Eig: largest gap in log-eigenvalues, log e[k−1] − log e[k].
//   - ErrBound: minimizes √(e₀+…+e_{k−1})·ε(k) + √(e_k+…+e_{m−1}), where ε(k) is
//     the bootstrap mean subspace distance at dimension k.
//   - Ladle: minimizes the ladle criterion of Luo & Li, the sum of the
//     normalized eigenvalue e[k]/(1+Σe) and the normalized mean bootstrap
//     eigenvector variability f(k)/(1+Σf), with f(0) = 0.
//
// Every selector returns n ∈ [1, m−1] (ties resolve to the smallest n) and
// the per-k criterion it optimized, indexed for k = 1..m−1.
package partition
