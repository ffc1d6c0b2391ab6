// SPDX-License-Identifier: MIT

// Package estimator builds the weighted second-moment matrices that define an
// active subspace and ranks their eigenbasis through eigen.Sorted.
//
// Five estimators are provided, selected by the closed enumeration Kind:
//
//	Active             C = Σ wᵢ ∇fᵢ ∇fᵢᵀ
//	NormalizedActive   same, with every gradient scaled to unit length
//	ActiveX            C = sym(Σ wᵢ ∇fᵢ xᵢᵀ), gradient/input cross moment
//	NormalizedActiveX  same, with gradients and inputs scaled to unit length
//	Swarm              gradient-free: pairwise secants (fᵢ−fⱼ)/‖xᵢ−xⱼ‖ along
//	                   the unit directions (xᵢ−xⱼ)/‖xᵢ−xⱼ‖, weighted by wᵢwⱼ
//
// Each Kind declares which arrays of a sample.Set it needs (Kind.Requires);
// the Func returned by Kind.Func validates once and then runs the kernel, so
// kernels never re-check shapes.
//
// All estimators are pure: identical inputs give bit-identical results.
// An all-zero weight vector yields the zero matrix and therefore m zero
// eigenvalues; that is reported as a result, not an error.
package estimator
