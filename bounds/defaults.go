// SPDX-License-Identifier: MIT

// Package bounds: numeric policy defaults (single source of truth).
package bounds

const (
	// DefaultEpsilon is the relative tolerance used by oriented shapes, for
	// containment and for the orthonormality check on orientations. For
	// float32 shapes the effective tolerance is raised to a few ULPs of 1.
	DefaultEpsilon = 1e-9

	// slackULPs is the number of ULPs by which derived radii are widened to
	// absorb rounding in transforms and ball merges.
	slackULPs = 4
)

// ---------- error context tags ----------

const (
	opNew            = "New"
	opFromPoints     = "FromPoints"
	opFromMinMax     = "FromMinMax"
	opSetCenter      = "SetCenter"
	opSetRadii       = "SetRadii"
	opSetRadius      = "SetRadius"
	opSetOrientation = "SetOrientation"
	opInclude        = "Include"
	opTransform      = "Transform"
	opChild          = "Child"
)
