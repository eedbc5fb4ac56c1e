// Package rounded clips the corners of PNG images to circular arcs.
//
// # Overview
//
// rounded is a small Pure Go image transform from the GoGPU ecosystem. It
// decodes a PNG, builds a hard-edged rounded-rectangle alpha mask,
// replaces the image's alpha channel with the mask and encodes the result
// as PNG again. Color channels are copied unchanged.
//
// # Quick Start
//
//	import "github.com/gogpu/rounded"
//
//	out, err := rounded.Round(pngData, 128, 128, 20)
//	if err != nil {
//	    // errors.Is(err, rounded.ErrDecode) etc.
//	}
//
// Hosts that only understand "bytes in, bytes out" call
// [AddRoundedCorners], which reports every failure as an empty slice.
//
// # Mask Geometry
//
// The opaque region is the union of two bands and four disks:
//
//	x in [r, w-r), y in [0, h)
//	x in [0, w),   y in [r, h-r)
//	disks of radius r at (r, r), (w-1-r, r), (r, h-1-r), (w-1-r, h-1-r)
//
// A pixel (x, y) is inside a disk centred at (cx, cy) when
// (x-cx)² + (y-cy)² <= r². Edges are not anti-aliased. Geometry with
// 2*r > w or 2*r > h is rejected with [ErrInvalidGeometry].
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Logging
//
// Diagnostics go to [log/slog]. The package default is silent; install one
// with [SetLogger] or pass [WithLogger] to a single call.
package rounded

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
