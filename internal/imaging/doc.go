// Package imaging connects image files to the edge package.
//
// It loads and caches images, selects the region a detector should see,
// converts pixels to 8-bit luminance grids, and turns detector output back
// into base64 PNG payloads: single edge maps, a color rendering of the
// gradient field, and a labelled comparison panel.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner.
// For regions, (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The conversion and rendering
// functions keep no state.
package imaging
