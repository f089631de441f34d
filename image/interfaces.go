package image

// Source is a binarized picture: Ink reports whether the dot at (x, y) is
// printed black.
type Source interface {
	Width() int
	Height() int
	Ink(x, y int) bool
}

// Target receives packed rasters, normally a printer session.
type Target interface {
	WriteRaster(r *Raster) error
}
