package renderer

type tileRect struct {
	x, y, w, h int
}

// tileRects partitions a width x height image into row-major tiles of at
// most size x size, per spec.md §4.9: edge tiles are clipped to the image.
func tileRects(width, height, size int) []tileRect {
	if width <= 0 || height <= 0 {
		return nil
	}

	var rects []tileRect
	for ty := 0; ty < height; ty += size {
		for tx := 0; tx < width; tx += size {
			w := size
			if tx+w > width {
				w = width - tx
			}
			h := size
			if ty+h > height {
				h = height - ty
			}
			rects = append(rects, tileRect{x: tx, y: ty, w: w, h: h})
		}
	}
	return rects
}
