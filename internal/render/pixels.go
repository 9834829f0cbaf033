// Package render turns flat cell buffers into RGBA pixels.
package render

import "image/color"

// fillBinaryRGBA writes one RGBA pixel per cell into buf, using on for
// non-zero cells and off otherwise. It reports false, leaving buf alone,
// when buf cannot hold every cell.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) bool {
	if len(buf) < 4*len(cells) {
		return false
	}
	onPx := color.RGBAModel.Convert(on).(color.RGBA)
	offPx := color.RGBAModel.Convert(off).(color.RGBA)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
	return true
}
