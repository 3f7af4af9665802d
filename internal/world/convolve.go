package world

import "fmt"

// KernelAnchor selects which kernel cell lines up with the output cell.
type KernelAnchor int

const (
	// AnchorTopLeft aligns kernel[0][0] with the output cell.
	AnchorTopLeft KernelAnchor = iota
	// AnchorCenter aligns the middle of a square, odd-sided kernel with the
	// output cell.
	AnchorCenter
)

// hallwayKernel smooths hallway costs so corridors hug existing structure.
var hallwayKernel = [][]float64{
	{1.0 / 8, 2.0 / 8, 1.0 / 8},
	{2.0 / 8, 8.0 / 8, 2.0 / 8},
	{1.0 / 8, 2.0 / 8, 1.0 / 8},
}

// onesKernel returns a height × width kernel of ones.
func onesKernel(height, width int) [][]float64 {
	kernel := make([][]float64, height)
	for x := range kernel {
		kernel[x] = make([]float64, width)
		for y := range kernel[x] {
			kernel[x][y] = 1
		}
	}
	return kernel
}

// padKernel returns a copy of kernel surrounded by pad rings of value.
func padKernel(kernel [][]float64, pad int, value float64) [][]float64 {
	if pad <= 0 || len(kernel) == 0 {
		return kernel
	}
	rows, cols := len(kernel)+2*pad, len(kernel[0])+2*pad
	out := make([][]float64, rows)
	for x := range out {
		out[x] = make([]float64, cols)
		for y := range out[x] {
			kx, ky := x-pad, y-pad
			if kx >= 0 && kx < len(kernel) && ky >= 0 && ky < len(kernel[0]) {
				out[x][y] = kernel[kx][ky]
			} else {
				out[x][y] = value
			}
		}
	}
	return out
}

// convolve applies kernel to field, which must have the grid's shape, and
// returns a new field. Taps that fall outside the field contribute nothing.
// A positive pad grows the kernel by pad rings of padValue first; with
// AnchorTopLeft the unpadded kernel's [0][0] stays aligned with the output
// cell.
//
// Every output value is also recorded as the scratch cost of its tile.
func (g *Grid) convolve(field costField, kernel [][]float64, anchor KernelAnchor, pad int, padValue float64) costField {
	if len(kernel) == 0 || len(kernel[0]) == 0 {
		panic("world: empty convolution kernel")
	}
	if anchor == AnchorCenter && (len(kernel) != len(kernel[0]) || len(kernel)%2 == 0) {
		panic(fmt.Sprintf("world: center anchored kernel must be square and odd, got %dx%d", len(kernel), len(kernel[0])))
	}

	kernel = padKernel(kernel, pad, padValue)

	offX, offY := max(pad, 0), max(pad, 0)
	if anchor == AnchorCenter {
		offX, offY = len(kernel)/2, len(kernel[0])/2
	}

	out := newCostField(g.height, g.width)
	for x := 0; x < g.height; x++ {
		for y := 0; y < g.width; y++ {
			var sum float64
			for kx := range kernel {
				sx := x + kx - offX
				if sx < 0 || sx >= g.height {
					continue
				}
				for ky := range kernel[kx] {
					sy := y + ky - offY
					if sy < 0 || sy >= g.width {
						continue
					}
					sum += field[sx][sy] * kernel[kx][ky]
				}
			}
			out[x][y] = sum
			g.tiles[x][y].Cost = sum
		}
	}
	return out
}
