package style

// triplet is an RGB reference value in one of the palettes.
type triplet struct {
	r, g, b uint8
}

// standardPalette holds the reference RGB values of the 16 named colors.
var standardPalette = [16]triplet{
	{0, 0, 0},
	{128, 0, 0},
	{0, 128, 0},
	{128, 128, 0},
	{0, 0, 128},
	{128, 0, 128},
	{0, 128, 128},
	{192, 192, 192},
	{128, 128, 128},
	{255, 0, 0},
	{0, 255, 0},
	{255, 255, 0},
	{0, 0, 255},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
}

// Color cube levels for indices 16-231.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

const grayscaleStart = 232

// fullPalette is the 256 entry reference table, built once.
var fullPalette = func() [256]triplet {
	var p [256]triplet
	copy(p[:16], standardPalette[:])
	for i := 16; i < grayscaleStart; i++ {
		n := i - 16
		p[i] = triplet{cubeLevels[n/36], cubeLevels[(n%36)/6], cubeLevels[n%6]}
	}
	for i := grayscaleStart; i < 256; i++ {
		v := uint8(8 + (i-grayscaleStart)*10)
		p[i] = triplet{v, v, v}
	}
	return p
}()

func paletteRGB(n uint8) triplet {
	return fullPalette[n]
}

func distance(a, b triplet) int {
	dr := int(a.r) - int(b.r)
	dg := int(a.g) - int(b.g)
	db := int(a.b) - int(b.b)
	return dr*dr + dg*dg + db*db
}

// nearestIn returns the lowest index of the entry closest to t.
func nearestIn(t triplet, entries []triplet) uint8 {
	best := 0
	bestDist := distance(t, entries[0])
	for i := 1; i < len(entries) && bestDist > 0; i++ {
		if d := distance(t, entries[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

func nearest256(t triplet) uint8 {
	return nearestIn(t, fullPalette[:])
}

func nearest16(t triplet) uint8 {
	return nearestIn(t, standardPalette[:])
}
