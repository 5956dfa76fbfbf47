package components

import "github.com/yohamta/donburi"

// SurfaceData describes the drawing surface. Drawing coordinates are in
// layout units; the backing store is LayoutWidth*Density pixels wide.
type SurfaceData struct {
	LayoutWidth   float64
	LayoutHeight  float64
	Density       float64 // device pixel ratio, 1 when unknown
	BackingWidth  int
	BackingHeight int
	Configured    bool
}

var Surface = donburi.NewComponentType[SurfaceData]()
