package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a blossom's hit box in the hit-test space. It mirrors
// Position and is never the source of truth for it.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space indexes blossom hit boxes for pointer hit tests
var Space = donburi.NewComponentType[resolv.Space]()
