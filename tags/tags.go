package tags

import "github.com/yohamta/donburi"

var (
	Blossom = donburi.NewTag().SetName("Blossom")
)

// Resolv tags for the hit-test space
const (
	ResolvBlossom = "blossom"
	ResolvProbe   = "probe"
)
