package components

import "github.com/yohamta/donburi"

// TimeData is the simulation clock. Delta is set by the caller before each
// tick; Elapsed and Tick are advanced by the clock system.
type TimeData struct {
	Delta   float64 // seconds
	Elapsed float64
	Tick    uint64
}

var Time = donburi.NewComponentType[TimeData]()

// DeltaOf returns the current tick length in seconds.
func DeltaOf(w donburi.World) float64 {
	e, ok := Time.First(w)
	if !ok {
		return 0
	}
	return Time.Get(e).Delta
}
