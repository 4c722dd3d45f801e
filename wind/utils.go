package wind

import "github.com/a-bouts/regatta/latlon"

// Twa is the true wind angle for a boat sailing heading: negative when the
// wind comes over the port side.
func Twa(heading, wind latlon.Direction) latlon.Direction {
	return latlon.AngularDifference(wind, heading)
}
