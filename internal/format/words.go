package format

import "time"

// Words rotate on the home clock, one per second
var Words = []string{
	"Focus", "Breathe", "Create", "Learn", "Move", "Grow", "Begin", "Commit",
	"Build", "Rest", "Reflect", "Connect", "Persist", "Explore", "Act", "Now",
}

// WordAt returns the word shown at t
func WordAt(t time.Time) string {
	if len(Words) == 0 {
		return "Keep going"
	}
	return Words[int(t.Unix()%int64(len(Words)))]
}
