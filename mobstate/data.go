package mobstate

import "slices"

type actorData struct {
	state   State
	allowed []State
}

func (d *actorData) allows(s State) bool {
	return slices.Contains(d.allowed, s)
}
