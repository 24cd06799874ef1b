package arena

import "github.com/tomz197/shmup/internal/object"

// EventKind discriminates arena events.
type EventKind int

const (
	EventHit     EventKind = iota // A projectile damaged a combatant
	EventKill                     // An enemy's health reached zero
	EventDespawn                  // A dead enemy left the arena and was scored
	EventSpawn                    // A new enemy entered the arena
)

var eventNames = [...]string{
	EventHit:     "hit",
	EventKill:    "kill",
	EventDespawn: "despawn",
	EventSpawn:   "spawn",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event records something that happened during the last Update.
type Event struct {
	Kind   EventKind
	Target object.ID
	From   object.Side // Shooter side, for EventHit only
}
