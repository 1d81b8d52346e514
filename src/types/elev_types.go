package types

type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
)

func (d Direction) Flip() Direction {
	return -d
}

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
	DoorOpen
	Shutdown
)

func (b ElevBehaviour) String() string {
	switch b {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case DoorOpen:
		return "door open"
	case Shutdown:
		return "shutdown"
	}
	return "unknown"
}
