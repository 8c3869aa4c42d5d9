package ecs

// System advances part of the world by dt seconds.
type System interface {
	Update(w *World, dt float64)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once, in order.
func (s *Scheduler) Update(w *World, dt float64) {
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
