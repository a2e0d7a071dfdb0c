// Profiling:
// go build ./profile/systems
// go tool pprof -http=":8000" -nodefraction=0.001 ./systems cpu.pprof

package main

import (
	"github.com/edwinsyarief/signet"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type health struct {
	HP int
}

type movement struct {
	signet.System
}

type mortality struct {
	signet.System
}

func main() {
	rounds := 20
	frames := 1000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, frames, entities)
	p.Stop()
}

// run drives a frame loop: Update, then systems iterate their entity lists,
// killing entities mid-iteration and respawning replacements.
func run(rounds, frames, numEntities int) {
	for range rounds {
		r := signet.NewRegistry(signet.WithInitialCapacity(numEntities), signet.WithPoolCapacity(numEntities))

		move := &movement{}
		signet.RequireComponent[position](&move.System)
		signet.RequireComponent[velocity](&move.System)
		signet.AddSystem(r, move)

		mort := &mortality{}
		signet.RequireComponent[health](&mort.System)
		signet.AddSystem(r, mort)

		for i := range numEntities {
			spawn(r, i)
		}

		for frame := range frames {
			r.Update()
			for _, e := range move.Entities() {
				p := signet.GetComponent[position](r, e)
				v := signet.GetComponent[velocity](r, e)
				p.X += v.X
				p.Y += v.Y
			}
			dead := 0
			for _, e := range mort.Entities() {
				h := signet.GetComponent[health](r, e)
				h.HP--
				if h.HP <= 0 {
					r.KillEntity(e)
					dead++
				}
			}
			// Attaching components changes system lists, so spawn after iterating.
			for i := range dead {
				spawn(r, frame+i)
			}
		}
	}
}

func spawn(r *signet.Registry, seed int) {
	e := r.CreateEntity()
	signet.AddComponent(r, e, position{})
	signet.AddComponent(r, e, velocity{X: 1, Y: float64(seed % 3)})
	signet.AddComponent(r, e, health{HP: 1 + seed%200})
}
