// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/signet"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 100
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

// run churns entities through the deferred create/kill queues.
func run(rounds, iters, numEntities int) {
	for range rounds {
		r := signet.NewRegistry(signet.WithInitialCapacity(numEntities))
		ents := make([]signet.Entity, 0, numEntities)

		for range iters {
			ents = ents[:0]
			for range numEntities {
				e := r.CreateEntity()
				signet.AddComponent(r, e, comp1{V: 1})
				signet.AddComponent(r, e, comp2{W: 2})
				ents = append(ents, e)
			}
			r.Update()
			for _, e := range ents {
				r.KillEntity(e)
			}
			r.Update()
		}
	}
}
