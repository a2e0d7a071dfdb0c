package signet

import (
	"fmt"
	"testing"
)

type benchPosition struct{ X, Y float64 }
type benchVelocity struct{ X, Y float64 }

type benchMovement struct {
	System
}

func newBenchMovement() *benchMovement {
	s := &benchMovement{}
	RequireComponent[benchPosition](&s.System)
	RequireComponent[benchVelocity](&s.System)
	return s
}

func BenchmarkCreateEntity(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dK", size/1000), func(b *testing.B) {
			for b.Loop() {
				r := NewRegistry(WithInitialCapacity(size))
				for range size {
					r.CreateEntity()
				}
				r.Update()
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkAddComponentWithSystems(b *testing.B) {
	ResetGlobalRegistry()
	sizes := []int{1000, 10000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dK", size/1000), func(b *testing.B) {
			for b.Loop() {
				r := NewRegistry(WithInitialCapacity(size), WithPoolCapacity(size))
				AddSystem(r, newBenchMovement())
				for range size {
					e := r.CreateEntity()
					AddComponent(r, e, benchPosition{})
					AddComponent(r, e, benchVelocity{X: 1})
				}
				r.Update()
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkIterateSystem(b *testing.B) {
	ResetGlobalRegistry()
	r := NewRegistry()
	m := AddSystem(r, newBenchMovement())
	for range 10000 {
		e := r.CreateEntity()
		AddComponent(r, e, benchPosition{})
		AddComponent(r, e, benchVelocity{X: 1, Y: 1})
	}
	r.Update()
	for b.Loop() {
		for _, e := range m.Entities() {
			p := GetComponent[benchPosition](r, e)
			v := GetComponent[benchVelocity](r, e)
			p.X += v.X
			p.Y += v.Y
		}
	}
	b.ReportAllocs()
}

func BenchmarkKillAndUpdate(b *testing.B) {
	ResetGlobalRegistry()
	for b.Loop() {
		b.StopTimer()
		r := NewRegistry()
		AddSystem(r, newBenchMovement())
		ents := make([]Entity, 0, 1000)
		for range 1000 {
			e := r.CreateEntity()
			AddComponent(r, e, benchPosition{})
			AddComponent(r, e, benchVelocity{})
			ents = append(ents, e)
		}
		r.Update()
		b.StartTimer()
		for _, e := range ents {
			r.KillEntity(e)
		}
		r.Update()
	}
	b.ReportAllocs()
}

// Attaching a matching component is constant work per entity, so ns/op
// should grow linearly with the entity count.
func BenchmarkMembershipScaling(b *testing.B) {
	ResetGlobalRegistry()
	sizes := []int{5000, 20000, 80000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dK", size/1000), func(b *testing.B) {
			for b.Loop() {
				r := NewRegistry(WithInitialCapacity(size), WithPoolCapacity(size))
				m := &benchMovement{}
				RequireComponent[benchPosition](&m.System)
				AddSystem(r, m)
				for range size {
					AddComponent(r, r.CreateEntity(), benchPosition{})
				}
				if m.Len() != size {
					b.Fatalf("expected %d matched entities, got %d", size, m.Len())
				}
			}
			b.ReportAllocs()
		})
	}
}
