// Package script runs tengo programs that move the tracked target around in
// headless runs.
//
// A program sees the globals t (seconds since start) and dt, and assigns x, z
// and optionally present. The tengo stdlib is importable.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/wildlife/common"
)

const maxAllocs = 1 << 16

// Mover is a compiled movement program and its clock.
type Mover struct {
	compiled *tengo.Compiled
	elapsed  float64
	pos      common.Vec3
	present  bool
}

// NewMover compiles src. The position starts at the origin and present.
func NewMover(src []byte) (*Mover, error) {
	s := tengo.NewScript(src)
	for name, v := range map[string]interface{}{
		"t":       0.0,
		"dt":      0.0,
		"x":       0.0,
		"z":       0.0,
		"present": true,
	} {
		if err := s.Add(name, v); err != nil {
			return nil, fmt.Errorf("script: add %s: %w", name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	s.SetMaxAllocs(maxAllocs)

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Mover{compiled: compiled, present: true}, nil
}

// Step advances the clock by dt and runs the program once.
func (m *Mover) Step(dt float64) (common.Vec3, error) {
	m.elapsed += dt
	if err := m.compiled.Set("t", m.elapsed); err != nil {
		return m.pos, fmt.Errorf("script: set t: %w", err)
	}
	if err := m.compiled.Set("dt", dt); err != nil {
		return m.pos, fmt.Errorf("script: set dt: %w", err)
	}
	if err := m.compiled.Run(); err != nil {
		return m.pos, fmt.Errorf("script: run at t=%.3f: %w", m.elapsed, err)
	}

	m.pos = common.Vec3{X: m.compiled.Get("x").Float(), Z: m.compiled.Get("z").Float()}
	m.present = m.compiled.Get("present").Bool()
	return m.pos, nil
}

func (m *Mover) Position() common.Vec3 { return m.pos }

// Present is false while the program hides the target.
func (m *Mover) Present() bool { return m.present }

func (m *Mover) Elapsed() float64 { return m.elapsed }
