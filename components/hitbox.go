package components

import (
	"github.com/solarlune/resolv"
)

// DamageVolume is an agent's persistent melee volume. It stays in the space
// for the agent's whole life and only deals damage while On.
type DamageVolume struct {
	Object        *resolv.Object
	On            bool
	Width, Height float64 // World units
}

func (v *DamageVolume) Enabled() bool { return v.On }

func (v *DamageVolume) SetEnabled(enabled bool) { v.On = enabled }
