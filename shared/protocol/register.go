package protocol

import (
	"github.com/automoto/doomerang-ai/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition uint = 10
	SyncIDNetTarget   uint = 12
	SyncIDNetAgent    uint = 14
	SyncIDNetArena    uint = 15
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetAgent    uint8 = 14
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Register with interpolation for smooth client-side rendering
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	// Target: no interpolation (discrete health and input state)
	if err := esync.RegisterComponent(
		SyncIDNetTarget,
		netcomponents.NetTargetData{},
		netcomponents.NetTarget,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetAgent,
		netcomponents.NetAgentData{},
		netcomponents.NetAgent,
		esync.WithInterpFn(InterpIDNetAgent, netcomponents.LerpNetAgent),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetArena,
		netcomponents.NetArenaData{},
		netcomponents.NetArena,
	); err != nil {
		return err
	}

	return nil
}
