package vault

import "context"

// State is the coarse seal/init state derived from the health endpoint
type State int

const (
	// StateDown means the health endpoint is unreachable
	StateDown State = iota
	// StateNotInitialized means Vault is up but has never been initialized
	StateNotInitialized
	// StateSealed means Vault is initialized but sealed
	StateSealed
	// StateUnsealed means Vault is initialized, unsealed, and active
	StateUnsealed
	// StateStandby means Vault is unsealed but not the active node
	StateStandby
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StateDown:
		return "down"
	case StateNotInitialized:
		return "not initialized"
	case StateSealed:
		return "sealed"
	case StateUnsealed:
		return "unsealed"
	case StateStandby:
		return "standby"
	default:
		return "unknown"
	}
}

// StateFromHealth maps a health response to a State
func StateFromHealth(h *HealthResponse) State {
	if h == nil {
		return StateDown
	}

	if !h.Initialized {
		return StateNotInitialized
	}

	if h.Sealed {
		return StateSealed
	}

	switch h.StatusCode {
	case 200:
		return StateUnsealed
	case 429, 472, 473:
		return StateStandby
	}

	if h.Standby {
		return StateStandby
	}

	return StateUnsealed
}

// State queries the health endpoint and maps it to a State.
// An unreachable endpoint is StateDown, not an error.
func (c *Client) State(ctx context.Context) State {
	health, err := c.Health(ctx)
	if err != nil {
		return StateDown
	}
	return StateFromHealth(health)
}
