package interfaces

import (
	domaintypes "minicrypt/internal/domain/types"
)

// Observer receives intermediate values as a computation progresses.
// Implementations must not block.
type Observer interface {
	Observe(ev domaintypes.Event)
}
