package types

// Stage names group narration events.
const (
	StageKeyGen   = "rsa"
	StageExchange = "dh"
	StageMessage  = "message"
	StageTamper   = "tamper"
)

// Event is a single intermediate value reported during a computation.
type Event struct {
	Stage string
	Name  string
	Value any
}
