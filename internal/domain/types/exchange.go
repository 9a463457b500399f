package types

// DHParams are the public Diffie-Hellman parameters both parties agree on.
type DHParams struct {
	Base    Integer `json:"base"`
	Modulus Integer `json:"modulus"`
}

// Party is one side of a simulated exchange.
type Party struct {
	Name    string  `json:"name"`
	Private Integer `json:"-"`
	Public  Integer `json:"public"`
}

// Exchange is the transcript of a same-process Diffie-Hellman run.
type Exchange struct {
	Params          DHParams     `json:"params"`
	Initiator       Party        `json:"initiator"`
	Responder       Party        `json:"responder"`
	InitiatorSecret SharedSecret `json:"initiator_secret"`
	ResponderSecret SharedSecret `json:"responder_secret"`
}

// Secret returns the agreed value. Both sides hold the same one once the
// exchange succeeded.
func (e Exchange) Secret() SharedSecret { return e.InitiatorSecret }
