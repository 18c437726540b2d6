package cookie

// Result is the outcome of decoding one signed cookie value. It is
// ephemeral: produced per read, optionally memoized in the request context,
// and never shared across requests.
//
// Data carries the payload whenever the wire value could be parsed, even if
// it turned out expired or forged; Present reports whether Data holds a
// payload at all. Expired and Forged are evaluated independently, so a
// value can report both at once.
type Result struct {
	Data    string
	Present bool
	Expired bool
	Forged  bool
}

// Valid reports whether the payload can be trusted: present, unexpired, and
// carrying a matching signature. GetIfGood is a thin projection over it.
func (r Result) Valid() bool {
	return r.Present && !r.Expired && !r.Forged
}
