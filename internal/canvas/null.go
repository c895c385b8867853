package canvas

// Null discards every draw call. It stands in for a real backend in
// tests and on machines with no output device at all.
type Null struct{}

// NewNull creates a no-op canvas.
func NewNull() *Null { return &Null{} }

func (*Null) SetPixel(x, y int, c RGB) {}
func (*Null) Clear()                   {}
func (*Null) Present() error           { return nil }
func (*Null) Close() error             { return nil }
