// Package adapter demonstrates giving unrelated types a common interface.
package adapter

// Named is anything with a display name.
type Named interface {
	Name() string
}

// Speaker is the interface every adapted object offers.
type Speaker interface {
	Named
	Speak() string
}

// Korean speaks Korean.
type Korean struct{}

// Name implements Named.
func (Korean) Name() string { return "Korean" }

// SpeakKorean greets in Korean.
func (Korean) SpeakKorean() string { return "An-neyong?" }

// British speaks English.
type British struct{}

// Name implements Named.
func (British) Name() string { return "British" }

// SpeakEnglish greets in English.
func (British) SpeakEnglish() string { return "Hello" }

// Adapter maps Speak onto whichever method the wrapped object has.
type Adapter struct {
	Named
	speak func() string
}

// New adapts obj, routing Speak to speak.
func New(obj Named, speak func() string) *Adapter {
	return &Adapter{Named: obj, speak: speak}
}

// Speak implements Speaker.
func (a *Adapter) Speak() string { return a.speak() }

var _ Speaker = (*Adapter)(nil)
