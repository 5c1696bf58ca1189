package navigation

// Value is a single prop value. The prop bag is deliberately narrow: a value
// is either a string or the zero placeholder, nothing else.
type Value interface {
	isValue()
}

// String is a string-valued prop.
type String string

func (String) isValue() {}

type zeroValue struct{}

func (zeroValue) isValue() {}

// Zero is the placeholder prop value used when a key must be present but
// carries no payload.
var Zero Value = zeroValue{}

// Props maps string keys to prop values. The navigation core never inspects
// prop contents; they travel with a View to whoever renders it.
type Props map[string]Value

// Get returns the string payload of a prop, or "" if the key is absent or
// holds the zero placeholder.
func (p Props) Get(key string) string {
	if s, ok := p[key].(String); ok {
		return string(s)
	}
	return ""
}
