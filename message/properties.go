package message

// Properties is a free-form string bag attached to messages, results and responses.
// A nil Properties is valid for reads.
type Properties map[string]string

// Get returns the value for name or an empty string.
func (p Properties) Get(name string) string {
	return p[name]
}

// GetOr returns the value for name or def when the property is absent.
func (p Properties) GetOr(name, def string) string {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// Set stores a property. It panics on a nil map, use the owner's SetProperty helper instead.
func (p Properties) Set(name, value string) {
	p[name] = value
}
