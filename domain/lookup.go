package domain

// Lookup is the result of reading one key from an expiring store.
// Found is false when the key is absent or expired; Value is nil then.
type Lookup struct {
	Value []byte
	Found bool
}

// Hit returns a found Lookup holding value.
func Hit(value []byte) Lookup {
	return Lookup{Value: value, Found: true}
}

// Miss returns an absent Lookup.
func Miss() Lookup {
	return Lookup{}
}
