package model

// Extension is a named, numbered registry extension. The number determines
// the value block its offset-form enumerators resolve into and never changes
// after creation.
type Extension struct {
	Name   string
	Number int64
}

// NewExtension creates an extension with its registry-assigned number.
func NewExtension(name string, number int64) *Extension {
	return &Extension{Name: name, Number: number}
}
