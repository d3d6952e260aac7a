package field

// StringField is a fixed-length character buffer read as a null-trimmed string
type StringField struct {
	Addr   Address
	Length uint32
	value  string
}

// NewStringField returns a fixed-length string field at addr
func NewStringField(addr Address, length uint32) StringField {
	return StringField{Addr: addr, Length: length}
}

// Value returns the last string read
func (f *StringField) Value() string {
	return f.value
}

// Read reads Length bytes and trims null padding from both ends.
// On failure the previous value is returned with the error.
func (f *StringField) Read(p Provider) (string, error) {
	s, err := ReadString(p, f.Addr, f.Length)
	if err != nil {
		return f.value, err
	}
	f.value = s
	return s, nil
}

func (f *StringField) String() string {
	return f.value
}
