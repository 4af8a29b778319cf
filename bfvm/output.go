package bfvm

type Output []Cell

// Bytes keeps the low 8 bits of each value.
func (o Output) Bytes() []byte {
	ret := make([]byte, len(o))
	for i, v := range o {
		ret[i] = byte(v)
	}
	return ret
}

func (o Output) Text() string {
	return string(o.Bytes())
}
