package core

// Param is a single named template define. Value is a string, bool or number.
type Param struct {
	Name  string
	Value any
}

// Params keeps defines in a stable order so the renderer command line is reproducible.
type Params []Param

// Get returns the value of the named define.
func (p Params) Get(name string) (any, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}
