package cmds

import "fmt"

// Var defines name taking one argument, and name+"." resetting the value to zero.
func Var[T any](name string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}).Desc(fmt.Sprintf("set %T value", *value)))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}).Desc("reset "+name))
	return value
}

// Switch defines name setting the flag, and "!"+name clearing it.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc("enable"))
	Define("!"+name, Func(func() {
		*value = false
	}).Desc("disable "+name))
	return value
}

// Collect defines name appending its argument on every occurrence.
func Collect[T any](name string) *[]T {
	values := new([]T)
	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}).Desc("append value, repeatable"))
	return values
}
