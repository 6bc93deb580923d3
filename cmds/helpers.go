package cmds

// Var defines name <value> to set the returned variable, and name. to reset it.
func Var[T any](name string, desc ...string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(firstDesc(desc)))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines name to turn the returned flag on, and !name to turn it off.
func Switch(name string, desc ...string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(firstDesc(desc)))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(firstDesc(desc)))
	return &value
}

func firstDesc(desc []string) string {
	if len(desc) > 0 {
		return desc[0]
	}
	return ""
}
