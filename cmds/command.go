package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// ArgNames renders the words a command consumes, <kind> for required and [kind] for optional.
func (c *Command) ArgNames() string {
	if !c.Func.IsValid() {
		return ""
	}
	t := c.Func.Type()
	args := make([]string, 0, t.NumIn())
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			args = append(args, "["+in.Elem().Kind().String()+"]")
			continue
		}
		args = append(args, "<"+in.Kind().String()+">")
	}
	return strings.Join(args, " ")
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	if fnType.IsVariadic() {
		panic(fmt.Errorf("variadic function not supported: %T", fn))
	}
	numRets := fnType.NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value: %T", fn))
	}
	if numRets == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error: %T", fn))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
