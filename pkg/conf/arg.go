package conf

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

// definedArgs stores all the defined positional arguments, in definition order,
// to detect duplicates the same way definedFlags does.
var definedArgs = map[string]bool{}

func newArgClause(argName string, description string) *kingpin.ArgClause {
	if definedArgs[argName] {
		panic("This argument was already defined. Argument definition is lack of duplicate check.")
	}
	definedArgs[argName] = true

	return app.Arg(argName, description).Required()
}

// StringArg represents a required positional argument with string value.
type StringArg struct {
	value *string
}

// NewStringArg is a constructor of StringArg struct.
func NewStringArg(argName string, description string) *StringArg {
	argDef := &StringArg{}
	argDef.value = newArgClause(argName, description).String()
	isEnvParsed = false
	return argDef
}

// Value returns value of defined argument after parse.
// NOTE: If conf is not parsed it returns an empty string (!)
func (s StringArg) Value() string {
	if !isEnvParsed {
		return ""
	}

	return *s.value
}

// IntArg represents a required positional argument with int value.
type IntArg struct {
	value *int
}

// NewIntArg is a constructor of IntArg struct.
func NewIntArg(argName string, description string) *IntArg {
	argDef := &IntArg{}
	argDef.value = newArgClause(argName, description).Int()
	isEnvParsed = false
	return argDef
}

// Value returns value of defined argument after parse.
// NOTE: If conf is not parsed it returns zero (!)
func (i IntArg) Value() int {
	if !isEnvParsed {
		return 0
	}

	return *i.value
}
