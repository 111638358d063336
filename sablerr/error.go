package sablerr

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = true
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	MalformedReference
	UncomparableKinds
	IncompatibleTypes
	BadDescriptor
	UndefinedClass
)

// SableError is an error with a stable code, raised by the compiler rather
// than by the program under compilation.
type SableError interface {
	Error() string
	Code() ErrCode

	withStack([]byte) SableError
	getStack() []byte
}

func FormatWithCode(e SableError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E SableError](err E) SableError {
	return err.withStack(debug.Stack())
}
