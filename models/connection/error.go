package connection

import "fmt"

// Codes classifying why a receive failed. A malformed frame only
// spoils the message it carried, a closed connection ends the
// exchange for good.
const (
	ConnClosed uint8 = iota
	ConnMalformedPayload
)

type ConnErr struct {
	code uint8
	desc string
}

func NewConnErr(code uint8) ConnErr {
	return ConnErr{code: code}
}

func (c ConnErr) AddDesc(desc string) ConnErr {
	c.desc = desc
	return c
}

func (c ConnErr) Error() string {
	return fmt.Sprintf("Connection error - Code: %d\tdesc: %s\n", c.code, c.desc)
}

func (c ConnErr) Code() uint8 {
	return c.code
}
