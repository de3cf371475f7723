package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Fixture decode errors (token stream syntax).
	DecInfo           Code = 1000
	DecUnknownToken   Code = 1001
	DecBadTokenForm   Code = 1002
	DecBadNumber      Code = 1003
	DecBadRange       Code = 1004
	DecBadBinding     Code = 1005
	DecUnknownContext Code = 1006

	// Resolver errors.
	ResInfo             Code = 2000
	ResShapeMismatch    Code = 2001
	ResInvalidOperator  Code = 2002
	ResArityMismatch    Code = 2003
	ResBadTarget        Code = 2004
	ResInvalidQualifier Code = 2005

	// Elaboration severity tasks surfaced by the driver.
	ElabInfo    Code = 3000
	ElabWarning Code = 3001
	ElabError   Code = 3002
	ElabFatal   Code = 3003

	// IO / driver errors.
	IoInfo         Code = 4000
	IoFileNotFound Code = 4001
	IoReadFailed   Code = 4002
	IoCacheFailed  Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	DecInfo:           "fixture decode info",
	DecUnknownToken:   "unknown token keyword",
	DecBadTokenForm:   "malformed token entry",
	DecBadNumber:      "malformed numeric literal",
	DecBadRange:       "malformed range bounds",
	DecBadBinding:     "malformed port or parameter binding",
	DecUnknownContext: "unknown resolve context",

	ResInfo:             "resolver info",
	ResShapeMismatch:    "token stream shape mismatch",
	ResInvalidOperator:  "assignment operator not valid here",
	ResArityMismatch:    "unexpected number of components",
	ResBadTarget:        "tokens do not form an assignment target",
	ResInvalidQualifier: "qualifier not supported",

	ElabInfo:    "elaboration info task",
	ElabWarning: "elaboration warning task",
	ElabError:   "elaboration error task",
	ElabFatal:   "elaboration fatal task",

	IoInfo:         "io info",
	IoFileNotFound: "file not found",
	IoReadFailed:   "file read failed",
	IoCacheFailed:  "result cache unusable",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DEC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("ELB%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
