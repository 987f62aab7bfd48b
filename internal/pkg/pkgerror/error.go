package pkgerror

import "errors"

type Code int

const (
	CodeUnknown Code = iota
	CodeInvalidInput
	CodeNotFound
)

// Business is an error caused by the caller rather than the system. It
// carries a machine code so transports can map it to a proper status.
type Business struct {
	message string
	code    Code
}

func NewBusiness(message string, code Code) *Business {
	return &Business{message: message, code: code}
}

func (b *Business) Error() string {
	return b.message
}

func (b *Business) Code() Code {
	return b.code
}

// AsBusiness unwraps err into a Business error if it is one.
func AsBusiness(err error) (*Business, bool) {
	var business *Business
	if errors.As(err, &business) {
		return business, true
	}
	return nil, false
}
