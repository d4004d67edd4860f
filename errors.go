package reportfilter

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when a composer is called with unusable input,
	// such as an empty question id or a configuration value of the wrong shape.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnreachableState is returned for filter type and page combinations that the
	// configuration contract rules out. It is not recoverable.
	ErrUnreachableState = errors.New("unreachable filter state")

	// ErrUnsupportedNode is returned by evaluators that can't translate an expression node.
	ErrUnsupportedNode = errors.New("unsupported expression node")
)

func unknownFilterType(op string, t FilterType) error {
	return errors.Wrapf(ErrUnreachableState, "%s: unknown filter type %s", op, t)
}
