package markup

import "errors"

// Errors returned by the planning and parsing helpers. The splice entry points
// ([ApplyFormat], [InsertMathFormula]) never return errors.
var (
	ErrUnknownAction = errors.New("unknown format action")
)
