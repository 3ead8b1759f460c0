package resp

import (
	"context"
	"fmt"

	"github.com/switchbacklabs/switchback"
)

// FromCtx retrieves the *Responder set in the context.
//
// If middleware.InjectResponder did not run ahead of the calling handler
// and the context.Context has no value for switchback.ResponderKey,
// ErrNotFound returns.
func FromCtx(ctx context.Context) (*Responder, error) {
	val := ctx.Value(switchback.ResponderKey)
	if val == nil {
		return nil, fmt.Errorf("%w: no responder found with %q", switchback.ErrNotFound, switchback.ResponderKey)
	}

	d, ok := val.(*Responder)
	if !ok {
		return nil, fmt.Errorf("%w: is not *resp.Responder, is %T", switchback.ErrNotValid, val)
	}

	return d, nil
}
