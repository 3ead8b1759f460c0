package resp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/resp"
)

func TestFromCtx(t *testing.T) {
	d := resp.NewResponder()
	tcs := []struct {
		name        string
		ctx         context.Context
		expectedVal *resp.Responder
		expectedErr error
	}{
		{"Not-Set", context.Background(), nil, switchback.ErrNotFound},
		{"Set-With-Wrong-Type", context.WithValue(context.Background(), switchback.ResponderKey, struct{}{}), nil, switchback.ErrNotValid},
		{"Set-With-Val", context.WithValue(context.Background(), switchback.ResponderKey, d), d, nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := resp.FromCtx(tc.ctx)
			require.ErrorIs(t, err, tc.expectedErr)
			require.Equal(t, tc.expectedVal, actual)
		})
	}
}
