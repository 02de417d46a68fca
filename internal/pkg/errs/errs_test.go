package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("phone")

		assert.Equal(t, "phone", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: phone", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("phone", cause)

		assert.Equal(t, "phone", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: phone (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 10000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customer name")

		assert.Equal(t, "customer name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customer name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customer name", cause)

		assert.Equal(t, "customer name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customer name (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestStateIsLockedError(t *testing.T) {
	t.Run("NewStateIsLockedError", func(t *testing.T) {
		err := errs.NewStateIsLockedError("order", "in_carrier")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "in_carrier", err.State)
		require.NoError(t, err.Cause)
		assert.Equal(t, "state is locked: order is in state in_carrier", err.Error())
		assert.Equal(t, errs.ErrStateIsLocked, err.Unwrap())
	})

	t.Run("NewStateIsLockedErrorWithCause", func(t *testing.T) {
		cause := errors.New("dispatch already completed")
		err := errs.NewStateIsLockedErrorWithCause("order", "in_carrier", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"state is locked: order is in state in_carrier (cause: dispatch already completed)",
			err.Error())
	})
}

func TestCredentialsAreInvalidError(t *testing.T) {
	t.Run("NewCredentialsAreInvalidError", func(t *testing.T) {
		err := errs.NewCredentialsAreInvalidError("carrier credentials")

		assert.Equal(t, "carrier credentials", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "credentials are invalid: carrier credentials", err.Error())
		assert.Equal(t, errs.ErrCredentialsAreInvalid, err.Unwrap())
	})
}

func TestTransportError(t *testing.T) {
	t.Run("NewTransportErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewTransportErrorWithCause("carrier validation endpoint", cause)

		assert.Equal(t, "carrier validation endpoint", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "transport failed: carrier validation endpoint (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrTransportFailed, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrStateIsLocked)
		require.Error(t, errs.ErrCredentialsAreInvalid)
		require.Error(t, errs.ErrTransportFailed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "state is locked", errs.ErrStateIsLocked.Error())
		assert.Equal(t, "credentials are invalid", errs.ErrCredentialsAreInvalid.Error())
		assert.Equal(t, "transport failed", errs.ErrTransportFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("phone"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10000), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewStateIsLockedError("order", "in_carrier"), errs.ErrStateIsLocked)
		require.ErrorIs(t, errs.NewCredentialsAreInvalidError("carrier"), errs.ErrCredentialsAreInvalid)
		require.ErrorIs(t, errs.NewTransportError("carrier"), errs.ErrTransportFailed)
	})
}
