package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validBindCarrierCommand(t *testing.T, storeID kernel.UUID) commands.BindCarrierCommand {
	t.Helper()
	cmd, err := commands.NewBindCarrierCommand(storeID, "FastShip", "key-123", "token-456", "")
	require.NoError(t, err)
	return cmd
}

func TestBindCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	aggregate := newTestStore(t, storeID, false)
	cmd := validBindCarrierCommand(t, storeID)

	validator := new(MockCarrierValidator)
	repo := new(MockStoreRepository)
	uow := new(MockStoreUoW)
	mock.InOrder(
		validator.On("ValidateCredentials", ctx, "FastShip", "key-123", "token-456").Return(true, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, storeID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBindCarrierCommandHandler(factory, validator)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, aggregate.HasCarrier())
	require.Equal(t, "FastShip", aggregate.Carrier().Name())
	validator.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestBindCarrierCommandHandler_Handle_RejectedCredentials(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	cmd := validBindCarrierCommand(t, storeID)

	validator := new(MockCarrierValidator)
	validator.On("ValidateCredentials", ctx, "FastShip", "key-123", "token-456").Return(false, nil).Once()

	factory := new(MockStoreUoWFactory)
	h := commands.NewBindCarrierCommandHandler(factory, validator)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrCredentialsAreInvalid)
	factory.AssertNotCalled(t, "Create")
	validator.AssertExpectations(t)
}

func TestBindCarrierCommandHandler_Handle_TransportFailure(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	cmd := validBindCarrierCommand(t, storeID)

	validator := new(MockCarrierValidator)
	validator.On("ValidateCredentials", ctx, "FastShip", "key-123", "token-456").
		Return(false, errs.NewTransportError("carrier validation endpoint")).Once()

	factory := new(MockStoreUoWFactory)
	h := commands.NewBindCarrierCommandHandler(factory, validator)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrTransportFailed)
	factory.AssertNotCalled(t, "Create")
	validator.AssertExpectations(t)
}

func TestNewBindCarrierCommand_RequiresCredentials(t *testing.T) {
	_, err := commands.NewBindCarrierCommand(kernel.NewUUID(), "FastShip", "", "token", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewBindCarrierCommand(kernel.NewUUID(), "FastShip", "key", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewBindCarrierCommand(kernel.NewUUID(), "", "key", "token", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUnbindCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	aggregate := newTestStore(t, storeID, true)
	cmd, err := commands.NewUnbindCarrierCommand(storeID)
	require.NoError(t, err)

	repo := new(MockStoreRepository)
	uow := new(MockStoreUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, storeID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUnbindCarrierCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, aggregate.HasCarrier())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
