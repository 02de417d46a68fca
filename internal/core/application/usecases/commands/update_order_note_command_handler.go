package commands

import "context"

type UpdateOrderNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderNoteCommandHandler(uowFactory OrderUoWFactory) UpdateOrderNoteCommandHandler {
	return UpdateOrderNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateOrderNoteCommandHandler) Handle(ctx context.Context, cmd UpdateOrderNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.UpdateNote(cmd.Note())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
