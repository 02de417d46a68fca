package commands

import "context"

type RevealContactCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRevealContactCommandHandler(uowFactory OrderUoWFactory) RevealContactCommandHandler {
	return RevealContactCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RevealContactCommandHandler) Handle(ctx context.Context, cmd RevealContactCommand) error {
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

	if err = aggregate.RevealContact(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
