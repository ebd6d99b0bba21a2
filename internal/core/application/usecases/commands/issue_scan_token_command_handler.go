package commands

import (
	"context"

	"courierhub/internal/core/domain/services"
)

// IssueScanTokenCommandHandler signs a token and stores it on the order. Only
// the most recently issued token can be redeemed.
type IssueScanTokenCommandHandler struct {
	uowFactory OrderUoWFactory
	tokens     *services.ScanTokenService
}

func NewIssueScanTokenCommandHandler(
	uowFactory OrderUoWFactory,
	tokens *services.ScanTokenService,
) *IssueScanTokenCommandHandler {
	return &IssueScanTokenCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

func (h *IssueScanTokenCommandHandler) Handle(
	ctx context.Context,
	cmd IssueScanTokenCommand,
) (services.ScanToken, error) {
	if err := cmd.Validate(); err != nil {
		return services.ScanToken{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ScanToken{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.ScanToken{}, err
	}

	token, err := h.tokens.Issue(o.ID(), cmd.TTL())
	if err != nil {
		return services.ScanToken{}, err
	}
	if err = o.AttachScanToken(token.String()); err != nil {
		return services.ScanToken{}, err
	}
	if err = orderRepo.UpdateIfStatus(ctx, o, o.Status()); err != nil {
		return services.ScanToken{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ScanToken{}, err
	}

	return token, nil
}
