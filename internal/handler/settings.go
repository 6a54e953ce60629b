package handler

import (
	"context"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/settings"
)

// UpdatePaymentGateway stores new gateway credentials and drops the cached
// client so the next payment call uses them.
func (h *Handler) UpdatePaymentGateway(ctx context.Context, req *oas.GatewaySettings) (*oas.GatewaySettingsUpdated, error) {
	p, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	err = h.deps.Settings.Set(ctx, map[string]string{
		settings.KeyGatewayKeyID:     req.KeyID,
		settings.KeyGatewayKeySecret: req.KeySecret,
	})
	if err != nil {
		return nil, err
	}
	h.deps.Gateway.Invalidate()

	zctx.From(ctx).Info("Payment gateway credentials updated",
		zap.String("key_id", req.KeyID),
		zap.String("by", p.KeyID),
	)
	return &oas.GatewaySettingsUpdated{Success: true, KeyID: req.KeyID}, nil
}
