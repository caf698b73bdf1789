package notification

import (
	"context"
	"errors"

	"helpdesk/internal/application/ticket/usecases"
)

// ErrChannelUnsupported marks a gateway that does not deliver to the
// payload's channel at all. The composite excludes such gateways from the
// success count instead of treating the skip as a delivery.
var ErrChannelUnsupported = errors.New("notification channel not supported by gateway")

// CompositeGateway fans a payload out to every configured gateway. Delivery
// succeeds when at least one supporting gateway accepts the payload; the
// error is only returned when every supporting gateway fails.
type CompositeGateway struct {
	gateways []usecases.NotificationGateway
}

func NewCompositeGateway(gateways ...usecases.NotificationGateway) *CompositeGateway {
	return &CompositeGateway{gateways: gateways}
}

func (g *CompositeGateway) Notify(ctx context.Context, payload usecases.NotificationPayload) error {
	var supported int
	var errs []error

	for _, gw := range g.gateways {
		err := gw.Notify(ctx, payload)
		if errors.Is(err, ErrChannelUnsupported) {
			continue
		}
		supported++
		if err != nil {
			errs = append(errs, err)
		}
	}

	if supported == 0 {
		return errors.New("no notification gateway supports channel " + string(payload.Channel))
	}
	if len(errs) == supported {
		return errors.Join(errs...)
	}

	return nil
}
