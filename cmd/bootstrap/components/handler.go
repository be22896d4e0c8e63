package components

import (
	"lease-engine/internal/handler"
	"lease-engine/internal/handler/api"
	"lease-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
		api.NewLeaseHandler,
		api.NewOwnerChangeHandler,
		api.NewResourceHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	offers *api.OfferHandler,
	leases *api.LeaseHandler,
	ownerChanges *api.OwnerChangeHandler,
	resources *api.ResourceHandler,
) handler.Handlers {
	return handler.Handlers{
		Offers:       offers,
		Leases:       leases,
		OwnerChanges: ownerChanges,
		Resources:    resources,
	}
}
