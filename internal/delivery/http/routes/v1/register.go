package v1

import (
	"skill-bridge/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Posting *handler.PostingHandler
	Compat  *handler.CompatHandler
	Mapping *handler.MappingHandler
	Catalog *handler.CatalogHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Posting != nil {
		h.Posting.RegisterRoutes(r)
	}
	if h.Compat != nil {
		h.Compat.RegisterRoutes(r)
	}
	if h.Mapping != nil {
		h.Mapping.RegisterRoutes(r)
	}
	if h.Catalog != nil {
		h.Catalog.RegisterRoutes(r)
	}
}
