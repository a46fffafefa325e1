package routers

import (
	"caregate-service/internal/app/services/datasets"

	"github.com/go-chi/chi/v5"
)

func attachDatasetRoutes(r chi.Router, controller *datasets.DatasetController) {
	r.Route("/{dataset}", func(r chi.Router) {
		r.Get("/", controller.List)
		r.Post("/", controller.Create)
		r.Post("/bulk/delete", controller.BulkDelete)
		r.Post("/bulk/status", controller.BulkSetStatus)
		r.Get("/audit-trail", controller.AuditTrail)

		r.Route("/{resource_id}", func(r chi.Router) {
			r.Put("/", controller.Update)
			r.Delete("/", controller.Delete)
			r.Post("/duplicate", controller.Duplicate)
			r.Get("/attachment-url", controller.AttachmentDownloadURL)
			r.Post("/attachment-url", controller.AttachmentUploadURL)
		})
	})
}
