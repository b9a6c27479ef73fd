package handler

import (
	"net/http"

	"assetbook/internal/assets/service"
	httputil "assetbook/pkg/http"
	"assetbook/pkg/logger"
	"assetbook/pkg/middleware"
	"assetbook/pkg/model"
	"assetbook/pkg/validation"

	"github.com/julienschmidt/httprouter"
)

type AssetHandler struct {
	service service.AssetService
	log     *logger.Logger
}

func NewAssetHandler(service service.AssetService, log *logger.Logger) *AssetHandler {
	return &AssetHandler{
		service: service,
		log:     log,
	}
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	assets, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if assets == nil {
		assets = []*model.Asset{}
	}

	if err := httputil.WriteSuccess(w, assets); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.AssetInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, validation.ToAppError("Asset validation failed", err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	asset, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, asset); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AssetHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/assets", middleware.Instrument("assets.list", h.List))
	router.POST("/api/assets", middleware.Instrument("assets.create", h.Create))
}
