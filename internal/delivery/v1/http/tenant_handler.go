package http

import (
	"net/http"

	"github.com/laptopmundo/catalog-backend/internal/usecase"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/laptopmundo/catalog-backend/pkg/logger"
)

// TenantHandler обслуживает управление тенантами (витринами).
type TenantHandler struct {
	tenantUsecase usecase.TenantUC
	logger        logger.Logger
}

func NewTenantHandler(tenantUsecase usecase.TenantUC, logger logger.Logger) *TenantHandler {
	return &TenantHandler{tenantUsecase: tenantUsecase, logger: logger}
}

type TenantRequest struct {
	Name         string  `json:"name"`
	Domain       string  `json:"domain"`
	Description  *string `json:"description"`
	BusinessType *string `json:"businessType"`
	IsActive     *bool   `json:"isActive"`
}

// listTenants
//
//	@Summary	Список тенантов
//	@Tags		tenants
//	@Produce	json
//	@Success	200	{array}	TenantResponse
//	@Router		/tenants [get]
func (h *TenantHandler) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.tenantUsecase.Tenants(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newTenantsResponse(tenants))
}

// tenantByID
//
//	@Summary	Тенант по ID
//	@Tags		tenants
//	@Produce	json
//	@Param		tenantID	path		int	true	"ID тенанта"
//	@Success	200			{object}	TenantResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/tenants/{tenantID} [get]
func (h *TenantHandler) tenantByID(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseIDParam(r, "tenantID")
	if err != nil {
		WriteError(w, err)
		return
	}

	tenant, err := h.tenantUsecase.Tenant(r.Context(), tenantID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	if tenant == nil {
		WriteError(w, e.ErrTenantNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, newTenantResponse(tenant))
}

// createTenant
//
//	@Summary	Создание тенанта
//	@Tags		tenants
//	@Accept		json
//	@Produce	json
//	@Param		request	body		TenantRequest	true	"Тенант"
//	@Success	201		{object}	TenantResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/tenants [post]
func (h *TenantHandler) createTenant(w http.ResponseWriter, r *http.Request) {
	var req TenantRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	tenant, err := h.tenantUsecase.CreateTenant(r.Context(), &usecase.CreateTenantReq{
		Name:         req.Name,
		Domain:       req.Domain,
		Description:  req.Description,
		BusinessType: req.BusinessType,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newTenantResponse(tenant))
}

// updateTenant
//
//	@Summary	Обновление тенанта
//	@Tags		tenants
//	@Accept		json
//	@Produce	json
//	@Param		tenantID	path		int				true	"ID тенанта"
//	@Param		request		body		TenantRequest	true	"Тенант"
//	@Success	200			{object}	TenantResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/tenants/{tenantID} [put]
func (h *TenantHandler) updateTenant(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseIDParam(r, "tenantID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req TenantRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	tenant, err := h.tenantUsecase.UpdateTenant(r.Context(), tenantID, &usecase.UpdateTenantReq{
		Name:         req.Name,
		Domain:       req.Domain,
		Description:  req.Description,
		BusinessType: req.BusinessType,
		IsActive:     isActive,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newTenantResponse(tenant))
}

// deleteTenant
//
//	@Summary	Удаление тенанта
//	@Tags		tenants
//	@Param		tenantID	path	int	true	"ID тенанта"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/tenants/{tenantID} [delete]
func (h *TenantHandler) deleteTenant(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseIDParam(r, "tenantID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.tenantUsecase.DeleteTenant(r.Context(), tenantID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
