package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/dto"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/factory"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/mapper"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/service"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/types"
)

type PageController struct {
	showcaseService *service.ShowcaseService
	logger          logrus.FieldLogger
}

func NewPageController(showcaseService *service.ShowcaseService) *PageController {
	return &PageController{
		showcaseService: showcaseService,
		logger:          factory.NewModuleLogger("page-controller"),
	}
}

func (c *PageController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.HealthResponse{Status: "ok"})
}

func (c *PageController) Index(ctx echo.Context) error {
	page, err := c.showcaseService.HTML()
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Render page failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	ctx.Response().Header().Set("Cache-Control", "public, max-age=300")
	return ctx.HTMLBlob(http.StatusOK, page)
}

func (c *PageController) ListPlanGroups(ctx echo.Context) error {
	items, err := c.showcaseService.ListPlanGroups(ctx.Request().Context())
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List plan groups failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.ListPlanGroupsResponse{
		Groups: mapper.PlanGroupsToResponse(items),
	})
}

func (c *PageController) GetPlanGroup(ctx echo.Context) error {
	req, err := types.NewGetPlanGroupRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.showcaseService.GetPlanGroup(ctx.Request().Context(), req.GetId())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrGroupNotFound):
			return c.writeError(ctx, http.StatusNotFound, "plan group not found")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Get plan group failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &dto.PlanGroupEnvelopeResponse{
		Group: *mapper.PlanGroupToResponse(item),
	})
}

func (c *PageController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &dto.ErrorResponse{Error: message})
}
