package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

type GetPlanGroupRequest struct {
	ID string
}

func (r *GetPlanGroupRequest) GetId() string {
	if r == nil {
		return ""
	}
	return r.ID
}

func NewGetPlanGroupRequestFromContext(ctx echo.Context) (*GetPlanGroupRequest, error) {
	return &GetPlanGroupRequest{ID: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *GetPlanGroupRequest) Validate() error {
	if r.GetId() == "" {
		return errors.New("group id is required")
	}
	if len(r.GetId()) > 64 {
		return errors.New("group id is too long")
	}
	return nil
}
