package bridge

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glasspane/glasspane/pkg/types"
)

type HealthGroup struct {
	routerGroup *echo.Group
	appInfo     types.AppInfo
}

func NewHealthGroup(g *echo.Group, appInfo types.AppInfo) *HealthGroup {
	group := &HealthGroup{routerGroup: g, appInfo: appInfo}

	g.GET("", group.HealthCheck)

	return group
}

func (h *HealthGroup) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"name":    h.appInfo.Name,
		"version": h.appInfo.Version,
	})
}
