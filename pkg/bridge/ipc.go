package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/glasspane/glasspane/pkg/common"
	"github.com/glasspane/glasspane/pkg/types"
)

// IPCGroup exposes the command registry over HTTP. The frontend invokes
// commands by name and subscribes to host events on the same group.
type IPCGroup struct {
	routerGroup *echo.Group
	registry    *Registry
	bus         *common.EventBus
}

func NewIPCGroup(g *echo.Group, registry *Registry, bus *common.EventBus) *IPCGroup {
	group := &IPCGroup{
		routerGroup: g,
		registry:    registry,
		bus:         bus,
	}
	group.registerRoutes()
	return group
}

func (g *IPCGroup) registerRoutes() {
	g.routerGroup.POST("/invoke/:command", g.Invoke)
	g.routerGroup.GET("/commands", g.ListCommands)
	g.routerGroup.GET("/events", g.Events)
}

// Invoke dispatches a single command invocation to its registered handler
func (g *IPCGroup) Invoke(c echo.Context) error {
	name := c.Param("command")
	cmd := g.registry.Get(name)
	if cmd == nil {
		notFound := &types.ErrCommandNotFound{Command: name}
		return ErrorResponse(c, http.StatusNotFound, notFound.Error())
	}

	// The path param would leak into a map target via Bind, so decode
	// the body directly. An empty body is an empty argument set.
	var args map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&args); err != nil && err != io.EOF {
		return ErrorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	invokeId := common.GenerateInvokeID()
	started := time.Now()

	data, err := cmd.Invoke(c.Request().Context(), args)
	if err != nil {
		g.bus.Emit(common.Event{Type: common.EventCommandFailed, Data: map[string]any{
			"command":   name,
			"invoke_id": invokeId,
			"error":     err.Error(),
		}})

		var invalidPayload *types.ErrInvalidPayload
		if errors.As(err, &invalidPayload) {
			return ErrorResponse(c, http.StatusBadRequest, err.Error())
		}

		log.Error().
			Str("command", name).
			Str("invoke_id", invokeId).
			Err(err).
			Msg("command failed")
		return ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}

	g.bus.Emit(common.Event{Type: common.EventCommandInvoked, Data: map[string]any{
		"command":   name,
		"invoke_id": invokeId,
	}})

	log.Debug().
		Str("command", name).
		Str("invoke_id", invokeId).
		Dur("latency", time.Since(started)).
		Msg("command invoked")

	return SuccessResponse(c, data)
}

// ListCommands returns every registered command with its description
func (g *IPCGroup) ListCommands(c echo.Context) error {
	return SuccessResponse(c, g.registry.Describe())
}

// Events streams host events to the frontend as server-sent events.
// The stream stays open until the client disconnects.
func (g *IPCGroup) Events(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	id, ch := g.bus.Subscribe()
	defer g.bus.Unsubscribe(id)

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case e, ok := <-ch:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(e)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, payload)
			w.Flush()
		}
	}
}
