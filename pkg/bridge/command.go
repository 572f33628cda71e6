package bridge

import (
	"context"

	"github.com/go-viper/mapstructure/v2"

	"github.com/glasspane/glasspane/pkg/types"
)

// Validator is an interface for request types that support validation
type Validator interface {
	Validate() error
}

// Handler is a function that executes a command with a typed request and
// response. The request is decoded from the raw invocation payload before
// the handler runs, so handlers never see map[string]any.
type Handler[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Command is a named operation the frontend can invoke through the bridge
type Command interface {
	Name() string
	Description() string
	Invoke(ctx context.Context, args map[string]any) (any, error)
}

type command[Req, Resp any] struct {
	name        string
	description string
	handler     Handler[Req, Resp]
}

// NewCommand binds a name to a typed handler. Decoding, validation, and
// error shaping are centralized here so individual handlers stay plain
// functions over their own request/response types.
func NewCommand[Req, Resp any](name, description string, handler Handler[Req, Resp]) Command {
	return &command[Req, Resp]{
		name:        name,
		description: description,
		handler:     handler,
	}
}

func (c *command[Req, Resp]) Name() string {
	return c.name
}

func (c *command[Req, Resp]) Description() string {
	return c.description
}

// Invoke decodes args into the typed request, validates it when the type
// supports validation, and runs the handler.
func (c *command[Req, Resp]) Invoke(ctx context.Context, args map[string]any) (any, error) {
	var req Req
	if err := decodeArgs(args, &req); err != nil {
		return nil, &types.ErrInvalidPayload{Command: c.name, Reason: err.Error()}
	}

	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, &types.ErrInvalidPayload{Command: c.name, Reason: err.Error()}
		}
	}

	resp, err := c.handler(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// decodeArgs maps the raw payload onto a request struct. Fields are
// matched by json tag so request types carry a single tag set for both
// the wire format and decoding.
func decodeArgs(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(args)
}
