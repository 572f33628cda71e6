package bridge

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glasspane/glasspane/pkg/types"
)

type echoRequest struct {
	Name string `json:"name"`
}

func (r echoRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

type echoResponse struct {
	Message string `json:"message"`
}

func newEchoCommand() Command {
	return NewCommand("echo", "echoes the given name",
		func(ctx context.Context, req echoRequest) (echoResponse, error) {
			return echoResponse{Message: "hi " + req.Name}, nil
		})
}

func TestCommand_Invoke_DecodesTypedRequest(t *testing.T) {
	cmd := newEchoCommand()

	data, err := cmd.Invoke(context.Background(), map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatal(err)
	}

	resp, ok := data.(echoResponse)
	if !ok {
		t.Fatalf("expected echoResponse, got %T", data)
	}
	if resp.Message != "hi Ada" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestCommand_Invoke_ValidationFailure(t *testing.T) {
	cmd := newEchoCommand()

	_, err := cmd.Invoke(context.Background(), map[string]any{})
	if err == nil {
		t.Fatal("expected validation error for missing name")
	}

	var invalidPayload *types.ErrInvalidPayload
	if !errors.As(err, &invalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %T", err)
	}
	if invalidPayload.Command != "echo" {
		t.Errorf("expected command echo, got %s", invalidPayload.Command)
	}
}

func TestCommand_Invoke_DecodeFailure(t *testing.T) {
	type countedRequest struct {
		Count int `json:"count"`
	}
	cmd := NewCommand("count", "",
		func(ctx context.Context, req countedRequest) (int, error) {
			return req.Count, nil
		})

	_, err := cmd.Invoke(context.Background(), map[string]any{"count": "not-a-number"})
	if err == nil {
		t.Fatal("expected decode error")
	}

	var invalidPayload *types.ErrInvalidPayload
	if !errors.As(err, &invalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %T", err)
	}
}

func TestCommand_Invoke_NilArgs(t *testing.T) {
	type emptyRequest struct{}
	cmd := NewCommand("ping", "",
		func(ctx context.Context, req emptyRequest) (string, error) {
			return "pong", nil
		})

	data, err := cmd.Invoke(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if data != "pong" {
		t.Errorf("expected pong, got %v", data)
	}
}

func TestCommand_Invoke_HandlerErrorPassesThrough(t *testing.T) {
	wantErr := fmt.Errorf("backend unavailable")
	cmd := NewCommand("fails", "",
		func(ctx context.Context, req struct{}) (string, error) {
			return "", wantErr
		})

	_, err := cmd.Invoke(context.Background(), nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected handler error to pass through, got %v", err)
	}

	var invalidPayload *types.ErrInvalidPayload
	if errors.As(err, &invalidPayload) {
		t.Error("handler errors must not be wrapped as payload errors")
	}
}

func TestCommand_NameAndDescription(t *testing.T) {
	cmd := newEchoCommand()
	if cmd.Name() != "echo" {
		t.Errorf("expected name echo, got %s", cmd.Name())
	}
	if cmd.Description() != "echoes the given name" {
		t.Errorf("unexpected description: %s", cmd.Description())
	}
}
