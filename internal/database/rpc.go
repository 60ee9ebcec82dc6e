package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RPCError is a business failure reported inside an envelope, as opposed to
// a transport or scan failure.
type RPCError struct {
	Fn      string
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: %s", e.Fn, e.Message)
}

// Envelope is a decoded jsonb result from one of the rpc_* functions.
type Envelope struct {
	fields map[string]json.RawMessage
}

// UUID extracts a uuid-valued field from the envelope.
func (e *Envelope) UUID(key string) (uuid.UUID, error) {
	raw, ok := e.fields[key]
	if !ok {
		return uuid.Nil, fmt.Errorf("envelope has no %q field", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return uuid.Nil, fmt.Errorf("envelope field %q: %w", key, err)
	}
	return uuid.Parse(s)
}

// Field decodes an envelope field into dst.
func (e *Envelope) Field(key string, dst any) error {
	raw, ok := e.fields[key]
	if !ok {
		return fmt.Errorf("envelope has no %q field", key)
	}
	return json.Unmarshal(raw, dst)
}

// CallRPC invokes an rpc_* function and decodes its jsonb envelope. An
// unsuccessful envelope comes back as an *RPCError so callers can separate
// business failures from transport ones.
func CallRPC(ctx context.Context, pool Pool, fn string, args ...any) (*Envelope, error) {
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("SELECT %s(%s)", fn, strings.Join(placeholders, ", "))

	var raw []byte
	if err := pool.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return nil, fmt.Errorf("%s failed: %w", fn, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%s returned a malformed envelope: %w", fn, err)
	}

	env := &Envelope{fields: fields}

	var success bool
	if raw, ok := fields["success"]; ok {
		if err := json.Unmarshal(raw, &success); err != nil {
			return nil, fmt.Errorf("%s returned a malformed success flag: %w", fn, err)
		}
	}
	if !success {
		message := "unknown error"
		if raw, ok := fields["error"]; ok {
			var s string
			if json.Unmarshal(raw, &s) == nil && s != "" {
				message = s
			}
		}
		return env, &RPCError{Fn: fn, Message: message}
	}

	return env, nil
}
