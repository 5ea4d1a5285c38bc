// Package source loads menu entries from the places a catalog can live: the
// compiled-in sample, a YAML/JSON file, a DynamoDB table, or a PostgreSQL table.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/menu-browser/internal/catalog"
)

// Kind names a source implementation.
type Kind string

const (
	KindStatic   Kind = "static"
	KindFile     Kind = "file"
	KindDynamoDB Kind = "dynamodb"
	KindPostgres Kind = "postgres"
)

var (
	ErrUnknownSource = errors.New("unknown catalog source")
	ErrMissingPath   = errors.New("catalog file path is required")
	ErrMissingTable  = errors.New("dynamodb table name is required")
	ErrMissingDSN    = errors.New("database url is required")
)

// Source yields the raw entries of a catalog.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]catalog.Entry, error)
}

// Config selects and parameterises a source.
type Config struct {
	Kind     Kind
	Path     string
	Table    string
	Endpoint string
	DSN      string
}

// ParseKind normalises a user-supplied source name.
func ParseKind(value string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(value))); k {
	case "":
		return KindStatic, nil
	case KindStatic, KindFile, KindDynamoDB, KindPostgres:
		return k, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSource, value)
	}
}

// Check reports whether the settings required by the configured kind are present.
func (c Config) Check() error {
	kind, err := ParseKind(string(c.Kind))
	if err != nil {
		return err
	}
	switch kind {
	case KindFile:
		if strings.TrimSpace(c.Path) == "" {
			return ErrMissingPath
		}
	case KindDynamoDB:
		if strings.TrimSpace(c.Table) == "" {
			return ErrMissingTable
		}
	case KindPostgres:
		if strings.TrimSpace(c.DSN) == "" {
			return ErrMissingDSN
		}
	}
	return nil
}

// New builds the source described by cfg. Remote clients are created here but
// no data is read until Load is called.
func New(ctx context.Context, cfg Config) (Source, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	kind, _ := ParseKind(string(cfg.Kind))
	switch kind {
	case KindFile:
		return NewFile(cfg.Path), nil
	case KindDynamoDB:
		return NewDynamoDBFromConfig(ctx, cfg.Table, cfg.Endpoint)
	case KindPostgres:
		return NewPostgresFromDSN(ctx, cfg.DSN)
	default:
		return NewStatic(nil), nil
	}
}

// IsSynchronous reports whether a source can be read without blocking on I/O.
func IsSynchronous(src Source) bool {
	_, ok := src.(*Static)
	return ok
}
