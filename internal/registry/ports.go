package registry

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Upsert(ctx context.Context, conflictColumns []string, record any) error
	GetOneWhere(ctx context.Context, conds map[string]any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	UpdateWhere(ctx context.Context, model any, conds map[string]any, updates map[string]any) (int64, error)
	DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error)
}
