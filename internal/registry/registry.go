package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"accountbridge/internal/db"
)

var ErrBindingNotFound error = errors.New("smart account binding not found")

// AccountRegistry persists EOA to smart-account bindings. Writes are plain
// last-write-wins upserts: concurrent creation of the same binding is benign
// because address derivation is deterministic.
type AccountRegistry struct {
	db Storage
}

func NewAccountRegistry(db Storage) *AccountRegistry {
	return &AccountRegistry{
		db: db,
	}
}

func (r *AccountRegistry) Migrate() error {
	if err := r.db.MigrateTable(&Binding{}); err != nil {
		return fmt.Errorf("migrate bindings table: %w", err)
	}
	return nil
}

func (r *AccountRegistry) Get(ctx context.Context, eoaAddress string, chainID uint64) (Binding, error) {
	var binding Binding

	conds := map[string]any{
		"eoa_address": strings.ToLower(eoaAddress),
		"chain_id":    chainID,
	}
	err := r.db.GetOneWhere(ctx, conds, &binding)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Binding{}, ErrBindingNotFound
		}
		return Binding{}, fmt.Errorf("get binding: %w", err)
	}

	return binding, nil
}

func (r *AccountRegistry) Put(ctx context.Context, binding Binding) error {
	binding.EOAAddress = strings.ToLower(binding.EOAAddress)
	binding.SmartAccountAddress = strings.ToLower(binding.SmartAccountAddress)

	err := r.db.Upsert(ctx, []string{"eoa_address", "chain_id"}, &binding)
	if err != nil {
		return fmt.Errorf("store binding: %w", err)
	}

	return nil
}

// Update merges the non-nil fields of upd into the stored binding and returns
// the result. Returns ErrBindingNotFound when no binding exists for the key.
func (r *AccountRegistry) Update(ctx context.Context, eoaAddress string, chainID uint64, upd BindingUpdate) (Binding, error) {
	updates := map[string]any{}
	if upd.IsDeployed != nil {
		updates["is_deployed"] = *upd.IsDeployed
	}
	if upd.LinkedAt != nil {
		updates["linked_at"] = *upd.LinkedAt
	}

	if len(updates) == 0 {
		return r.Get(ctx, eoaAddress, chainID)
	}

	conds := map[string]any{
		"eoa_address": strings.ToLower(eoaAddress),
		"chain_id":    chainID,
	}
	affected, err := r.db.UpdateWhere(ctx, &Binding{}, conds, updates)
	if err != nil {
		return Binding{}, fmt.Errorf("update binding: %w", err)
	}
	if affected == 0 {
		return Binding{}, ErrBindingNotFound
	}

	return r.Get(ctx, eoaAddress, chainID)
}

// ListByOwner returns the owner's bindings across all chains.
func (r *AccountRegistry) ListByOwner(ctx context.Context, eoaAddress string) ([]Binding, error) {
	bindings := []Binding{}

	err := r.db.GetAllBy(ctx, "eoa_address", strings.ToLower(eoaAddress), &bindings)
	if err != nil {
		return nil, fmt.Errorf("list bindings: %w", err)
	}

	return bindings, nil
}

// Delete removes a binding. Used for cleanup in tests and tooling; not exposed
// over HTTP.
func (r *AccountRegistry) Delete(ctx context.Context, eoaAddress string, chainID uint64) error {
	conds := map[string]any{
		"eoa_address": strings.ToLower(eoaAddress),
		"chain_id":    chainID,
	}
	affected, err := r.db.DeleteWhere(ctx, &Binding{}, conds)
	if err != nil {
		return fmt.Errorf("delete binding: %w", err)
	}
	if affected == 0 {
		return ErrBindingNotFound
	}

	return nil
}
