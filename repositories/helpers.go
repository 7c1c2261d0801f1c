package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/arbitro/storage"
)

const (
	tournamentPrefix = "tournaments/"
	leaguePrefix     = "leagues/"
	matchPrefix      = "matches/"
	teamRegistryKey  = "teams/registry"
)

func loadJSON(ctx context.Context, store storage.Store, key string, dst interface{}, notFoundError error) error {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return notFoundError
		}
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func saveJSON(ctx context.Context, store storage.Store, key string, src interface{}) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}

func exists(ctx context.Context, store storage.Store, key string) (bool, error) {
	_, err := store.Get(ctx, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// listSuffixes returns the part of every key under prefix that follows it.
func listSuffixes(ctx context.Context, store storage.Store, prefix string) ([]string, error) {
	keys, err := store.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, prefix))
	}
	return names, nil
}
