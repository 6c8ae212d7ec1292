// Package history provides the implementation for tracking and persisting watched channel state.
package history

import (
	"github.com/gardentv-cli/gardentv/filesystem"
	"github.com/gardentv-cli/gardentv/source"
	"github.com/gardentv-cli/gardentv/where"
	"github.com/metafates/gache"
)

// cacher provides an abstracted, disk-backed registry for watched channel records.
var cacher = gache.New[map[string]*SavedChannel](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of watched channel records from the persistent store.
func Get() (map[string]*SavedChannel, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedChannel), nil
	}
	return cached, nil
}

// Save persists a watched channel to the history registry.
// Re-watching an existing entry refreshes its timestamp, bumps its watch
// count, and keeps the freshest resolved address.
func Save(channel *source.Channel, resolvedURL string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedChannel(channel, resolvedURL)

	if existing, exists := saved[record.encode()]; exists {
		record.WatchCount = existing.WatchCount + 1
		if record.ResolvedURL == "" {
			record.ResolvedURL = existing.ResolvedURL
		}
	}

	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific record from the history registry.
func Remove(channel *SavedChannel) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, channel.encode())
	return cacher.Set(saved)
}
