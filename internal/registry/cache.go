package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"collection-generator/internal/analyze"
)

// cacheFilePerm is the permission for registry cache files.
const cacheFilePerm = 0o644

// snapshot is the on-disk form of a built registry.
type snapshot struct {
	Hash    string          `msgpack:"hash"`
	Entries []snapshotEntry `msgpack:"entries"`
}

// snapshotEntry is one registered type in the on-disk snapshot.
type snapshotEntry struct {
	PkgPath       string `msgpack:"pkg_path"`
	Name          string `msgpack:"name"`
	Contextual    bool   `msgpack:"contextual"`
	Intrinsic     bool   `msgpack:"intrinsic"`
	DefaultMethod bool   `msgpack:"default_method"`
}

// SaveCache writes a registry snapshot to path. The hash identifies the
// inputs the registry was built from; LoadCache refuses snapshots whose
// hash no longer matches.
func SaveCache(path string, reg *Registry, hash string) error {
	snap := snapshot{Hash: hash}

	for _, id := range sortedIDs(reg.entries) {
		e := reg.entries[id]
		snap.Entries = append(snap.Entries, snapshotEntry{
			PkgPath:       id.PkgPath,
			Name:          id.Name,
			Contextual:    e.contextual,
			Intrinsic:     e.intrinsic,
			DefaultMethod: e.defaultMethod,
		})
	}

	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encoding registry cache: %w", err)
	}

	if err := os.WriteFile(path, data, cacheFilePerm); err != nil {
		return fmt.Errorf("writing registry cache: %w", err)
	}

	return nil
}

// LoadCache reads a registry snapshot from path. It returns (nil, false, nil)
// on a cache miss: the file does not exist or was built from different inputs.
func LoadCache(path, hash string) (*Registry, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("reading registry cache: %w", err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("decoding registry cache: %w", err)
	}

	if snap.Hash != hash {
		return nil, false, nil
	}

	reg := New()

	for _, e := range snap.Entries {
		id := analyze.TypeID{PkgPath: e.PkgPath, Name: e.Name}
		if e.Contextual {
			reg.AddContextual(id)
		}

		if e.Intrinsic {
			reg.AddIntrinsicDefault(id, e.DefaultMethod)
		}
	}

	return reg.Freeze(), true, nil
}

// sortedIDs returns registry keys in a stable order for snapshot encoding.
func sortedIDs(entries map[analyze.TypeID]entry) []analyze.TypeID {
	ids := make([]analyze.TypeID, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].PkgPath != ids[j].PkgPath {
			return ids[i].PkgPath < ids[j].PkgPath
		}

		return ids[i].Name < ids[j].Name
	})

	return ids
}
