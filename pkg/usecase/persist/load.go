package persist

import (
	"context"
	"fmt"

	"github.com/anvil3d/scenevault/pkg/codec"
	"github.com/anvil3d/scenevault/pkg/model"
	"github.com/anvil3d/scenevault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleLoad replaces the live scene with the one saved under the
// requested name. The load is all-or-nothing at the read and decode
// stages: the scene is mutated only after both have fully succeeded.
func (u *UseCase) HandleLoad(ctx context.Context, req model.LoadRequest) error {
	logger := logging.From(ctx)

	if err := req.Validate(); err != nil {
		logger.Error("load failed", "scene", req.Name, "error", err)
		return err
	}

	data, err := u.store.Read(req.Name)
	if err != nil {
		logger.Error("load failed", "scene", req.Name, "error", err)
		return goerr.Wrap(err, "failed to read scene", goerr.V("scene", req.Name))
	}

	requests, err := codec.Decode(data)
	if err != nil {
		logger.Error("load failed", "scene", req.Name, "error", err)
		return goerr.Wrap(err, "failed to decode scene", goerr.V("scene", req.Name))
	}

	// Commit point. Despawn everything currently tracked before the
	// first spawn request goes out, so the replay starts from an empty
	// scene rather than a mixed one.
	for _, obj := range u.scene.Tracked() {
		u.scene.Despawn(obj.Tag)
	}

	for _, sr := range requests {
		if err := u.spawner.Spawn(ctx, sr); err != nil {
			logger.Warn("spawn request rejected", "scene", req.Name, "kind", sr.Kind, "error", err)
		}
	}

	path := u.store.Path(req.Name)
	logger.Info("load succeeded", "scene", req.Name, "path", path, "objects", len(requests))
	fmt.Fprintf(u.output, "loaded %q from %s (%d objects)\n", req.Name, path, len(requests))
	return nil
}
