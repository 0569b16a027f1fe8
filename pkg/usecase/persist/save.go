package persist

import (
	"context"
	"fmt"

	"github.com/anvil3d/scenevault/pkg/codec"
	"github.com/anvil3d/scenevault/pkg/model"
	"github.com/anvil3d/scenevault/pkg/scene"
	"github.com/anvil3d/scenevault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleSave persists the current live scene under the requested name.
// Nothing is written unless resolution, encoding, and path allocation
// all succeed.
func (u *UseCase) HandleSave(ctx context.Context, req model.SaveRequest) error {
	logger := logging.From(ctx)

	if err := req.Validate(); err != nil {
		logger.Error("save failed", "scene", req.Name, "error", err)
		return err
	}

	records := scene.Resolve(u.scene, u.spawner)

	data, err := codec.Encode(records)
	if err != nil {
		logger.Error("save failed", "scene", req.Name, "error", err)
		return goerr.Wrap(err, "failed to encode scene", goerr.V("scene", req.Name))
	}

	path, err := u.store.Allocate(req.Name)
	if err != nil {
		logger.Error("save failed", "scene", req.Name, "error", err)
		return goerr.Wrap(err, "failed to allocate save path", goerr.V("scene", req.Name))
	}

	if err := u.store.Write(path, data); err != nil {
		logger.Error("save failed", "scene", req.Name, "error", err)
		return goerr.Wrap(err, "failed to write scene", goerr.V("scene", req.Name), goerr.V("path", path))
	}

	logger.Info("save succeeded", "scene", req.Name, "path", path, "objects", len(records))
	fmt.Fprintf(u.output, "saved %q to %s (%d objects)\n", req.Name, path, len(records))
	return nil
}
