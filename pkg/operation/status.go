package operation

import (
	"context"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/copytree/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// CheckStatus reports whether any configured task still needs copying.
// Returns true when a destination is missing or an empty directory.
func CheckStatus(ctx context.Context, cfg *config.Config) (bool, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msg("checking status")

	for _, task := range cfg.Tasks {
		needs, err := taskNeedsCopy(task)
		if err != nil {
			return false, errors.Errorf("checking task %q: %w", task.Name, err)
		}
		if needs {
			logger.Debug().Str("task", task.Name).Msg("destination needs copying")
			return true, nil
		}
	}

	logger.Debug().Msg("all destinations populated")
	return false, nil
}

func taskNeedsCopy(task config.Task) (bool, error) {
	info, err := os.Lstat(task.Destination)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, errors.Errorf("inspecting destination %s: %w", task.Destination, err)
	}

	// A non-directory destination counts as populated.
	if !info.IsDir() {
		return false, nil
	}

	names, err := os.ReadDir(task.Destination)
	if err != nil {
		return false, errors.Errorf("reading destination %s: %w", task.Destination, err)
	}
	return len(names) == 0, nil
}
