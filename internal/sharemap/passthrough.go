package sharemap

import (
	"context"
	"fmt"

	"github.com/hbjs97/dstack/internal/unc"
)

// Passthrough는 네트워크 경로를 OS가 직접 다루는 플랫폼용 Mapper다.
// 아무것도 매핑하지 않고 share root를 그대로 식별자로 돌려준다.
type Passthrough struct{}

func (Passthrough) Acquire(_ context.Context, shareRoot string) (string, error) {
	root, _, ok := unc.Split(shareRoot)
	if !ok {
		return "", fmt.Errorf("sharemap.Acquire: %w: 네트워크 경로 아님: %s", ErrPrecondition, shareRoot)
	}
	return root, nil
}

func (Passthrough) Release(_ context.Context, id string) error {
	return fmt.Errorf("sharemap.Release: %w: %s", ErrNotTracked, id)
}

func (Passthrough) IsTracked(string) bool { return false }

func (Passthrough) Mappings() []Mapping { return nil }

func (Passthrough) ReleaseAll(context.Context) error { return nil }
