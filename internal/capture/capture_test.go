package capture

import (
	"errors"
	"testing"

	"github.com/hdrsnap/hdrsnap/internal/preview"
)

func TestCancelOrWrapTranslatesPreviewCancellation(t *testing.T) {
	if got := cancelOrWrap(preview.ErrCancelled); !errors.Is(got, ErrCancelled) {
		t.Fatalf("cancelOrWrap(preview.ErrCancelled) = %v, want ErrCancelled", got)
	}
}

func TestCancelOrWrapPassesThroughOtherErrors(t *testing.T) {
	other := errors.New("boom")
	if got := cancelOrWrap(other); got != other {
		t.Fatalf("cancelOrWrap(other) = %v, want unchanged", got)
	}
}
