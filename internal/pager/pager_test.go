package pager

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"
)

func TestIsClosed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"epipe", syscall.EPIPE, true},
		{"wrapped epipe", fmt.Errorf("writing output: %w", syscall.EPIPE), true},
		{"path error epipe", &os.PathError{Op: "write", Path: "|1", Err: syscall.EPIPE}, true},
		{"closed pipe", io.ErrClosedPipe, true},
		{"file closed", os.ErrClosed, true},
		{"other io error", errors.New("disk on fire"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		if got := IsClosed(tt.err); got != tt.want {
			t.Errorf("%s: IsClosed(%v) = %v, want %v", tt.name, tt.err, got, tt.want)
		}
	}
}

func TestNewNoPagerWritesDirectly(t *testing.T) {
	out, err := New("", true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer out.Close()
	if out.cmd != nil {
		t.Error("noPager output spawned a pager process")
	}
}

func TestCloseWithoutPagerIsNil(t *testing.T) {
	out := &Output{w: io.Discard}
	if err := out.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}
