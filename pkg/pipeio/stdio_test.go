package pipeio

import (
	"testing"
)

func TestStdio_CloseTwice(t *testing.T) {
	s := NewStdio()

	first := s.Close()
	if second := s.Close(); second != first {
		t.Errorf("second Close() = %v; want %v", second, first)
	}
}
