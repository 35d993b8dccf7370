package utils

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFileAndLoC(t *testing.T) {
	// the module prefix depends on where the repo is checked out, so only
	// the stable tail of the path is asserted
	_, _, line, _ := runtime.Caller(0)
	got := GetFileAndLoC(0)

	want := fmt.Sprintf("pkg/utils/debug_test.go:%d", line+1)
	assert.True(t, strings.HasSuffix(got, want), "GetFileAndLoC() = %v, want suffix %v", got, want)
}
