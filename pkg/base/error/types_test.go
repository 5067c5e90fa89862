package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionError(t *testing.T) {
	cause := errors.New("exit status 5")
	err := &ExecutionError{Cmd: "/sbin/lvm lvremove -f /dev/vg0/lv0", Stderr: "  Logical volume in use\n", Err: cause}

	assert.Equal(t, `command "/sbin/lvm lvremove -f /dev/vg0/lv0" failed: exit status 5, stderr: Logical volume in use`,
		err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsExecutionError(fmt.Errorf("destroy: %w", err)))
	assert.False(t, IsPolicyError(err))

	parseErr := &ExecutionError{Cmd: "lvs", Err: ErrorFailedParsing}
	assert.True(t, errors.Is(parseErr, ErrorFailedParsing))
	assert.Equal(t, `command "lvs" failed: failed to parse`, parseErr.Error())
}

func TestPolicyError(t *testing.T) {
	err := NewPolicyError("cannot extend to size %s because volume group extent size is %d KB", "20G", 4096)

	assert.Equal(t, "cannot extend to size 20G because volume group extent size is 4096 KB", err.Error())
	assert.True(t, IsPolicyError(err))
	assert.True(t, IsPolicyError(fmt.Errorf("set size: %w", err)))
	assert.False(t, IsExecutionError(err))
	assert.False(t, IsPolicyError(errors.New("error")))
	assert.False(t, IsPolicyError(nil))
}
