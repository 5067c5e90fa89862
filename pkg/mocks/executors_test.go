package mocks

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/dell/lvm-provider/pkg/base/command"
)

func TestExecutorsImplementCmdExecutor(t *testing.T) {
	executors := []command.CmdExecutor{
		EmptyExecutorSuccess{},
		EmptyExecutorFail{},
		NewMockExecutor(LVMCommands),
		&GoMockExecutor{},
	}
	for _, e := range executors {
		assert.NotPanics(t, func() {
			e.SetLogger(logrus.New())
			e.SetLevel(logrus.DebugLevel)
		})
	}

	_, _, err := EmptyExecutorFail{}.RunCmd("/sbin/lvm lvs vg0")
	assert.Equal(t, "error", err.Error())
}
