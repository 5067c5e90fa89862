/*
Copyright © 2020 Dell Inc. or its subsidiaries. All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package lvresource

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dell/lvm-provider/pkg/base/capacity"
	errTypes "github.com/dell/lvm-provider/pkg/base/error"
	"github.com/dell/lvm-provider/pkg/metrics/common"
	"github.com/dell/lvm-provider/pkg/mocks"
)

var testCtx = context.Background()

func mustParse(t *testing.T, s string) capacity.Value {
	v, ok := capacity.Parse(s)
	assert.True(t, ok, s)
	return v
}

func TestDescriptor_Validate(t *testing.T) {
	assert.Nil(t, Descriptor{Name: "vol1", VolumeGroup: "vg0"}.Validate())
	assert.Nil(t, Descriptor{Name: "vol1", VolumeGroup: "vg0", Size: "1G", Ensure: EnsureAbsent}.Validate())

	err := Descriptor{VolumeGroup: "vg0"}.Validate()
	assert.True(t, errors.Is(err, errTypes.ErrorEmptyParameter))
	err = Descriptor{Name: "vol1", VolumeGroup: " "}.Validate()
	assert.True(t, errors.Is(err, errTypes.ErrorEmptyParameter))
	err = Descriptor{Name: "vol1", VolumeGroup: "vg0", Ensure: "latest"}.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "unknown ensure value")
}

func TestReconcile_Create(t *testing.T) {
	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(false, nil)
	ctrl.On("Create", testVG, testLV, "10G").Return(nil)

	action, err := r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Size: "10G"})
	assert.Nil(t, err)
	assert.Equal(t, ActionCreated, action)
	ctrl.AssertExpectations(t)
	ctrl.AssertNotCalled(t, "ReadSize", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_CreateWithoutSize(t *testing.T) {
	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(false, nil)
	ctrl.On("Create", testVG, testLV, "").Return(nil)

	action, err := r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Ensure: EnsurePresent})
	assert.Nil(t, err)
	assert.Equal(t, ActionCreated, action)
}

func TestReconcile_AbsentAndMissing(t *testing.T) {
	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(false, nil)

	action, err := r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Ensure: EnsureAbsent})
	assert.Nil(t, err)
	assert.Equal(t, ActionNone, action)
	ctrl.AssertNotCalled(t, "Destroy", testVG, testLV)
	ctrl.AssertNotCalled(t, "Create", testVG, testLV, "")
}

func TestReconcile_Destroy(t *testing.T) {
	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(true, nil)
	ctrl.On("Destroy", testVG, testLV).Return(nil)

	action, err := r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Size: "10G", Ensure: EnsureAbsent})
	assert.Nil(t, err)
	assert.Equal(t, ActionDestroyed, action)
	ctrl.AssertNotCalled(t, "ReadSize", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_NoSizeConstraint(t *testing.T) {
	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(true, nil)
	ctrl.On("ReadSize", "", testVG, testLV).Return(capacity.Value{}, false, nil)

	action, err := r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG})
	assert.Nil(t, err)
	assert.Equal(t, ActionNone, action)
	ctrl.AssertNotCalled(t, "SetSize", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_SizeMatches(t *testing.T) {
	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(true, nil)
	ctrl.On("ReadSize", "10G", testVG, testLV).Return(mustParse(t, "10.00g"), true, nil)

	action, err := r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Size: "10G"})
	assert.Nil(t, err)
	assert.Equal(t, ActionNone, action)
	ctrl.AssertNotCalled(t, "SetSize", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_Resize(t *testing.T) {
	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(true, nil)
	ctrl.On("ReadSize", "20480000K", testVG, testLV).Return(mustParse(t, "10485760.00k"), true, nil)
	ctrl.On("SetSize", "20480000K", testVG, testLV).Return(nil)

	action, err := r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Size: "20480000K"})
	assert.Nil(t, err)
	assert.Equal(t, ActionResized, action)
	ctrl.AssertExpectations(t)
}

func TestReconcile_ResizeRejected(t *testing.T) {
	var (
		ctrl      = &mocks.VolumeControllerMock{}
		r         = NewReconciler(ctrl, testLogger)
		labels    = prometheus.Labels{"kind": errKindPolicy}
		policyErr = errTypes.NewPolicyError("decreasing the size requires manual intervention (5G < 10.00g)")
	)
	ctrl.On("Exists", testVG, testLV).Return(true, nil)
	ctrl.On("ReadSize", "5G", testVG, testLV).Return(mustParse(t, "10.00g"), true, nil)
	ctrl.On("SetSize", "5G", testVG, testLV).Return(policyErr)

	before := testutil.ToFloat64(common.ReconcileErrors.CounterVec.With(labels))
	action, err := r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Size: "5G"})
	assert.Equal(t, ActionNone, action)
	assert.Equal(t, policyErr, err)
	assert.Equal(t, before+1, testutil.ToFloat64(common.ReconcileErrors.CounterVec.With(labels)))
}

func TestReconcile_Failures(t *testing.T) {
	execErr := &errTypes.ExecutionError{Cmd: "/sbin/lvm lvs vg0", Err: errors.New("exit status 5")}

	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(false, execErr)
	action, err := r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Size: "10G"})
	assert.Equal(t, ActionNone, action)
	assert.True(t, errTypes.IsExecutionError(err))
	ctrl.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)

	ctrl = &mocks.VolumeControllerMock{}
	r = NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(false, nil)
	ctrl.On("Create", testVG, testLV, "10G").Return(execErr)
	action, err = r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Size: "10G"})
	assert.Equal(t, ActionNone, action)
	assert.Equal(t, execErr, err)

	ctrl = &mocks.VolumeControllerMock{}
	r = NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, testLV).Return(true, nil)
	ctrl.On("ReadSize", "10G", testVG, testLV).Return(capacity.Value{}, false, execErr)
	action, err = r.Reconcile(testCtx, Descriptor{Name: testLV, VolumeGroup: testVG, Size: "10G"})
	assert.Equal(t, ActionNone, action)
	assert.Equal(t, execErr, err)
	ctrl.AssertNotCalled(t, "SetSize", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_InvalidDescriptor(t *testing.T) {
	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)

	_, err := r.Reconcile(testCtx, Descriptor{Name: testLV})
	assert.True(t, errors.Is(err, errTypes.ErrorEmptyParameter))
	ctrl.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestApply(t *testing.T) {
	ctrl := &mocks.VolumeControllerMock{}
	r := NewReconciler(ctrl, testLogger)
	ctrl.On("Exists", testVG, "vol1").Return(true, nil)
	ctrl.On("ReadSize", "5G", testVG, "vol1").Return(mustParse(t, "10.00g"), true, nil)
	ctrl.On("SetSize", "5G", testVG, "vol1").
		Return(errTypes.NewPolicyError("decreasing the size requires manual intervention (5G < 10.00g)"))
	ctrl.On("Exists", testVG, "vol2").Return(false, nil)
	ctrl.On("Create", testVG, "vol2", "1G").Return(nil)
	ctrl.On("Exists", testVG, "vol3").Return(true, nil)
	ctrl.On("Destroy", testVG, "vol3").Return(nil)

	err := r.Apply(testCtx, []Descriptor{
		{Name: "vol1", VolumeGroup: testVG, Size: "5G"},
		{Name: "vol2", VolumeGroup: testVG, Size: "1G"},
		{Name: "vol3", VolumeGroup: testVG, Ensure: EnsureAbsent},
	})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "1 of 3 volumes weren't reconciled")
	assert.Contains(t, err.Error(), "/dev/vg0/vol1: decreasing the size")
	ctrl.AssertExpectations(t)

	assert.Nil(t, r.Apply(testCtx, []Descriptor{{Name: "vol2", VolumeGroup: testVG, Size: "1G"}}))
	assert.Nil(t, r.Apply(testCtx, nil))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, errKindPolicy, errorKind(errTypes.NewPolicyError("shrink")))
	assert.Equal(t, errKindExecution, errorKind(&errTypes.ExecutionError{Err: errors.New("exit status 5")}))
	assert.Equal(t, errKindInvalid, errorKind(errTypes.ErrorEmptyParameter))
}
