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

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/dell/lvm-provider/pkg/base/capacity"
)

// VolumeControllerMock is the mock implementation of VolumeController interface for test purposes.
// All of the mock methods based on stretchr/testify/mock.
type VolumeControllerMock struct {
	mock.Mock
}

// Exists is the mock implementation of Exists method from VolumeController
// Returns existence of logical volume and error which user set up in tests
func (vc *VolumeControllerMock) Exists(vgName, name string) (bool, error) {
	args := vc.Mock.Called(vgName, name)

	return args.Bool(0), args.Error(1)
}

// Create is the mock implementation of Create method from VolumeController
func (vc *VolumeControllerMock) Create(vgName, name, size string) error {
	args := vc.Mock.Called(vgName, name, size)

	return args.Error(0)
}

// Destroy is the mock implementation of Destroy method from VolumeController
func (vc *VolumeControllerMock) Destroy(vgName, name string) error {
	args := vc.Mock.Called(vgName, name)

	return args.Error(0)
}

// ReadSize is the mock implementation of ReadSize method from VolumeController
// Returns capacity.Value, flag whether size was read and error
func (vc *VolumeControllerMock) ReadSize(desiredSize, vgName, name string) (capacity.Value, bool, error) {
	args := vc.Mock.Called(desiredSize, vgName, name)

	return args.Get(0).(capacity.Value), args.Bool(1), args.Error(2)
}

// SetSize is the mock implementation of SetSize method from VolumeController
func (vc *VolumeControllerMock) SetSize(requestedSize, vgName, name string) error {
	args := vc.Mock.Called(requestedSize, vgName, name)

	return args.Error(0)
}
