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

// Package lvresource manages LVM logical volume as an idempotent declarative resource
package lvresource

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dell/lvm-provider/pkg/base/capacity"
	errTypes "github.com/dell/lvm-provider/pkg/base/error"
	"github.com/dell/lvm-provider/pkg/base/linuxutils/lvm"
	"github.com/dell/lvm-provider/pkg/base/util"
)

// VolumeController is the lifecycle contract of a single logical volume.
// Errors are either *error.ExecutionError or *error.PolicyError
type VolumeController interface {
	Exists(vgName, name string) (bool, error)
	Create(vgName, name, size string) error
	Destroy(vgName, name string) error
	ReadSize(desiredSize, vgName, name string) (capacity.Value, bool, error)
	SetSize(requestedSize, vgName, name string) error
}

// Provider implements VolumeController on top of lvm utils
type Provider struct {
	lvm lvm.WrapLVM
	log *logrus.Entry
}

// NewProvider is a constructor for Provider
func NewProvider(lvmWrap lvm.WrapLVM, logger *logrus.Logger) *Provider {
	return &Provider{
		lvm: lvmWrap,
		log: logger.WithField("component", "Provider"),
	}
}

// Path returns device path of logical volume, it is used for all lvm calls after creation
func Path(vgName, name string) string {
	return fmt.Sprintf("/dev/%s/%s", vgName, name)
}

// Exists checks whether volume group vgName contains logical volume with exactly that name
func (p *Provider) Exists(vgName, name string) (bool, error) {
	lvs, err := p.lvm.GetLVsInVG(vgName)
	if err != nil {
		return false, err
	}
	return util.ContainsString(lvs, name), nil
}

// Create creates logical volume, size is optional. Existence isn't checked
func (p *Provider) Create(vgName, name, size string) error {
	p.log.WithFields(logrus.Fields{"method": "Create", "volume": Path(vgName, name)}).
		Infof("Creating logical volume with size %q", size)
	return p.lvm.LVCreate(name, size, vgName)
}

// Destroy removes logical volume. Existence isn't checked
func (p *Provider) Destroy(vgName, name string) error {
	p.log.WithFields(logrus.Fields{"method": "Destroy", "volume": Path(vgName, name)}).
		Info("Removing logical volume")
	return p.lvm.LVRemove(Path(vgName, name))
}

// ReadSize reads current size of logical volume in the unit of desiredSize, so result is comparable with it
// Returns false if desiredSize isn't a size, it means that there is no size constraint
func (p *Provider) ReadSize(desiredSize, vgName, name string) (capacity.Value, bool, error) {
	desired, ok := capacity.Parse(desiredSize)
	if !ok {
		return capacity.Value{}, false, nil
	}
	current, err := p.lvm.GetLVSize(Path(vgName, name), desired.Unit())
	if err != nil {
		return capacity.Value{}, false, err
	}
	return current, true, nil
}

// SetSize extends logical volume up to requestedSize.
// Shrinking and sizes which do not fit volume group extent are rejected with PolicyError before lvextend
func (p *Provider) SetSize(requestedSize, vgName, name string) error {
	ll := p.log.WithFields(logrus.Fields{"method": "SetSize", "volume": Path(vgName, name)})

	newSize, ok := capacity.Parse(requestedSize)
	if !ok {
		return errTypes.NewPolicyError("invalid size %q, expected number with one of K, M, G, T, P, E units",
			requestedSize)
	}
	currentSize, _, err := p.ReadSize(requestedSize, vgName, name)
	if err != nil {
		return err
	}
	extent, err := p.lvm.GetVGExtentSize(Path(vgName, name))
	if err != nil {
		return err
	}
	ll.Debugf("Current size %s, requested size %s, extent size %d KB", currentSize, newSize, extent)

	if newSize.Less(currentSize) {
		return errTypes.NewPolicyError("decreasing the size requires manual intervention (%s < %s)",
			newSize, currentSize)
	}
	if !newSize.Fits(extent) {
		return errTypes.NewPolicyError("cannot extend to size %s because volume group extent size is %d KB",
			newSize, extent)
	}

	ll.Infof("Extending logical volume from %s to %s", currentSize, newSize)
	return p.lvm.LVExtend(Path(vgName, name), requestedSize)
}
