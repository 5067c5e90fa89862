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
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/dell/lvm-provider/pkg/base"
	"github.com/dell/lvm-provider/pkg/base/capacity"
	errTypes "github.com/dell/lvm-provider/pkg/base/error"
	"github.com/dell/lvm-provider/pkg/base/util"
	"github.com/dell/lvm-provider/pkg/metrics/common"
)

// Ensure is the desired presence of logical volume
type Ensure string

const (
	// EnsurePresent means that volume has to exist, it is the default
	EnsurePresent Ensure = "present"
	// EnsureAbsent means that volume has to be removed
	EnsureAbsent Ensure = "absent"
)

// Action is what Reconcile did with logical volume
type Action string

const (
	// ActionNone means that actual state already matched desired state
	ActionNone Action = "none"
	// ActionCreated means that volume was created
	ActionCreated Action = "created"
	// ActionDestroyed means that volume was removed
	ActionDestroyed Action = "destroyed"
	// ActionResized means that volume was extended
	ActionResized Action = "resized"
)

const (
	errKindPolicy    = "policy"
	errKindExecution = "execution"
	errKindInvalid   = "invalid"
)

// Descriptor is the desired state of a single logical volume
type Descriptor struct {
	Name        string `yaml:"name"`
	VolumeGroup string `yaml:"volumeGroup"`
	// Size is optional, volume isn't resized when it is empty or isn't a size
	Size   string `yaml:"size,omitempty"`
	Ensure Ensure `yaml:"ensure,omitempty"`
}

// Validate checks mandatory fields of Descriptor
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: logical volume name", errTypes.ErrorEmptyParameter)
	}
	if strings.TrimSpace(d.VolumeGroup) == "" {
		return fmt.Errorf("%w: volume group of %s", errTypes.ErrorEmptyParameter, d.Name)
	}
	switch d.Ensure {
	case "", EnsurePresent, EnsureAbsent:
		return nil
	default:
		return fmt.Errorf("unknown ensure value %q of %s, expected %s or %s",
			d.Ensure, Path(d.VolumeGroup, d.Name), EnsurePresent, EnsureAbsent)
	}
}

// IsAbsent checks whether volume has to be removed
func (d Descriptor) IsAbsent() bool {
	return d.Ensure == EnsureAbsent
}

// Reconciler drives VolumeController until logical volume matches Descriptor
type Reconciler struct {
	ctrl VolumeController
	log  *logrus.Entry
}

// NewReconciler is a constructor for Reconciler
func NewReconciler(ctrl VolumeController, logger *logrus.Logger) *Reconciler {
	return &Reconciler{
		ctrl: ctrl,
		log:  logger.WithField("component", "Reconciler"),
	}
}

// Reconcile performs one evaluation of logical volume: exists -> create | destroy | read size -> set size.
// Every step depends on the result of the previous one, so they are executed strictly one after another
// Returns performed Action and error, errors are not retried
func (r *Reconciler) Reconcile(ctx context.Context, d Descriptor) (action Action, err error) {
	ll := util.AddCommonFields(ctx, r.log, "Reconcile").WithField("volume", Path(d.VolumeGroup, d.Name))
	start := time.Now()
	action = ActionNone
	defer func() {
		common.ReconcileDuration.ObserveSince(start, prometheus.Labels{"action": string(action)})
		if err != nil {
			common.ReconcileErrors.Inc(prometheus.Labels{"kind": errorKind(err)})
		}
	}()

	if err = d.Validate(); err != nil {
		return action, err
	}

	exists, err := r.ctrl.Exists(d.VolumeGroup, d.Name)
	if err != nil {
		return action, err
	}
	ll.Debugf("Volume exists: %v, ensure: %q", exists, d.Ensure)

	switch {
	case !exists && d.IsAbsent():
		return action, nil
	case !exists:
		if err = r.ctrl.Create(d.VolumeGroup, d.Name, d.Size); err != nil {
			return action, err
		}
		return ActionCreated, nil
	case d.IsAbsent():
		if err = r.ctrl.Destroy(d.VolumeGroup, d.Name); err != nil {
			return action, err
		}
		return ActionDestroyed, nil
	}

	current, ok, err := r.ctrl.ReadSize(d.Size, d.VolumeGroup, d.Name)
	if err != nil {
		return action, err
	}
	if !ok {
		ll.Debugf("Size %q isn't set or isn't a size, skip size check", d.Size)
		return action, nil
	}
	// ReadSize succeeded, so d.Size is a valid size
	desired, _ := capacity.Parse(d.Size)
	if current.Equal(desired) {
		return action, nil
	}

	ll.Infof("Size %s differs from desired %s", current, desired)
	if err = r.ctrl.SetSize(d.Size, d.VolumeGroup, d.Name); err != nil {
		return action, err
	}
	return ActionResized, nil
}

// Apply reconciles descriptors one by one. Failure of one volume doesn't stop others
// Returns error which describes all failed volumes
func (r *Reconciler) Apply(ctx context.Context, descriptors []Descriptor) error {
	ll := r.log.WithField("method", "Apply")
	failed := make([]string, 0)

	for _, d := range descriptors {
		reqCtx := context.WithValue(ctx, base.RequestUUID, uuid.New().String())
		vll := util.AddCommonFields(reqCtx, r.log, "Apply").WithField("volume", Path(d.VolumeGroup, d.Name))

		action, err := r.Reconcile(reqCtx, d)
		switch {
		case err == nil:
			if action != ActionNone {
				vll.Infof("Logical volume %s", action)
			}
			continue
		case errTypes.IsPolicyError(err):
			vll.Warnf("Change requires operator intervention: %v", err)
		default:
			vll.Errorf("Unable to reconcile logical volume: %v", err)
		}
		failed = append(failed, fmt.Sprintf("%s: %v", Path(d.VolumeGroup, d.Name), err))
	}

	if len(failed) > 0 {
		ll.Errorf("%d of %d volumes weren't reconciled", len(failed), len(descriptors))
		return fmt.Errorf("%d of %d volumes weren't reconciled: %s",
			len(failed), len(descriptors), strings.Join(failed, "; "))
	}
	ll.Debugf("%d volumes are reconciled", len(descriptors))
	return nil
}

func errorKind(err error) string {
	switch {
	case errTypes.IsPolicyError(err):
		return errKindPolicy
	case errTypes.IsExecutionError(err):
		return errKindExecution
	default:
		return errKindInvalid
	}
}
