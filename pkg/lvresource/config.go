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
	"os"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v2"
)

// Config is the desired state file, example:
//
//	volumes:
//	  - name: data
//	    volumeGroup: vg0
//	    size: 10G
//	  - name: scratch
//	    volumeGroup: vg0
//	    ensure: absent
type Config struct {
	Volumes []Descriptor `yaml:"volumes"`
}

// ReadConfig reads and validates desired state file
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	c := &Config{}
	if err = yaml.UnmarshalStrict(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every descriptor and that no volume is described twice
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Volumes))
	for _, d := range c.Volumes {
		if err := d.Validate(); err != nil {
			return err
		}
		path := Path(d.VolumeGroup, d.Name)
		if _, ok := seen[path]; ok {
			return fmt.Errorf("logical volume %s is described more than once", path)
		}
		seen[path] = struct{}{}
	}
	return nil
}

// ApplyFile reads desired state file and applies it
func (r *Reconciler) ApplyFile(ctx context.Context, path string) error {
	c, err := ReadConfig(path)
	if err != nil {
		return err
	}
	return r.Apply(ctx, c.Volumes)
}

// UpdateOnConfigChange applies desired state file and applies it again on every change of the file
// Returns when ctx is done or watcher is closed, error is returned if file can't be watched anymore
func (r *Reconciler) UpdateOnConfigChange(ctx context.Context, watcher *fsnotify.Watcher, path string) error {
	ll := r.log.WithField("method", "UpdateOnConfigChange")
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("can't add config %s to file watcher: %w", path, err)
	}
	r.applyAndLog(ctx, path)

	for {
		select {
		case <-ctx.Done():
			ll.Info("stop watching config")
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				ll.Info("file watcher is closed")
				return nil
			}
			ll.Errorf("file watcher error: %v", err)
		case event, ok := <-watcher.Events:
			if !ok {
				ll.Info("file watcher is closed")
				return nil
			}
			ll.Debugf("event %s came", event.Op)

			switch {
			case event.Op == fsnotify.Chmod:
				continue
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// editors replace file, watch is lost together with the old inode
				_ = watcher.Remove(path)
				if err := watcher.Add(path); err != nil {
					return fmt.Errorf("can't add config %s to file watcher: %w", path, err)
				}
			}

			ll.Debugf("triggering volumes update on %s event", event.Op)
			r.applyAndLog(ctx, path)
		}
	}
}

func (r *Reconciler) applyAndLog(ctx context.Context, path string) {
	if err := r.ApplyFile(ctx, path); err != nil {
		r.log.WithField("method", "applyAndLog").Errorf("Desired state %s wasn't applied: %v", path, err)
	}
}
