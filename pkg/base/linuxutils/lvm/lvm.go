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

// Package lvm contains code for running and interpreting output of system logical volume manager utils
// such as: lvcreate, lvremove, lvextend, lvs
package lvm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dell/lvm-provider/pkg/base/capacity"
	"github.com/dell/lvm-provider/pkg/base/command"
	errTypes "github.com/dell/lvm-provider/pkg/base/error"
	"github.com/dell/lvm-provider/pkg/base/util"
)

const (
	// DefaultLVMPath is a path in the system to the lvm util
	DefaultLVMPath = "/sbin/lvm"
	// LVCreateCmdTmpl create LV cmd
	LVCreateCmdTmpl = "%s -n %s %s" // add lvcreate cmd, LV name and VG name
	// LVCreateWithSizeCmdTmpl create LV with provided size cmd
	LVCreateWithSizeCmdTmpl = "%s -n %s --size %s %s" // add lvcreate cmd, LV name, size and VG name
	// LVRemoveCmdTmpl remove LV cmd
	LVRemoveCmdTmpl = "%s -f %s" // add lvremove cmd and full LV name
	// LVExtendCmdTmpl extend LV cmd
	LVExtendCmdTmpl = "%s -L %s %s" // add lvextend cmd, size and full LV name
	// LVsInVGCmdTmpl print LVs in VG cmd
	LVsInVGCmdTmpl = "%s %s" // add lvs cmd and VG name
	// LVSizeCmdTmpl print LV with size in provided unit
	LVSizeCmdTmpl = "%s --noheading --unit %s %s" // add lvs cmd, lowercase unit and full LV name
	// VGExtentSizeCmdTmpl print extent size in KB of VG which LV belongs to
	VGExtentSizeCmdTmpl = "%s --noheading -o vg_extent_size --units k %s" // add lvs cmd and full LV name
)

// lvsSizeColumn is the index of LSize in default lvs columns: LV VG Attr LSize [Pool Origin ...]
const lvsSizeColumn = 3

// extentSizeFmt matches output of VGExtentSizeCmdTmpl, e.g. "  4096.00k"
var extentSizeFmt = regexp.MustCompile(`\s+(\d+)\.\d+k`)

// Commands binds logical LVM operations to the executables which perform them
type Commands struct {
	Create string
	Remove string
	Extend string
	List   string
}

// CommandsFor returns Commands which run lvm subcommands through lvmPath binary
func CommandsFor(lvmPath string) Commands {
	return Commands{
		Create: lvmPath + " lvcreate",
		Remove: lvmPath + " lvremove",
		Extend: lvmPath + " lvextend",
		List:   lvmPath + " lvs",
	}
}

// DefaultCommands are Commands based on DefaultLVMPath
var DefaultCommands = CommandsFor(DefaultLVMPath)

// WrapLVM is an interface that encapsulates operation with system logical volume manager
type WrapLVM interface {
	LVCreate(name, size, vgName string) error
	LVRemove(fullLVName string) error
	LVExtend(fullLVName, size string) error
	GetLVsInVG(vgName string) ([]string, error)
	GetLVSize(fullLVName string, unit capacity.Unit) (capacity.Value, error)
	GetVGExtentSize(fullLVName string) (int64, error)
}

// LVM is an implementation of WrapLVM interface and is a wrap for system lvm utils
type LVM struct {
	e    command.CmdExecutor
	cmds Commands
	log  *logrus.Entry
}

// NewLVM is a constructor for LVM struct which uses DefaultCommands
func NewLVM(e command.CmdExecutor, l *logrus.Logger) *LVM {
	return NewLVMWithCommands(e, DefaultCommands, l)
}

// NewLVMWithCommands is a constructor for LVM struct with custom command binding
func NewLVMWithCommands(e command.CmdExecutor, cmds Commands, l *logrus.Logger) *LVM {
	return &LVM{
		e:    e,
		cmds: cmds,
		log:  l.WithField("component", "LVM"),
	}
}

// LVCreate creates logical volume in volume group. Size is optional, lvm decides about it when size is empty
// Receives name of created LV, size which is a string like 1.2G, 100M and name of VG which LV should be based on
// Returns ExecutionError if something went wrong
func (l *LVM) LVCreate(name, size, vgName string) error {
	var cmd, cmdName string
	if size == "" {
		cmd = fmt.Sprintf(LVCreateCmdTmpl, l.cmds.Create, name, vgName)
		cmdName = fmt.Sprintf(LVCreateCmdTmpl, l.cmds.Create, "", "")
	} else {
		cmd = fmt.Sprintf(LVCreateWithSizeCmdTmpl, l.cmds.Create, name, size, vgName)
		cmdName = fmt.Sprintf(LVCreateWithSizeCmdTmpl, l.cmds.Create, "", "", "")
	}
	_, err := l.run(cmd, cmdName)
	return err
}

// LVRemove removes logical volume
// Receives fullLVName that is a path to LV
// Returns ExecutionError if something went wrong
func (l *LVM) LVRemove(fullLVName string) error {
	_, err := l.run(fmt.Sprintf(LVRemoveCmdTmpl, l.cmds.Remove, fullLVName),
		fmt.Sprintf(LVRemoveCmdTmpl, l.cmds.Remove, ""))
	return err
}

// LVExtend extends logical volume up to provided size
// Receives full name of a logical volume and size which is a string like 20G
// Returns ExecutionError if something went wrong
func (l *LVM) LVExtend(fullLVName, size string) error {
	_, err := l.run(fmt.Sprintf(LVExtendCmdTmpl, l.cmds.Extend, size, fullLVName),
		fmt.Sprintf(LVExtendCmdTmpl, l.cmds.Extend, "", ""))
	return err
}

// GetLVsInVG collects LVs for given volume group
// Receives Volume Group name
// Returns slice of LV names, name is the first column of every line of lvs output
func (l *LVM) GetLVsInVG(vgName string) ([]string, error) {
	/*
		Example of output:
		root@provo-goop:~# lvs vg0
		  LV    VG  Attr       LSize  Pool Origin Data%  Meta%  Move Log Cpy%Sync Convert
		  vol1  vg0 -wi-a----- 10.00g
		  vol10 vg0 -wi-a-----  4.00g
	*/
	stdout, err := l.run(fmt.Sprintf(LVsInVGCmdTmpl, l.cmds.List, vgName),
		fmt.Sprintf(LVsInVGCmdTmpl, l.cmds.List, ""))
	if err != nil {
		return nil, err
	}

	lvs := make([]string, 0)
	for _, line := range util.SplitAndTrimSpace(stdout, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || isLVsHeader(fields) {
			continue
		}
		lvs = append(lvs, fields[0])
	}
	return lvs, nil
}

// GetLVSize reads current size of logical volume in provided unit
// Receives full name of a logical volume and unit in which lvs should print size
// Returns size or ExecutionError if lvs failed or there is no size in the output
func (l *LVM) GetLVSize(fullLVName string, unit capacity.Unit) (capacity.Value, error) {
	/*
		Example of output:
		root@provo-goop:~# lvs --noheading --unit g /dev/vg0/vol1
		  vol1 vg0 -wi-a----- 10.00g
	*/
	cmd := fmt.Sprintf(LVSizeCmdTmpl, l.cmds.List, strings.ToLower(string(unit)), fullLVName)
	stdout, err := l.run(cmd, fmt.Sprintf(LVSizeCmdTmpl, l.cmds.List, "", ""))
	if err != nil {
		return capacity.Value{}, err
	}

	size, ok := lvSizeFromOutput(stdout)
	if !ok {
		return capacity.Value{}, &errTypes.ExecutionError{
			Cmd: cmd,
			Err: fmt.Errorf("%w size of %s from output %q", errTypes.ErrorFailedParsing, fullLVName, stdout),
		}
	}
	return size, nil
}

// GetVGExtentSize reads extent size of volume group which logical volume belongs to
// Receives full name of a logical volume
// Returns extent size in whole KB (fraction is discarded) or ExecutionError
func (l *LVM) GetVGExtentSize(fullLVName string) (int64, error) {
	/*
		Example of output:
		root@provo-goop:~# lvs --noheading -o vg_extent_size --units k /dev/vg0/vol1
		  4096.00k
	*/
	cmd := fmt.Sprintf(VGExtentSizeCmdTmpl, l.cmds.List, fullLVName)
	stdout, err := l.run(cmd, fmt.Sprintf(VGExtentSizeCmdTmpl, l.cmds.List, ""))
	if err != nil {
		return 0, err
	}

	matches := extentSizeFmt.FindStringSubmatch(stdout)
	if matches == nil {
		return 0, &errTypes.ExecutionError{
			Cmd: cmd,
			Err: fmt.Errorf("%w extent size of %s from output %q", errTypes.ErrorFailedParsing, fullLVName, stdout),
		}
	}
	extent, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, &errTypes.ExecutionError{Cmd: cmd, Err: fmt.Errorf("%w: %v", errTypes.ErrorFailedParsing, err)}
	}
	return extent, nil
}

// run executes cmd with metrics labeled by cmdName
// Returns stdout or ExecutionError which holds stderr
func (l *LVM) run(cmd, cmdName string) (string, error) {
	stdout, stderr, err := l.e.RunCmd(cmd,
		command.UseMetrics(true),
		command.CmdName(strings.TrimSpace(cmdName)))
	if err != nil {
		return stdout, &errTypes.ExecutionError{Cmd: cmd, Stderr: stderr, Err: err}
	}
	return stdout, nil
}

// lvSizeFromOutput reads LSize column of the first lvs line, names of LV and VG are never looked at
func lvSizeFromOutput(stdout string) (capacity.Value, bool) {
	for _, line := range util.SplitAndTrimSpace(stdout, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || isLVsHeader(fields) {
			continue
		}
		if len(fields) <= lvsSizeColumn {
			return capacity.Value{}, false
		}
		return capacity.FindToken(fields[lvsSizeColumn])
	}
	return capacity.Value{}, false
}

func isLVsHeader(fields []string) bool {
	return len(fields) > 1 && fields[0] == "LV" && fields[1] == "VG"
}
