package mocks

import "errors"

// Err var of type error for test purposes
var Err = errors.New("error")

// EmptyOutSuccess var of type CmdOut for test purposes
var EmptyOutSuccess = CmdOut{
	Stdout: "",
	Stderr: "",
	Err:    nil,
}

// EmptyOutFail var of type CmdOut for test purposes
var EmptyOutFail = CmdOut{
	Stdout: "",
	Stderr: "",
	Err:    Err,
}

// LVsInVG0Output imitates "lvs vg0" output
var LVsInVG0Output = `  LV     VG  Attr       LSize  Pool Origin Data%  Meta%  Move Log Cpy%Sync Convert
  vol1   vg0 -wi-a----- 10.00g
  vol10  vg0 -wi-a-----  4.00g
  myvol1 vg0 -wi-a-----  1.00g
`

// LVMCommands is the map that contains lvm commands output for volume group vg0 with 4096 KB extent
var LVMCommands = map[string]CmdOut{
	"/sbin/lvm lvs vg0": {
		Stdout: LVsInVG0Output,
	},
	"/sbin/lvm lvs vg1": {
		Stdout: "",
		Stderr: "  Volume group \"vg1\" not found\n  Cannot process volume group vg1\n",
		Err:    errors.New("exit status 5"),
	},
	"/sbin/lvm lvs --noheading --unit g /dev/vg0/vol1": {
		Stdout: "  vol1   vg0 -wi-a----- 10.00g\n",
	},
	"/sbin/lvm lvs --noheading --unit m /dev/vg0/vol1": {
		Stdout: "  vol1   vg0 -wi-a----- 10240.00m\n",
	},
	"/sbin/lvm lvs --noheading --unit k /dev/vg0/vol1": {
		Stdout: "  vol1   vg0 -wi-a----- 10485760.00k\n",
	},
	"/sbin/lvm lvs --noheading -o vg_extent_size --units k /dev/vg0/vol1": {
		Stdout: "    4096.00k\n",
	},
	"/sbin/lvm lvcreate -n vol2 vg0":                EmptyOutSuccess,
	"/sbin/lvm lvcreate -n vol2 --size 10G vg0":     EmptyOutSuccess,
	"/sbin/lvm lvcreate -n vol3 --size 1G vg1":      EmptyOutFail,
	"/sbin/lvm lvremove -f /dev/vg0/vol1":           EmptyOutSuccess,
	"/sbin/lvm lvremove -f /dev/vg0/vol2":           EmptyOutFail,
	"/sbin/lvm lvextend -L 20480000K /dev/vg0/vol1": EmptyOutSuccess,
}
