package eusys

import "os"

const (
	// AccessPerms is rwx for user, group and others (0777).
	AccessPerms os.FileMode = 0o777
	// AllPerms is AccessPerms plus setuid, setgid and sticky (07777).
	AllPerms = AccessPerms | os.ModeSetuid | os.ModeSetgid | os.ModeSticky
	// DefFileMode is rw for user, group and others (0666).
	DefFileMode os.FileMode = 0o666
)
