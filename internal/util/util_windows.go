//go:build windows

package util

import (
	"log/slog"
	"os"
	"slices"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

// IsRunFromGUI reports whether the process was started by double clicking it,
// i.e. it has no console or its parent is explorer.exe.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	hasConsole := hwnd != 0

	parentName := getParentProcessName()
	isCliParent := isCliProcess(parentName)

	slog.Debug("parent process", "parentName", parentName, "hasConsole", hasConsole, "isCliParent", isCliParent)

	if !hasConsole {
		return true
	}

	if isCliParent {
		return false
	}

	return strings.EqualFold(parentName, "explorer.exe")
}

// findProcess walks the snapshot and returns the first entry match accepts.
func findProcess(snapshot windows.Handle, match func(*windows.ProcessEntry32) bool) (windows.ProcessEntry32, bool) {
	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))

	for err := windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		if match(&pe) {
			return pe, true
		}
	}
	return pe, false
}

func getParentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	pid := uint32(os.Getpid())
	self, ok := findProcess(snapshot, func(pe *windows.ProcessEntry32) bool { return pe.ProcessID == pid })
	if !ok || self.ParentProcessID == 0 {
		return ""
	}

	parent, ok := findProcess(snapshot, func(pe *windows.ProcessEntry32) bool { return pe.ProcessID == self.ParentProcessID })
	if !ok {
		return ""
	}
	return windows.UTF16ToString(parent.ExeFile[:])
}

var cliProcesses = []string{
	"cmd.exe",
	"powershell.exe",
	"pwsh.exe",
	"wt.exe",
	"conhost.exe",
	"windowsterminal.exe",
	"bash.exe",
}

func isCliProcess(name string) bool {
	return slices.Contains(cliProcesses, strings.ToLower(name))
}
