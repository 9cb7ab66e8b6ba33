package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Application directory and socket naming
const (
	AppDirName   = "video-player"
	SocketPrefix = "video-player-"
	SocketSuffix = ".sock"
	socketIDLen  = 8
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active filesystem
func API() afero.Afero {
	return backend
}

// SetFs replaces the filesystem backend
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the native filesystem
func SetOsFs() {
	SetFs(afero.NewOsFs())
}

// SetMemMapFs switches to an in-memory filesystem, for tests
func SetMemMapFs() {
	SetFs(afero.NewMemMapFs())
}

// FileExists reports whether path names an existing regular file
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := API().Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	exists, err := API().DirExists(dirPath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dirPath, err)
	}
	if exists {
		return nil
	}
	return API().MkdirAll(dirPath, DefaultDirPermissions)
}

// ExecutableDir returns the directory of the running binary, falling back to
// the working directory
func ExecutableDir() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// ResourcePath resolves rel against base; absolute paths are returned as is.
// An empty base means the executable directory.
func ResourcePath(base, rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	if base == "" {
		base = ExecutableDir()
	}
	return filepath.Join(base, rel)
}

// ConfigDir returns the per-user configuration directory of the application
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppDirName), nil
}

// SocketPath returns a fresh IPC socket path in the temp directory. The name
// stays short because unix socket paths are limited to ~100 bytes.
func SocketPath() string {
	id := uuid.NewString()[:socketIDLen]
	return filepath.Join(os.TempDir(), SocketPrefix+id+SocketSuffix)
}

// OpenFolder opens a directory in the system file manager
func OpenFolder(dir string) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	exists, err := API().DirExists(absPath)
	if err != nil || !exists {
		return fmt.Errorf("directory does not exist: %s", absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open, then common file managers
func openFolderLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}
