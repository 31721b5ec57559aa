package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devsetup/internal/types"
)

// Invocation is one external command: the binary plus its arguments.
// Assembled here from fixed per-backend templates; executed by the
// runner adapter.
type Invocation struct {
	Name string
	Args []string
}

func (i Invocation) String() string {
	return strings.Join(append([]string{i.Name}, i.Args...), " ")
}

// Bootstrap commands are each backend's official install mechanism,
// run through powershell. Winget has none: it ships with the OS.
const (
	chocoBootstrapCommand = "Set-ExecutionPolicy Bypass -Scope Process -Force; " +
		"[System.Net.ServicePointManager]::SecurityProtocol = [System.Net.ServicePointManager]::SecurityProtocol -bor 3072; " +
		"iex ((New-Object System.Net.WebClient).DownloadString('https://community.chocolatey.org/install.ps1'))"
	scoopBootstrapCommand = "Set-ExecutionPolicy RemoteSigned -Scope CurrentUser; irm get.scoop.sh | iex"
)

// InstallInvocation translates a backend-specific package id into that
// backend's install command. The flag sets are backend policy: choco
// needs -y to suppress its confirmation prompt, winget needs the
// agreement flags and -e for an exact id match.
func InstallInvocation(kind types.ManagerKind, id string, extraArgs string) (Invocation, error) {
	var args []string
	switch kind {
	case types.ManagerChocolatey:
		args = []string{"install", id, "-y"}
	case types.ManagerScoop:
		args = []string{"install", id}
	case types.ManagerWinget:
		args = []string{"install", "--id", id, "-e", "--accept-package-agreements", "--accept-source-agreements"}
	default:
		return Invocation{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported package manager %q", kind))
	}
	if trimmed := strings.TrimSpace(extraArgs); trimmed != "" {
		args = append(args, strings.Fields(trimmed)...)
	}
	return Invocation{Name: string(kind), Args: args}, nil
}

// ProbeInvocation checks whether a backend is present and invocable.
// Every backend answers --version quickly without side effects.
func ProbeInvocation(kind types.ManagerKind) Invocation {
	return Invocation{Name: string(kind), Args: []string{"--version"}}
}

// BootstrapInvocation builds the command that installs the backend
// itself. Requesting one for winget is an error: winget is assumed
// built-in, and its absence is a hard failure for that backend.
func BootstrapInvocation(kind types.ManagerKind) (Invocation, error) {
	var command string
	switch kind {
	case types.ManagerChocolatey:
		command = chocoBootstrapCommand
	case types.ManagerScoop:
		command = scoopBootstrapCommand
	case types.ManagerWinget:
		return Invocation{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("winget has no bootstrap mechanism")
	default:
		return Invocation{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported package manager %q", kind))
	}
	return Invocation{
		Name: "powershell",
		Args: []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", command},
	}, nil
}

// PipInvocation installs one Python package (optionally pinned)
// through the interpreter's own pip module.
func PipInvocation(entry string) Invocation {
	return Invocation{Name: "python", Args: []string{"-m", "pip", "install", entry}}
}

// ExtensionInvocation installs one VS Code extension through the
// editor CLI. --force makes a rerun on an installed extension a no-op
// upgrade instead of an error.
func ExtensionInvocation(id string) Invocation {
	return Invocation{Name: "code", Args: []string{"--install-extension", id, "--force"}}
}
