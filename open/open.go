// Package open hands links to the system's default browser.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/cinemind-cli/cinemind/constant"
	"github.com/cinemind-cli/cinemind/log"
)

// URL opens link in the default browser without waiting for it.
// Only absolute http and https links are accepted.
func URL(link string) error {
	if err := Validate(link); err != nil {
		return err
	}

	cmd, ok := command(link)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	log.Infof("opening %s", link)
	return cmd.Start()
}

// Validate checks that link is an absolute web link.
func Validate(link string) error {
	if link == "" {
		return fmt.Errorf("nothing to open")
	}

	u, err := url.Parse(link)
	if err != nil {
		return err
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not a web link", link)
	}

	return nil
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open-url", input), true
	default:
		return nil, false
	}
}
