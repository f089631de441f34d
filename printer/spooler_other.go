//go:build !windows

package printer

import "fmt"

func openSpooler(name string) (Transport, error) {
	return nil, fmt.Errorf("spooler %q: Windows spooler printing is only supported on Windows", name)
}
