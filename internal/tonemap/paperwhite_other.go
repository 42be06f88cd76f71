//go:build !windows

package tonemap

import "fmt"

func queryPrimaryPaperWhiteNits() (float64, error) {
	return 0, fmt.Errorf("tonemap: paper-white query requires windows")
}
