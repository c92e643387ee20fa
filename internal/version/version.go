package version

import (
	"fmt"
	"runtime"
)

const (
	Version = "1.0.0"
)

// String returns the version line printed by -version
func String() string {
	return fmt.Sprintf("CineFlux v%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}

func ShowVersion() {
	fmt.Println(String())
}
