package version

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Значения подставляются при сборке через -ldflags -X.
var (
	Release   = "UNKNOWN"
	BuildDate = "UNKNOWN"
	GitHash   = "UNKNOWN"
)

// Info — сведения о сборке утилиты.
type Info struct {
	Release   string `json:"Release"`
	BuildDate string `json:"BuildDate"`
	GitHash   string `json:"GitHash"`
}

func Current() Info {
	return Info{
		Release:   Release,
		BuildDate: BuildDate,
		GitHash:   GitHash,
	}
}

func PrintVersion() {
	FprintVersion(os.Stdout)
}

func FprintVersion(w io.Writer) {
	if err := json.NewEncoder(w).Encode(Current()); err != nil {
		fmt.Fprintf(w, "error while encoding version info: %v\n", err)
	}
}
