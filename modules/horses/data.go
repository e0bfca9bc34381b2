package horses

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed herd.json
var herdData []byte

var herd []Horse

func init() {
	if err := json.Unmarshal(herdData, &herd); err != nil {
		panic(fmt.Sprintf("horses: invalid embedded herd data: %v", err))
	}
}

// Herd returns the full herd. Callers must not modify the returned slice.
func Herd() []Horse {
	return herd
}
